package influences

// planetText is the interpretive sheet for one planetary influence.
type planetText struct {
	Title   string
	Summary string
	Long    string
	Advice  string
}

// Texts and tattvas are keyed by canonical English planet names; labels for
// display come from canonicalToPT.
var planetToTattva = map[string]string{
	"Moon":    "Apas",
	"Mercury": "Anupádaka",
	"Venus":   "Akasha",
	"Sun":     "Prithvi",
	"Mars":    "Tejas",
	"Jupiter": "Adi",
	"Saturn":  "Vayu",
}

var planetTexts = map[string]planetText{
	"Moon": {
		Title:   "Lua — Apas",
		Summary: "Emoção, sensibilidade, intuição; assuntos passageiros, família.",
		Long: "A LUA refere-se aos assuntos de popularidade e vulgaridade. Rápida e mutável como é, diz respeito a tudo que é " +
			"passageiro e inconstante. Deste modo, fornece uma disposição inquieta, volúvel, um temperamento apreciador de tudo " +
			"que é mutável, como das viagens. Assim como o Sol representa a vida, a Lua diz respeito à alma passional, com toda a " +
			"sua “fluidez” característica do Elemento Água. A Lua diz respeito em especial à mulher, à mãe, à concepção, à fertilidade; " +
			"ela determina a intensidade das paixões e dos desejos passageiros. Ao mesmo tempo a Lua faz surgir na alma os sonhos, a " +
			"imaginação, as ilusões, as esperanças, e também a loucura. As vibrações do Tattwa da Lua favorecem as viagens curtas, mudanças " +
			"transitórias; é uma boa hora para convencer os outros de alguma nova idéia. É favorável a todos os indivíduos que trabalham " +
			"com líquidos: pescadores, marinheiros, leiteiros, etc.; nesta hora não se deve iniciar nada que deva ter longa duração ou que " +
			"exija esforços continuados. É associada com o sistema alimentar, incluindo o esôfago, estomago, fígado, vesícula, pâncreas e " +
			"intestinos. Está, portanto, intimamente ligada à dieta; relaciona-se também com os seios (regidos em geral por Câncer). " +
			"Qualidades: Mãe, mulheres em geral, esposa, rainha, líquidos, imaginação, impressionabilidade, mediunidade, duplo etérico, alma, crendices, " +
			"lar, família, sonhador, inconstância, hereditariedade, etc.",
		Advice: "Práticas de respiração e estabilização emocional; evitar iniciar projetos de longa duração em horas lunares; " +
			"cuidar da dieta e rotinas alimentares; favorecer atividades ligadas a líquidos e ao cuidado.",
	},
	"Mercury": {
		Title:   "Mercúrio — Anupádaka",
		Summary: "Atividade mental, memória, estudos, comunicação, comércio.",
		Long: "MERCÚRIO diz respeito, principalmente, à atividade mental, à memória, aos estudos. Mercúrio dá uma disposição eloqüente, " +
			"prolixa, e também sofística, intrusa e impertinente. Fornece um temperamento fácil de se adaptar, porque vive essencialmente " +
			"de aparências. Por ter relação com o intelecto, dá aos seres o temperamento “frio”, que resolve tudo pela razão e não com o " +
			"calor da alma. Por tudo isto favorece muita a profissão do comerciante. A hora de Mercúrio é própria para os assuntos que requerem " +
			"expressão literária, verbal ou escrita, tais como escrever cartas, documentos, trabalhos literários, discursos, conferências, aulas, " +
			"etc., por isto que também é favorável para tratar com professores, escritores e todos os que se ocupam com empresas literárias e jornalísticas. " +
			"Qualidades: Irmãos, comércio, intelecto, estudo, praticidade, viagem, roubo, mentira, mensageiro, falar, escrever, curso, publicação, telefone, livro, raciocínio, etc. " +
			"O cérebro e o sistema nervoso como um todo são regidos por Mercúrio, que exerce influências também na maneira pela qual respiramos.",
		Advice: "Aproveitar horas de Mercúrio para estudo, escrita, comunicação e negociações; exercícios de concentração; atenção à clareza na fala e documentos.",
	},
	"Venus": {
		Title:   "Vênus — Akasha",
		Summary: "Beleza, artes, vida social, afeto, estética.",
		Long: "VÊNUS representa o aspecto belo da existência, as artes, a alegria, a vida social, as coisas supérfluas. Vênus cria a ordem, a harmonia; " +
			"fornece os temperamentos artísticos, quer como criadores de novas formas de expressão estética, quer como os grandes intérpretes da arte. " +
			"A hora do Tattwa de Vênus favorece as alegrias, as reuniões sociais e artísticas, as diversões, a dança, os concertos; é a hora favorável " +
			"às exibições de vestuários, de ornamentos, de luxo, e por isto, também própria para a aquisição desses objetos, jóias, etc. Qualidades: Estética, beleza, afeto, " +
			"união, casamento, mulheres em geral, festas, luxuria, charme, canto, amor, jóia, dança, elegância, dinheiro, arte, etc. As paratireóides, que controla o nível " +
			"de cálcio nos fluidos do corpo, são regidas por Vênus que tradicionalmente é relacionado com a garganta, rins e região lombar.",
		Advice: "Favorecer atividades artísticas e sociais; aproveitar para negociações relacionadas a estética, moda e bens de luxo; cuidar da garganta e rins.",
	},
	"Sun": {
		Title:   "Sol — Prithvi",
		Summary: "Vitalidade, vontade, autoridade, criatividade.",
		Long: "O SOL é o distribuidor da vida. Representa, pois, no homem, sua saúde geral e sua vitalidade; indica a força de vontade e o idealismo. Dá uma disposição magnânima " +
			"e um espírito compreensivo. Relaciona-se com tudo o que de nobre há na vida e na natureza. É o centro motor, a causa da ação, o que dá impulso às realizações. " +
			"As influências do Sol fornecem qualidades de sinceridade, confiança e franqueza, constância, firmeza e justiça. A hora em que vibra o Tattwa Solar é especialmente " +
			"próprio para manter relações com pessoas de posição firme e elevada, com as autoridades, juizes, chefes de empresas distribuidoras de mercadorias e pedir os seus préstimos. " +
			"Qualidades: Autoridade, realeza, Pai, glória, tudo que brilha, honra, rei, dirigente, palácio, ouro, teatro, vigor, criatividade, etc. é particularmente associado com o timo, " +
			"embora também governe (tradicionalmente) o coração, costas e coluna vertebral.",
		Advice: "Usar horas solares para iniciativas que exijam autoridade, visibilidade e liderança; cuidar da vitalidade e postura; buscar apoio de figuras de autoridade.",
	},
	"Mars": {
		Title:   "Marte — Tejas",
		Summary: "Ação, luta, energia, coragem, risco.",
		Long: "MARTE é o Planeta da violência, da luta. É o grande exaltador. É o espírito das explosões, dos entusiasmos. Fornece os temperamentos belicosos, lutadores, os conquistadores, " +
			"quer sejam conquistadores militares, pela força, quer os conquistadores pela mente, os cientistas, pesquisadores. Favorece as profissões que dizem respeito as violências, tais como " +
			"fabricantes de armas, ferreiros, instrumentos cirúrgicos, cirurgiões, etc. As influências de Marte são avassaladoras, arrastam todos os obstáculos; não admite perda de tempo, não faz considerações. " +
			"Marte representa o poder criador que antes tem de destruir; é o realizador por excelência, em todos os ramos da atividade. As horas do Tatwa são próprias para as realizações temerosas, empresas ousadas, " +
			"para travar lutas e abrir questões; esta hora leva ao impulso irresponsável. Assim, não se deve tratar nesta hora de assuntos que exigem ponderação, calma, diplomacia e argumentação; evite-se realizações de risco. " +
			"No entanto, a hora de Marte é própria pra negócios relativos a coisas brutas, como mecânicos, fundição, minas, materiais pesados, industria extrativa, etc. Qualidades: Cirurgia, luta, exército, esporte, raiva, ataque, competição, " +
			"assassino, soldado, crime, perigo, instrumento cortante, míssil, incêndio, violência, guerra, paixão, sexo, energia, bomba, etc. é tradicionalmente um planeta de violência, mas é relacionado também com o sexo: não é de surpreender, " +
			"portanto, sua ligação com as glândulas sexuais (gônadas), e também com o sistema muscular em geral.",
		Advice: "Evitar decisões impulsivas em horas de Marte; usar para ações que exijam coragem e energia; precaução em atividades de risco; atenção à saúde muscular e sexual.",
	},
	"Jupiter": {
		Title:   "Júpiter — Adi",
		Summary: "Sabedoria, expansão, ensino, estabilidade de longo prazo.",
		Long: "JÚPITER caracteriza a ponderação, a sabedoria interior, a mística elevada. Suas vibrações fornecem o temperamento do juiz, do religioso, do sacerdote, do ministro, do professor universitário, " +
			"enfim, a autoridade em qualquer ramo, com todos os seus característicos, como a serenidade, a decisão, a austeridade. Pode também, em seu aspecto inferior, representar o conservador, o reacionário, o dogmático. " +
			"A hora de Júpiter é favorável ao começo de qualquer nova empresa, principalmente as permanentes ou de longa duração, em virtude da firmeza serena que caracteriza este Planeta, e de sua fecundidade, como resultado favorável de qualquer negócio. " +
			"Júpiter preside as posses materiais e a solidez moral. É favorável a solicitação de proteção e favores.Qualidades: Religião, leis, universidades, filosofias, valores éticos, sacerdote, guru, professor, juiz, fórum, filantropia, protetor, ritual, cerimônia, fortuna, estrangeiro, etc. " +
			"O relacionamento de Júpiter com o fígado e sua função digestiva, mas afeta também a glândula pituitária, que regula a produção de hormônios e governa nosso desenvolvimento físico.",
		Advice: "Usar horas de Júpiter para iniciar projetos duradouros, estudos superiores e pedidos de proteção; cultivar práticas de longo prazo e ensino.",
	},
	"Saturn": {
		Title:   "Saturno — Vayu",
		Summary: "Perseverança, responsabilidade, estrutura, provas e limitações.",
		Long: "SATURNO significa a experiência sólida, a abnegação, a responsabilidade; fornece o temperamento melancólico que pode se tornar avaro, miserável, ou elevar-se ao pícaro do saber profundo e místico. " +
			"Saturno é o Planeta que dá força ao destino, que precipita os efeitos, por isto que é considerado como violento e mau, embora as causas não tenham sido por ele geradas; é o Planeta que recolhe o que foi deixado pelos outros; " +
			"é o que faz ressaltar os obstáculos, mas também é o que não esquece de premiar as boas ações semeadas. Saturno não permite que fique nada por fazer; ele é o grande redutor universal. Saturno dá ao ser um temperamento laborioso, " +
			"tenaz, critico e desconfiado; favorece os filósofos incompreendidos, quer sejam místicos espirituais, quer ateus materialistas. A hora de Saturno favorece o trato com assuntos de natureza durável e sólida, as terras, as construções " +
			"e tudo o que exige tempo, perseverança e paciência, como a agricultura. Tudo o que se inicia nesta hora desenvolve-se devagar, sofre atrasos, encontra obstáculos; por isto não é própria para assuntos que requerem rápida conclusão, " +
			"inclusive reuniões sociais, viagens rápidas e tratamentos médicos. É boa hora para travar relações e negócios com pessoas ligadas aos assuntos de Saturno. Qualidades: Austeridade, avareza, medo, agricultura, sofrimento, isolamento, " +
			"calamidade, conservador, cronômetro, desastre, responsabilidade, duro, gelo, limitação, morte, trabalhador, depressão, minas, miséria, velhice, rocha, etc. Os dentes e ossos são regidos por Saturno, que se relaciona também com a " +
			"vesícula e baço e com a pele. Age sobre o lóbulo anterior da glândula pituitária, regulando a estrutura óssea e muscular das glândulas sexuais.",
		Advice: "Planejar a longo prazo, cultivar disciplina e paciência; evitar iniciar projetos que exijam rapidez; cuidar de ossos e dentes; aceitar provas como aprendizado.",
	},
}
