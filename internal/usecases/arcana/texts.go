package arcana

import "fmt"

// arcanumText holds the short and long template of one major arcanum. The
// single %s placeholder receives the person's name.
type arcanumText struct {
	Short string
	Long  string
}

var arcanumTexts = map[int]arcanumText{
	1: {
		Short: "%s, o Arcano 1 (O Mago) indica início, astúcia e capacidade de manifestar.",
		Long: "%s, o Arcano 1 (O Mago) representa a ponte entre intenção e forma. É o arquétipo da habilidade de transformar ideias em realidade " +
			"usando ferramentas, foco e vontade. Quando este arcano é central, você dispõe de recursos internos e externos para materializar objetivos: " +
			"clareza mental, comunicação eficaz e habilidade técnica. Prática recomendada: definir um objetivo pequeno e aplicar um método simples para alcançá‑lo, " +
			"avaliando resultados e ajustando. O desafio é a dispersão ou o uso de talento para fins superficiais; mantenha a ética e a coerência entre intenção e ação.",
	},
	2: {
		Short: "%s, o Arcano 2 (A Sacerdotisa) fala de interioridade, intuição e mistério.",
		Long: "%s, o Arcano 2 (A Sacerdotisa) convida à profundidade e à escuta do inconsciente. Este arcano aponta para processos internos, sonhos, símbolos e " +
			"sabedoria que não se revela por força, mas por atenção paciente. Em prática, favorece meditação, estudo contemplativo e o cultivo da sensibilidade. " +
			"A Sacerdotisa protege segredos e pede discrição: nem tudo precisa ser exposto. O desafio é a passividade excessiva ou o isolamento; equilibre a interioridade " +
			"com momentos de expressão seletiva. Recurso: manter um diário de sonhos e insights para transformar intuição em orientação prática.",
	},
	3: {
		Short: "%s, o Arcano 3 (A Imperatriz) traz criatividade, afeto e prosperidade.",
		Long: "%s, o Arcano 3 (A Imperatriz) celebra fertilidade, cuidado e a capacidade de gerar formas belas e nutritivas. É o arquétipo da abundância criativa: " +
			"produção artística, cultivo de relacionamentos e prosperidade material que nasce do cuidado. Quando presente, favorece projetos que envolvem estética, " +
			"nutrição e acolhimento. Prática: dedicar tempo ao cultivo (jardim, arte, relações) e observar como o cuidado gera retorno. O desafio é o apego ao conforto " +
			"ou a tendência a superproteger; exercite generosidade e delegação.",
	},
	4: {
		Short: "%s, o Arcano 4 (O Imperador) aponta para estrutura, lei e liderança.",
		Long: "%s, o Arcano 4 (O Imperador) representa ordem, responsabilidade e a construção de alicerces duráveis. É o princípio da autoridade legítima, " +
			"da disciplina e da organização. Quando este arcano é central, é tempo de planejar, estabelecer limites e criar estruturas que sustentem crescimento. " +
			"Prática: elaborar um plano com etapas e prazos, delegar funções e revisar processos. O desafio é a rigidez e o autoritarismo; combine firmeza com flexibilidade.",
	},
	5: {
		Short: "%s, o Arcano 5 (O Papa) fala de tradição, ensino e mediação espiritual.",
		Long: "%s, o Arcano 5 (O Papa) simboliza a ponte entre o humano e o sagrado por meio de rituais, ensinamentos e códigos. Favorece estudo sistemático, orientação " +
			"e participação em comunidades de sentido. Quando presente, há benefício em buscar mentoria, aprofundar práticas espirituais ou compartilhar conhecimento. " +
			"O desafio é o dogmatismo: evite aceitar verdades prontas sem investigação pessoal. Recurso: questionar com respeito e integrar ensinamentos à experiência direta.",
	},
	6: {
		Short: "%s, o Arcano 6 (O Enamorado) destaca escolhas, afetos e compromisso.",
		Long: "%s, o Arcano 6 (O Enamorado) centra-se nas decisões que envolvem o coração e os valores. Mais do que romance, fala de alinhamento entre desejo e ética, " +
			"parcerias e a responsabilidade afetiva. Quando este arcano aparece, surgem encruzilhadas que pedem escuta do que é realmente importante. Prática: mapear opções e avaliar consequências emocionais. " +
			"O desafio é a indecisão ou a busca de aprovação externa; cultive clareza sobre seus valores antes de escolher.",
	},
	7: {
		Short: "%s, o Arcano 7 (O Carro) indica vitória, direção e controle.",
		Long: "%s, o Arcano 7 (O Carro) é o arquétipo da conquista orientada: disciplina, foco e habilidade de manter o rumo apesar de obstáculos. Favorece ações coordenadas, " +
			"viagens e movimentos decisivos. Prática: estabelecer metas claras e medir progresso; usar a força de vontade para superar resistências. O desafio é o excesso de controle " +
			"ou a pressa; equilibre velocidade com prudência.",
	},
	8: {
		Short: "%s, o Arcano 8 (A Justiça) fala de equilíbrio, responsabilidade e consequência.",
		Long: "%s, o Arcano 8 (A Justiça) remete à equidade, à avaliação imparcial e à necessidade de assumir resultados. Este arcano pede honestidade intelectual e moral, " +
			"bem como a revisão de contratos e acordos. Prática: revisar compromissos, ajustar expectativas e agir com transparência. O desafio é a rigidez moral; busque compaixão junto à justiça.",
	},
	9: {
		Short: "%s, o Arcano 9 (O Eremita) aponta para introspecção, sabedoria e retiro.",
		Long: "%s, o Arcano 9 (O Eremita) convida ao recolhimento para encontrar luz interior. É tempo de estudo profundo, silêncio e orientação interna. Quando presente, favorece " +
			"a busca por sentido e a construção de conhecimento pessoal. Prática: reservar períodos de solitude para leitura, meditação e reflexão. O desafio é o isolamento prolongado; " +
			"mantenha contato com uma rede de apoio seletiva.",
	},
	10: {
		Short: "%s, o Arcano 10 (Roda da Fortuna) fala de ciclos, destino e mudança.",
		Long: "%s, o Arcano 10 (Roda da Fortuna) lembra que a vida se move em ciclos: altos e baixos, oportunidades e reveses. Este arcano pede adaptabilidade e percepção do timing. " +
			"Quando aparece, mudanças significativas podem ocorrer; a atitude recomendada é flexibilidade e preparação para aproveitar janelas de oportunidade. O desafio é resistir à mudança; " +
			"pratique desapego e planejamento contingente.",
	},
	11: {
		Short: "%s, o Arcano 11 (A Força) fala de coragem, disciplina e transformação.",
		Long: "%s, o Arcano 11 (A Força) representa a coragem serena que transforma desafios em crescimento. Não se trata apenas de vigor físico, mas de domínio das emoções e da vontade. " +
			"Quando este arcano é central, há capacidade de enfrentar medos e transformar padrões. Prática: exercícios que integrem corpo e mente (respiração, movimento consciente). " +
			"O desafio é a agressividade mal canalizada; direcione energia para objetivos construtivos.",
	},
	12: {
		Short: "%s, o Arcano 12 (O Enforcado) indica sacrifício, pausa e nova perspectiva.",
		Long: "%s, o Arcano 12 (O Enforcado) sugere um tempo de suspensão produtiva: renúncia voluntária que permite ver a realidade sob outro ângulo. É um convite a aceitar atrasos " +
			"ou perdas como oportunidade de reorientação. Prática: cultivar paciência e observar o que se revela quando a ação é interrompida. O desafio é a estagnação; busque sentido no silêncio.",
	},
	13: {
		Short: "%s, o Arcano 13 (A Morte) fala de transformação profunda e renascimento.",
		Long: "%s, o Arcano 13 (A Morte) simboliza término necessário para que algo novo nasça. Trata‑se de transformação radical: deixar ir estruturas obsoletas, padrões e identidades que não servem. " +
			"Quando este arcano aparece, processos de luto e liberação são parte do caminho. Prática: rituais de encerramento e planejamento para reconstrução. O desafio é o apego; permita o fluxo natural de renovação.",
	},
	14: {
		Short: "%s, o Arcano 14 (A Temperança) aponta para equilíbrio, integração e cura.",
		Long: "%s, o Arcano 14 (A Temperança) convida à moderação, à síntese de opostos e à cura gradual. É o princípio da alquimia interior: combinar elementos para criar harmonia. " +
			"Prática: exercícios de integração (respiração, alimentação equilibrada, práticas contemplativas). O desafio é a impaciência; trabalhe com constância e pequenas mudanças sustentáveis.",
	},
	15: {
		Short: "%s, o Arcano 15 (O Diabo) revela sombras, desejos e padrões de dependência.",
		Long: "%s, o Arcano 15 (O Diabo) expõe as amarras internas: vícios, compulsões e identidades que aprisionam. Sua função é tornar visível o que está oculto para que possa ser transformado. " +
			"Quando aparece, é momento de honestidade radical sobre hábitos e contratos que limitam. Prática: identificar um padrão autodestrutivo e criar um plano de substituição. " +
			"O desafio é a negação; a cura começa com reconhecimento e pequenas ações de libertação.",
	},
	16: {
		Short: "%s, o Arcano 16 (A Torre) indica ruptura, choque e reconstrução.",
		Long: "%s, o Arcano 16 (A Torre) anuncia eventos que derrubam estruturas frágeis, expondo verdades e forçando reconstrução. Embora doloroso, esse processo limpa o terreno para algo mais autêntico. " +
			"Prática: após a ruptura, priorize segurança básica e reavalie valores; construa de forma mais consciente. O desafio é o trauma; busque apoio e processos de integração.",
	},
	17: {
		Short: "%s, o Arcano 17 (A Estrela) traz esperança, comunicação e inspiração.",
		Long: "%s, o Arcano 17 (A Estrela) é um farol de esperança e renovação. Favorece cura emocional, criatividade e a partilha de visão. Quando presente, há abertura para inspirar outros e receber orientação. " +
			"Prática: atividades que expressem beleza e sentido (arte, ensino, serviço). O desafio é a idealização; mantenha pés no chão enquanto sonha.",
	},
	18: {
		Short: "%s, o Arcano 18 (A Lua) fala de mistério, medo e processos inconscientes.",
		Long: "%s, o Arcano 18 (A Lua) revela o terreno do inconsciente: medos, imagens e intuições que influenciam o comportamento. É um convite a explorar sonhos e símbolos para desvelar padrões. " +
			"Prática: trabalho com sonhos, imaginação ativa e terapia. O desafio é a confusão; busque clareza por meio de práticas que organizem o mundo interior.",
	},
	19: {
		Short: "%s, o Arcano 19 (O Sol) simboliza vitalidade, clareza e realização.",
		Long: "%s, o Arcano 19 (O Sol) representa alegria, saúde e expressão autêntica. É um período de visibilidade e energia criativa. Quando aparece, favorece projetos que iluminam e fortalecem o eu. " +
			"Prática: atividades que aumentem vitalidade (exercício, exposição criativa). O desafio é o orgulho; mantenha humildade enquanto celebra conquistas.",
	},
	20: {
		Short: "%s, o Arcano 20 (O Julgamento) aponta para avaliação, carreira e responsabilidade.",
		Long: "%s, o Arcano 20 (O Julgamento) convoca à revisão de escolhas e à responsabilização. É um momento de prestação de contas e de colheita dos frutos de ações passadas. " +
			"Quando presente, favorece decisões maduras e a assunção de papéis públicos ou profissionais. Prática: revisar trajetória, ajustar metas e alinhar ações com propósito. " +
			"O desafio é a autocrítica paralisante; transforme avaliação em aprendizado e ação corretiva.",
	},
	21: {
		Short: "%s, o Arcano 21 (O Louco) aponta para começos inesperados e um chamado à confiança.",
		Long: "%s, o Arcano 21 (O Louco) simboliza o impulso primordial de partir rumo ao desconhecido. " +
			"Este arcano fala de liberdade, espontaneidade e do risco criativo que antecede toda forma. " +
			"Quando o Louco aparece como referência pessoal, há um convite para soltar certezas que já não servem, " +
			"experimentar sem garantias e confiar na intuição. Em termos práticos, isso pode significar iniciar um projeto sem roteiro completo, " +
			"aceitar mudanças abruptas ou permitir-se errar como forma de aprendizado. O desafio associado é a falta de ancoragem: " +
			"evite decisões impulsivas sem avaliar consequências básicas. Recurso: cultivar pequenos rituais de aterramento (respiração, rotina matinal) " +
			"que permitam agir com coragem sem perder a estabilidade.",
	},
	22: {
		Short: "%s, o Arcano 22 (O Mundo) simboliza realização, brilho e integração.",
		Long: "%s, o Arcano 22 (O Mundo) indica culminação e integração de ciclos. É o arquétipo da realização que surge quando partes fragmentadas se unem em sentido. " +
			"Quando este arcano é central, há reconhecimento, fechamento de etapas e preparação para novos começos em outro nível. Prática: celebrar conquistas, documentar aprendizados e planejar o próximo ciclo. " +
			"O desafio é a complacência; use a conclusão como trampolim para novos propósitos.",
	},
}

var defaultText = arcanumText{
	Short: "%s, este é um momento para atenção interior e ação consciente.",
	Long: "%s, concentre-se em práticas que fortaleçam seu equilíbrio interno. " +
		"Identifique um desafio pessoal e transforme‑o em objetivo prático. Sugestão: pequenas ações diárias que sustentem mudança consistente.",
}

// ShortText renders the short template of an arcanum for a person.
func ShortText(number int, name string) string {
	if name == "" {
		name = "Consulente"
	}
	tpl, ok := arcanumTexts[number]
	if !ok {
		tpl = defaultText
	}
	return fmt.Sprintf(tpl.Short, name)
}

// LongText renders the long template of an arcanum for a person.
func LongText(number int, name string) string {
	if name == "" {
		name = "Consulente"
	}
	tpl, ok := arcanumTexts[number]
	if !ok {
		tpl = defaultText
	}
	return fmt.Sprintf(tpl.Long, name)
}
