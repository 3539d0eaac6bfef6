package cycles

const (
	majorCycleDesc = "O Ciclo Maior é como uma longa travessia da alma. " +
		"Assim como os dias da semana se sucedem em ordem inversa, ele nos lembra que o tempo " +
		"não é apenas linear, mas também espiralado. Cada retorno é um convite à reflexão: " +
		"o que aprendemos ao caminhar contra o fluxo aparente da vida?"

	theosophicalCycleDesc = "O Ciclo Menor Teosófico revela o paradoxo do tempo: " +
		"os dias da semana giram em sentido contrário, como se nos ensinassem que o espírito " +
		"cresce ao desafiar a direção comum. É um chamado à interioridade, à escuta do silêncio, " +
		"onde o ritmo do cosmos se torna espelho da nossa própria busca."

	astrologicalCycleDesc = "O Ciclo Menor Astrológico é guiado pela dança dos planetas em torno do Sol. " +
		"Cada translação é um gesto cósmico que nos recorda: somos parte de uma sinfonia maior. " +
		"A influência planetária não é destino fixo, mas metáfora viva daquilo que pulsa em nós. " +
		"Assim como os astros se movem, também nós somos chamados a mover-nos em direção à verdade interior."
)

var personalYearBase = map[int]string{
	1: "Novos começos, independência, iniciativa e coragem. É o momento de plantar sementes para projetos futuros.",
	2: "Cooperação, diplomacia, desenvolvimento de relacionamentos e parcerias; fase de paciência e equilíbrio.",
	3: "Criatividade, expressão, sociabilidade e comunicação; ideal para desenvolver talentos pessoais.",
	4: "Planejamento, disciplina, estabilidade e foco em bases sólidas; bom para metas estruturadas.",
	5: "Mudança, liberdade, exploração e adaptação; período dinâmico e propício a novas experiências.",
	6: "Responsabilidade, família, comunidade e cuidado com o próximo; busca por harmonia e equilíbrio doméstico.",
	7: "Introspecção, autoconhecimento, estudo e desenvolvimento espiritual; momento para reflexão.",
	8: "Poder, conquistas materiais, sucesso e lideranças; exige trabalho intenso e foco na realização.",
	9: "Fechamento de ciclos, desapego, compaixão e preparação para novos recomeços; fase de transformação.",
}

type personalYearTemplate struct {
	Short string
	Long  string
}

var personalYearTemplates = map[int]personalYearTemplate{
	1: {
		Short: "Ano de inícios e iniciativa. Plante intenções e comece projetos com coragem.",
		Long: "Este é um ano para assumir a liderança da sua vida. Priorize metas que exijam iniciativa e autonomia. " +
			"Aplicações práticas: defina um projeto prioritário, estabeleça pequenos marcos semanais e tome decisões que reforcem sua independência. " +
			"Evite esperar por permissão; aja com responsabilidade e coragem.",
	},
	2: {
		Short: "Ano de cooperação e construção de parcerias.",
		Long: "Foque em relações, diplomacia e trabalho em equipe. Este é um período para cultivar alianças e ouvir mais. " +
			"Aplicações práticas: negocie com calma, invista tempo em conversas importantes, e busque compromissos que fortaleçam vínculos. " +
			"Paciência e sensibilidade trarão melhores resultados do que ações impulsivas.",
	},
	3: {
		Short: "Ano de expressão criativa e sociabilidade.",
		Long: "A criatividade e a comunicação florescem. Aproveite para mostrar talentos e ampliar sua rede social. " +
			"Aplicações práticas: participe de eventos, publique trabalhos, pratique apresentações curtas e dedique tempo a hobbies que expressem sua voz. " +
			"Evite dispersão; canalize a energia criativa em projetos concretos.",
	},
	4: {
		Short: "Ano de estrutura, disciplina e trabalho consistente.",
		Long: "Construa bases sólidas: planejamento e rotina são seus aliados. Este é um ano para consolidar e organizar. " +
			"Aplicações práticas: crie um plano de 90 dias com tarefas diárias, organize finanças e documente processos. " +
			"Evite atalhos; o progresso vem com disciplina e atenção aos detalhes.",
	},
	5: {
		Short: "Ano de mudanças, liberdade e experimentação.",
		Long: "Mudanças e oportunidades inesperadas aparecem. Abrace a flexibilidade e explore novas direções. " +
			"Aplicações práticas: teste ideias em pequena escala, viaje ou mude rotinas, e esteja aberto a aprender com o improviso. " +
			"Evite compromissos rígidos demais; mantenha opções abertas.",
	},
	6: {
		Short: "Ano de responsabilidade, cuidado e foco no lar.",
		Long: "Priorize família, comunidade e responsabilidades afetivas. Este é um ano para cuidar e equilibrar relações. " +
			"Aplicações práticas: organize compromissos domésticos, ofereça apoio prático a quem precisa e trabalhe em projetos que tragam estabilidade emocional. " +
			"Evite negligenciar suas próprias necessidades ao cuidar dos outros.",
	},
	7: {
		Short: "Ano de introspecção, estudo e desenvolvimento interior.",
		Long: "Tempo de reflexão, pesquisa e aprofundamento espiritual ou intelectual. Reduza o ruído externo para ouvir sua intuição. " +
			"Aplicações práticas: reserve períodos de estudo, meditação ou escrita reflexiva; faça cursos que aprofundem seu conhecimento. " +
			"Evite decisões impulsivas; prefira observar e integrar antes de agir.",
	},
	8: {
		Short: "Ano de poder, realizações materiais e liderança.",
		Long: "Foco em resultados concretos, carreira e autoridade. Este ano pede ambição e trabalho estratégico. " +
			"Aplicações práticas: estabeleça metas financeiras claras, negocie com confiança e delegue quando necessário. " +
			"Evite atalhos éticos; o sucesso exige disciplina e responsabilidade.",
	},
	9: {
		Short: "Ano de encerramentos, desapego e transformação.",
		Long: "Fechamentos e liberação do que não serve mais. Prepare-se para concluir ciclos e abrir espaço para o novo. " +
			"Aplicações práticas: revise projetos pendentes, faça limpezas físicas e emocionais, e planeje transições conscientes. " +
			"Evite resistir às mudanças; desapegar facilita o recomeço.",
	},
}
