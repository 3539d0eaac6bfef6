package numerology

// numberTemplate is the kabbalistic template for numbers 1..22, each bound
// to a chakra quadrant.
type numberTemplate struct {
	Short  string
	Long   string
	Chakra string
}

var numTemplates = map[int]numberTemplate{
	1:  {"Início, liderança, iniciativa.", "Ação direta; foco em concretizar; energia física e prática.", "Muladhara"},
	2:  {"Parcerias, sensibilidade.", "Cooperação, diplomacia; trabalho em dupla e receptividade.", "Muladhara"},
	3:  {"Criatividade aplicada; expressão.", "Comunicação criativa; colocar ideias em prática; sociabilidade.", "Muladhara"},
	4:  {"Estrutura, trabalho consistente.", "Organização e disciplina; construir bases sólidas.", "Svadhishthana"},
	5:  {"Mudança com propósito.", "Movimento e adaptação; usar energia para oportunidades que importam.", "Svadhishthana"},
	6:  {"Responsabilidade e cuidado.", "Cuidar do que importa; equilíbrio entre ação e serviço.", "Svadhishthana"},
	7:  {"Busca interior; estudo.", "Refinamento espiritual e intelectual; atrair possibilidades positivas.", "Manipura"},
	8:  {"Poder pessoal e prosperidade.", "Manifestação prática de recursos; foco em resultados.", "Manipura"},
	9:  {"Conclusões e compaixão.", "Fechamento de ciclos; visão ampla e serviço ao coletivo.", "Manipura"},
	10: {"Racionalidade aplicada.", "Organizar conhecimento; base para intuições futuras.", "Anahata"},
	11: {"Intuição ampliada (mestre).", "Porta para insights profundos; atenção ao equilíbrio emocional.", "Anahata"},
	12: {"Aprendizado e síntese.", "Integração de saberes; preparar terreno para intuições maiores.", "Anahata"},
	13: {"Abstração criativa.", "Mente criativa; trabalhar com símbolos e ideias não-lineares.", "Vishuddha"},
	14: {"Experimentação mental.", "Explorar novas formas de pensar; liberdade criativa.", "Vishuddha"},
	15: {"Expressão do 5º princípio.", "Criatividade aplicada a ideias; inovação comunicativa.", "Vishuddha"},
	16: {"Intuição prática.", "Escolhas guiadas pela intuição; confiar no sentir.", "Ajna"},
	17: {"Visão e decisão.", "Poder de escolha alinhado com percepção interior.", "Ajna"},
	18: {"Sabedoria intuitiva.", "Integração entre sentir e agir; liderança intuitiva.", "Ajna"},
	19: {"Pronto para o novo.", "Abertura para experiências maiores; preparação para arquétipos.", "Sahasrara"},
	20: {"Transcender limites.", "Momento de expansão; contato com padrões universais.", "Sahasrara"},
	21: {"Conexão arquetípica.", "Porta para arquétipos universais; experiências transformadoras.", "Sahasrara"},
	22: {"Manifestação em grande escala.", "Capacidade de estruturar e materializar projetos de grande impacto (mestre).", "Sahasrara"},
}

type quadrant struct {
	Label  string
	Lo, Hi int
	Chakra string
	Theme  string
}

var quadrants = []quadrant{
	{"1-3", 1, 3, "Muladhara", "Consciência Física"},
	{"4-6", 4, 6, "Svadhishthana", "Energia Vital"},
	{"7-9", 7, 9, "Manipura", "Energias Astrais"},
	{"10-12", 10, 12, "Anahata", "Energias Mentais"},
	{"13-15", 13, 15, "Vishuddha", "Idéias"},
	{"16-18", 16, 18, "Ajna", "Intuição"},
	{"19-21", 19, 21, "Sahasrara", "Conexão com os Arquétipos Universais"},
}

var interpretationsShort = map[int]string{
	1:  "Liderança, iniciativa, independência.",
	2:  "Cooperação, sensibilidade, parceria.",
	3:  "Expressão, criatividade, sociabilidade.",
	4:  "Trabalho, disciplina, estrutura.",
	5:  "Mudança, liberdade, aventura.",
	6:  "Responsabilidade, família, serviço.",
	7:  "Reflexão, estudo, espiritualidade.",
	8:  "Poder, realização material, administração.",
	9:  "Compaixão, idealismo, conclusão.",
	11: "Intuição elevada, inspiração (mestre).",
	22: "Construtor mestre, visão prática (mestre).",
	33: "Mestre do serviço e amor (mestre).",
}

var interpretationsMedium = map[int]string{
	1:  "Indivíduo com forte impulso para liderar e iniciar projetos; precisa cultivar paciência e delegar.",
	2:  "Sensível e diplomático; talento para mediar e trabalhar em parceria; cuidado com indecisão.",
	3:  "Talento para comunicação e arte; tendência à dispersão se não houver disciplina.",
	4:  "Construtor confiável; prospera com rotina e planejamento; evitar rigidez excessiva.",
	5:  "Busca liberdade e variedade; prospera em mudanças; atenção a excessos.",
	6:  "Forte senso de dever e cuidado com família; tendência a assumir responsabilidades alheias.",
	7:  "Buscador do conhecimento; precisa de solidão para aprofundar; cuidado com isolamento.",
	8:  "Habilidade para negócios e administração; foco em resultados; ética é crucial.",
	9:  "Idealista e compassivo; chamado a servir causas maiores; evitar desilusão.",
	11: "Canal de inspiração e visão; exige equilíbrio emocional para manifestar potencial.",
	22: "Capacidade de materializar grandes ideais; requer disciplina e integridade.",
	33: "Chamado ao serviço altruísta; grande responsabilidade emocional e espiritual.",
}

var interpretationsLong = map[int]string{
	1:  "Pessoa com forte impulso para iniciar e liderar. Tem energia para transformar ideias em ação e tende a assumir responsabilidades naturalmente; precisa cultivar paciência, delegar quando necessário e aprender a ouvir para não impor soluções sem consenso. Quando equilibrado, manifesta autonomia criativa e capacidade de inspirar outros.",
	2:  "Indivíduo sensível e cooperativo, com talento para mediar e construir parcerias duradouras. Sua força está na diplomacia, empatia e capacidade de criar ambientes harmoniosos; deve trabalhar a assertividade para evitar que a indecisão ou a dependência emocional limitem seu potencial. Em contextos de equipe, atua como ponte e estabilizador.",
	3:  "Pessoa criativa e comunicativa, com facilidade para expressão artística e socialização. Tem imaginação fértil e carisma, mas precisa de disciplina para transformar ideias em resultados concretos; quando dispersa, perde oportunidades, e quando estruturada, brilha em projetos que exigem inovação e comunicação. A alegria e a leveza são suas marcas mais atraentes.",
	4:  "Perfil orientado à estrutura, trabalho consistente e construção de bases sólidas. Valoriza rotina, planejamento e responsabilidade; tende a prosperar em ambientes que exigem organização e perseverança, mas deve evitar rigidez que impeça adaptação. Sua força é a confiabilidade e a capacidade de materializar projetos a longo prazo.",
	5:  "Espírito livre e adaptável, atraído por mudança, variedade e experiências novas. Tem coragem para romper padrões e explorar oportunidades, mas precisa de foco para não dispersar energia em excessos; quando bem canalizado, transforma liberdade em inovação prática e movimento com propósito. A versatilidade é seu maior trunfo.",
	6:  "Pessoa com forte senso de responsabilidade, cuidado e serviço ao próximo. Tem inclinação para proteger e sustentar relações familiares e comunitárias; deve cuidar para não assumir responsabilidades alheias em excesso. Quando equilibrado, manifesta liderança afetiva e capacidade de criar ambientes seguros e nutritivos.",
	7:  "Indivíduo introspectivo e buscador do conhecimento, com inclinação para estudo, análise e desenvolvimento interior. Valoriza profundidade e reflexão; precisa de períodos de solitude para se renovar e integrar insights. Em equilíbrio, combina rigor intelectual com sensibilidade espiritual, atraindo oportunidades de crescimento interno.",
	8:  "Perfil orientado ao poder pessoal, gestão e realização material. Tem habilidade para administrar recursos, estruturar negócios e alcançar metas ambiciosas; exige ética e equilíbrio para que o foco em resultados não se sobreponha a valores humanos. Quando bem conduzido, traduz autoridade em prosperidade sustentável.",
	9:  "Pessoa voltada para conclusão de ciclos, compaixão e serviço coletivo. Tem visão ampla e tendência a atuar em causas que beneficiem grupos; precisa cuidar da própria energia para não se esgotar em altruísmo. Em sua melhor expressão, combina idealismo com ação prática em prol do bem comum.",
	11: "Número mestre ligado à intuição ampliada, sensibilidade e inspiração profunda. Indica potencial para insights transformadores e conexão com níveis sutis de percepção; exige maturidade emocional para canalizar a sensibilidade sem se perder em instabilidade. Quando integrado, abre portas para liderança visionária baseada em intuição e empatia.",
	22: "Número mestre associado à capacidade de manifestar grandes projetos e estruturar visões em escala prática. Representa habilidade para combinar visão ampla com competência técnica e disciplina; requer integridade e responsabilidade para que o poder de realização gere impacto positivo. Em equilíbrio, é a força de construção de legados duradouros.",
	33: "Número mestre do serviço e do amor aplicado, indicando chamado para atuação altruísta e cura coletiva. Traz grande sensibilidade emocional e responsabilidade espiritual; exige equilíbrio pessoal para sustentar o peso da missão. Quando vivido com consciência, manifesta liderança compassiva e transformação social através do exemplo.",
}

// QuadrantFor maps a kabbalistic number 1..22 onto its chakra quadrant.
func QuadrantFor(n int) (label, chakra, theme string) {
	if n == 22 {
		return "22 (mestre)", "Sahasrara", "Manifestação em grande escala"
	}
	for _, q := range quadrants {
		if n >= q.Lo && n <= q.Hi {
			return q.Label, q.Chakra, q.Theme
		}
	}
	return "desconhecido", "", ""
}
