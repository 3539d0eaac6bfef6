package astro

// planetCore pairs the acting verb of a planet with its central meaning.
type planetCore struct {
	Verb string
	Core string
}

var planetCores = map[string]planetCore{
	"Sun":     {"Ser", "Identidade, Essência e Brilho"},
	"Moon":    {"Sentir", "Emoção, Nutrição e Hábito"},
	"Mercury": {"Comunicar", "Pensamento e Conexão, Raciocínio"},
	"Venus":   {"Relacionar", "Valor, Afeto e Atração"},
	"Mars":    {"Agir", "Impulso, Luta e Iniciativa"},
	"Jupiter": {"Expandir", "Crescimento, Otimismo e Fé"},
	"Saturn":  {"Estruturar", "Limite, Disciplina e Responsabilidade"},
	"Uranus":  {"Inovar", "Quebra, Mudança Súbita e Revolução"},
	"Neptune": {"Idealizar", "Dissolver, Sonhar e Ilusão"},
	"Pluto":   {"Transformar", "Poder, Crise e Regeneração"},
}

type signText struct {
	Noun    string
	Quality string
}

var signDescriptions = map[string]signText{
	"Aries":       {"Início", "Impulso, Coragem e Ponto de Partida"},
	"Taurus":      {"Valor", "Estabilidade, Materialidade e Posse"},
	"Gemini":      {"Conexão", "Curiosidade, Dualidade e Troca"},
	"Cancer":      {"Acolhimento", "Emoção, Raiz e Família"},
	"Leo":         {"Expressão", "Brilho, Centralidade e Liderança"},
	"Virgo":       {"Serviço", "Análise, Detalhe e Método"},
	"Libra":       {"Equilíbrio", "Justiça, Parceria e Harmonia"},
	"Scorpio":     {"Profundidade", "Intensidade, Crise e Transformação"},
	"Sagittarius": {"Busca", "Expansão, Conhecimento e Aventura"},
	"Capricorn":   {"Realização", "Estrutura, Ambição e Autoridade"},
	"Aquarius":    {"Liberdade", "Humanidade, Inovação e Coletivo"},
	"Pisces":      {"União", "Sensibilidade, Empatia e Totalidade"},
}

type houseText struct {
	Noun  string
	Theme string
}

var houseDescriptions = map[int]houseText{
	1:  {"Eu", "Identidade, Aparência e Início de Tudo"},
	2:  {"Recursos", "Finanças, Bens Materiais e Valor Pessoal"},
	3:  {"Comunidade", "Comunicação Diária, Irmãos e Estudos Básicos"},
	4:  {"Raízes", "Lar, Família, Passado e Base Emocional"},
	5:  {"Criação", "Prazer, Filhos, Hobbies e Criatividade"},
	6:  {"Rotina", "Trabalho Diário, Saúde, Serviço e Hábitos"},
	7:  {"Parceria", "Relacionamentos, Casamento e Associações"},
	8:  {"Transformação", "Crises, Intimidade, Finanças Compartilhadas e Morte e Renascimento"},
	9:  {"Sentido", "Filosofia, Ensino Superior, Viagens Longas e Crenças"},
	10: {"Carreira", "Status, Reputação Pública, Vocação e Autoridade"},
	11: {"Grupo", "Amizades, Metas, Causas e Coletividade"},
	12: {"Inconsciente", "Isolamento, Espiritualidade, Sacrifício e Assuntos Ocultos"},
}

// HouseTheme returns the noun and theme of a house, with a readable
// fallback for unknown numbers.
func HouseTheme(house int) (string, string) {
	if t, ok := houseDescriptions[house]; ok {
		return t.Noun, t.Theme
	}
	return "Casa desconhecida", "Tema da casa não disponível"
}

type styleText struct {
	Short string
	Long  string
}

type planetTemplate struct {
	Technical styleText
	Poetic    styleText
}

var planetTemplates = map[string]planetTemplate{
	"Sun": {
		Technical: styleText{
			Short: "É tempo de: afirmar identidade e propósito.",
			Long: "É tempo de: afirmar identidade e propósito.\n\n" +
				"Ações práticas:\n" +
				"- Defina um objetivo central para o ano.\n" +
				"- Meça impacto por visibilidade (ex.: feitos, reconhecimento recebido).\n" +
				"- Revise mensalmente prioridades e ajuste conforme resultados.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: frequência de ações alinhadas ao seu propósito.\n" +
				"- Secundária: relatos de mudanças percebida.",
		},
		Poetic: styleText{
			Short: "É tempo de: deixar o Sol revelar sua presença.",
			Long: "O Sol é a centelha que revela quem somos. Sua luz não pede permissão, apenas se mostra. " +
				"Cada gesto é um raio que ilumina o caminho da identidade.\n\n" +
				"Reflexão filosófica:\n" +
				"- A presença é prática de autenticidade.\n" +
				"- O brilho não é medido em números, mas em coerência.\n\n" +
				"Metáfora: cultivar o próprio Sol é aprender a ser janela aberta para o mundo.",
		},
	},
	"Moon": {
		Technical: styleText{
			Short: "É tempo de: cuidar das emoções e da rotina.",
			Long: "É tempo de: cuidar das emoções e da rotina.\n\n" +
				"Ações práticas:\n" +
				"- Crie um hábito noturno de relaxamento.\n" +
				"- Registre humor e qualidade do sono diariamente.\n" +
				"- Ajuste hábitos semanais conforme padrões percebidos.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: consistência do autocuidado.\n" +
				"- Secundária: variação de humor registrada.",
		},
		Poetic: styleText{
			Short: "É tempo de: ouvir as marés internas da Lua.",
			Long: "A Lua nos lembra que somos feitos de ciclos. Suas fases refletem o movimento íntimo das emoções. " +
				"Cuidar da maré interior é manter fértil a costa da vida.\n\n" +
				"Reflexão filosófica:\n" +
				"- Emoções são ondas que pedem aceitação.\n" +
				"- O silêncio noturno é convite à escuta.\n\n" +
				"Metáfora: cada hábito de cuidado é como devolver água ao rio que nos sustenta.",
		},
	},
	"Mercury": {
		Technical: styleText{
			Short: "É tempo de: comunicar com clareza e foco.",
			Long: "É tempo de: comunicar com clareza e foco.\n\n" +
				"Ações práticas:\n" +
				"- Defina uma mensagem-chave por semana.\n" +
				"- Meça clareza pelo feedback recebido.\n" +
				"- Use ciclos curtos de revisão para reduzir ruído.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: taxa de compreensão.\n" +
				"- Secundária: tempo médio de resposta.",
		},
		Poetic: styleText{
			Short: "É tempo de: deixar Mercúrio soprar ideias organizadas.",
			Long: "Mercúrio é vento que leva palavras. Cada frase é fio que tece a rede da convivência. " +
				"Comunicar é mais que transmitir: é criar pontes invisíveis.\n\n" +
				"Reflexão filosófica:\n" +
				"- A palavra é gesto de cuidado.\n" +
				"- O silêncio também comunica.\n\n" +
				"Metáfora: tratar ideias como cartas que precisam ser endereçadas com atenção.",
		},
	},
	"Venus": {
		Technical: styleText{
			Short: "É tempo de: nutrir valores, vínculos e estética.",
			Long: "É tempo de: nutrir valores, vínculos e estética.\n\n" +
				"Ações práticas:\n" +
				"- Ofereça um gesto de carinho ou apreço por dia.\n" +
				"- Crie um ritual semanal de apreciação (flores, música, encontro).\n" +
				"- Observe como a reciprocidade se transforma em 21 dias.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: satisfação relacional.\n" +
				"- Secundária: frequência de gestos de cuidado.",
		},
		Poetic: styleText{
			Short: "É tempo de: deixar Vênus suavizar o mundo com beleza.",
			Long: "Vênus lembra que relações e estética são práticas de cuidado. " +
				"Pequenos atos de apreço transformam ambientes e vínculos.\n\n" +
				"Reflexão filosófica:\n" +
				"- A beleza é ponte para o afeto.\n" +
				"- O gesto simples é o que sustenta o vínculo.\n\n" +
				"Metáfora: cada gesto é uma semente que floresce em vínculos.",
		},
	},
	"Mars": {
		Technical: styleText{
			Short: "É tempo de: agir com energia e direção.",
			Long: "É tempo de: agir com energia e direção.\n\n" +
				"Ações práticas:\n" +
				"- Trabalhe em blocos de 25–50 minutos com foco total.\n" +
				"- Registre ao final de cada bloco o que foi conquistado.\n" +
				"- Use pausas conscientes para renovar a chama.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: tarefas concluídas por dia.\n" +
				"- Secundária: qualidade e rapidez de seus feitos.",
		},
		Poetic: styleText{
			Short: "É tempo de: acender a tocha de Marte.",
			Long: "Marte é faísca que pede direção. Cada ação é uma tocha acesa no caminho.\n\n" +
				"Reflexão filosófica:\n" +
				"- Energia sem foco é dispersão.\n" +
				"- O movimento consciente é criação.\n\n" +
				"Metáfora: acender uma tocha por dia é revelar o caminho.",
		},
	},
	"Jupiter": {
		Technical: styleText{
			Short: "É tempo de: expandir horizontes com prudência.",
			Long: "É tempo de: expandir horizontes com prudência.\n\n" +
				"Ações práticas:\n" +
				"- Escolha uma área para expandir e defina metas trimestrais.\n" +
				"- Experimente uma nova prática de aprendizado por 30 dias.\n" +
				"- Registre insights e aplique um por semana.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: novos contatos ou conhecimentos aplicados.\n" +
				"- Secundária: impacto qualitativo.",
		},
		Poetic: styleText{
			Short: "É tempo de: abrir a janela de Júpiter.",
			Long: "Júpiter amplia o campo de visão. Cada curiosidade é uma semente que cresce em árvore de sabedoria.\n\n" +
				"Reflexão filosófica:\n" +
				"- Crescer é escolher conscientemente.\n" +
				"- A expansão é convite à responsabilidade.\n\n" +
				"Metáfora: plantar sementes de curiosidade é ver a copa se erguer.",
		},
	},
	"Saturn": {
		Technical: styleText{
			Short: "É tempo de: construir com disciplina e método.",
			Long: "É tempo de: construir com disciplina e método.\n\n" +
				"Ações práticas:\n" +
				"- Planeje projetos com etapas claras e prazos realistas.\n" +
				"- Revise progresso mensalmente e ajuste estruturas.\n" +
				"- Reserve tempo para manutenção e cuidado das bases.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: cumprimento de marcos.\n" +
				"- Secundária: estabilidade ao longo do tempo.",
		},
		Poetic: styleText{
			Short: "É tempo de: erguer a pedra de Saturno.",
			Long: "Saturno ensina que disciplina é liberdade construída. Cada compromisso é uma pedra que fortalece a obra da vida.\n\n" +
				"Reflexão filosófica:\n" +
				"- A disciplina é forma de cuidado.\n" +
				"- O limite é espaço para crescer.\n\n" +
				"Metáfora: construir devagar é garantir que a obra dure.",
		},
	},
	"Uranus": {
		Technical: styleText{
			Short: "Inovação, ruptura e experimentação controlada.",
			Long: "Resumo: testar novas abordagens com salvaguardas.\n\n" +
				"Ações recomendadas:\n" +
				"- 1) Projete experimentos de baixo risco.\n" +
				"- 2) Meça por aprendizado e taxa de iteração.\n" +
				"- 3) Documente falhas e hipóteses para ajustar rapidamente.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: número de experimentos válidos.\n" +
				"- Secundária: insights aplicáveis.",
		},
		Poetic: styleText{
			Short: "Sopro de novidade e surpresa.",
			Long: "Urano é vento que muda a paisagem. Permita-se um gesto inesperado que quebre a rotina e revele novas rotas.\n\n" +
				"Rituais sugeridos:\n" +
				"- Faça algo fora do padrão uma vez por semana.\n" +
				"- Observe reações e ajuste o próximo gesto.\n\n" +
				"Metáfora: um sopro que redesenha o mapa.",
		},
	},
	"Neptune": {
		Technical: styleText{
			Short: "Imaginação, intuição e sensibilidade.",
			Long: "Resumo: integrar intuição com práticas concretas.\n\n" +
				"Ações recomendadas:\n" +
				"- 1) Reserve tempo para reflexão criativa.\n" +
				"- 2) Meça por ideias geradas e protótipos simples.\n" +
				"- 3) Proteja-se de confusão com critérios claros de validação.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: número de ideias testadas.\n" +
				"- Secundária: clareza de critérios.",
		},
		Poetic: styleText{
			Short: "Névoa que revela imagens interiores.",
			Long: "Netuno convoca imagens e sonhos. Use práticas de imaginação guiada para transformar intuição em gesto.\n\n" +
				"Rituais sugeridos:\n" +
				"- Meditação breve antes de criar.\n" +
				"- Registro de sonhos ou insights por 21 dias.\n\n" +
				"Metáfora: navegue a névoa com um leme de intenção.",
		},
	},
	"Pluto": {
		Technical: styleText{
			Short: "Transformação profunda e reestruturação.",
			Long: "Resumo: processos de eliminação e renascimento.\n\n" +
				"Ações recomendadas:\n" +
				"- 1) Identifique padrões a serem transformados.\n" +
				"- 2) Planeje passos de desapego e reconstrução.\n" +
				"- 3) Meça por mudanças estruturais e resiliência.\n\n" +
				"Métricas sugeridas:\n" +
				"- Primária: indicadores de mudança estrutural.\n" +
				"- Secundária: recuperação pós-transformação.",
		},
		Poetic: styleText{
			Short: "Subsolo que revela raízes e renovações.",
			Long: "Plutão trabalha nas profundezas. Encare o processo como poda radical que permite novo crescimento.\n\n" +
				"Rituais sugeridos:\n" +
				"- Trabalho simbólico de liberação (escrever e queimar, por exemplo).\n" +
				"- Período de reconstrução com metas pequenas e firmes.\n\n" +
				"Metáfora: renascer a partir do que foi deixado para trás.",
		},
	},
}

var defaultPlanetTemplate = planetTemplate{
	Technical: styleText{
		Short: "Função planetária específica.",
		Long: "Resumo: foco prático.\n\n" +
			"Ações recomendadas:\n" +
			"- 1) Defina objetivo claro.\n" +
			"- 2) Meça progresso com indicadores simples.\n" +
			"- 3) Revise periodicamente.",
	},
	Poetic: styleText{
		Short: "Sopro singular que pede atenção.",
		Long: "Resumo poético: atenção e ritual.\n\n" +
			"Rituais sugeridos:\n" +
			"- Pequeno gesto diário por 21 dias.\n" +
			"- Observação e registro.",
	},
}
