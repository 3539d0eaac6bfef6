package therapy

import "github.com/vbautistacode/etheria/internal/domain"

var sheets = map[domain.TherapyKind]domain.TherapyContent{
	domain.TherapyCrystal: {
		Kind:  domain.TherapyCrystal,
		Title: "Cristaloterapia",
		Description: "Introdução à Cristaloterapia: propriedades simbólicas e usos práticos dos cristais " +
			"para apoio emocional, foco e aterramento. Inclui orientações básicas de cuidado " +
			"e sugestões por intenção.",
		Items: []string{
			"Quartzo rosa — acolhimento e suavização emocional",
			"Ametista — clareza mental e transmutação",
			"Turmalina negra — aterramento e proteção",
			"Citrino — vitalidade e foco criativo",
		},
	},
	domain.TherapyColor: {
		Kind:  domain.TherapyColor,
		Title: "Cromoterapia",
		Description: "Cromoterapia: exploração das cores e suas frequências para modular humor e energia. " +
			"Ferramentas simples para exercícios visuais, paletas por intenção e recomendações " +
			"rápidas para o dia a dia.",
		Items: []string{
			"Calma — Azul Claro, Verde Água, Lavanda: reduz ansiedade e acalma o sistema nervoso",
			"Foco — Amarelo Mostarda, Azul Profundo, Cinza: estimula atenção e clareza mental",
			"Energia — Vermelho, Âmbar, Dourado: aumenta vigor e motivação",
			"Equilíbrio — Verde Folha, Creme, Marrom Suave: promove aterramento e estabilidade",
			"Sono — Azul Noturno, Índigo, Prata: prepara para relaxamento profundo",
			"Criatividade — Roxo Magenta, Rosa Quente, Laranja Suave: abre canais de imaginação",
		},
	},
	domain.TherapyAroma: {
		Kind:  domain.TherapyAroma,
		Title: "Aromaterapia",
		Description: "Aromaterapia: guia introdutório sobre óleos essenciais, métodos de uso e receitas " +
			"seguras para relaxamento, foco e sono. Inclui avisos de segurança e contraindicações.",
		Items: []string{
			"Lavanda — relaxamento e sono",
			"Alecrim — foco e memória",
			"Laranja doce — ânimo e leveza",
			"Cedro — aterramento e constância",
		},
	},
	domain.TherapyMusic: {
		Kind:  domain.TherapyMusic,
		Title: "Musicoterapia",
		Description: "Musicoterapia: uso terapêutico do som para regular estados emocionais e promover " +
			"relaxamento ou foco. Sugestões de playlists, sons elementais e sessões guiadas.",
		Items: []string{
			"Ondas Suaves (Sons da Natureza) — Relaxamento: calmante",
			"Batida Alfa (Ambiente) — Foco: estimula concentração",
			"Tonalidade Terra (Sons Amadeirados) — Aterramento: estabiliza",
			"Cascata Noturna (Sons da Natureza) — Sono: induz relaxamento profundo",
			"Ritmo Vital (Trilhas Energéticas) — Energia: aumenta vigor",
		},
	},
	domain.TherapyPrana: {
		Kind:  domain.TherapyPrana,
		Title: "Pranaterapia",
		Description: "Pranaterapia: práticas guiadas de respiração e meditação centradas no prana (energia vital). " +
			"Sessões curtas por intenção (calma, foco, sono) e exercícios para integrar respiração e presença.",
		Items: []string{
			"Muladhara — Estou seguro e enraizado.",
			"Svadhishthana — Minha criatividade flui.",
			"Manipura — Ação com clareza.",
			"Anahata — Abro meu coração.",
			"Vishuddha — Comunico com verdade.",
			"Ajna — Minha percepção se afina.",
			"Sahasrara — Conecto-me ao silêncio.",
		},
	},
}

type chakraInfo struct {
	Number      int
	Name        string
	Quadrant    string
	Theme       string
	Affirmation string
}

var chakras = []chakraInfo{
	{1, "Muladhara", "1-3", "Consciência Física", "Estou seguro e enraizado."},
	{2, "Svadhishthana", "4-6", "Energia Vital", "Minha criatividade flui."},
	{3, "Manipura", "7-9", "Energias Astrais", "Ação com clareza."},
	{4, "Anahata", "10-12", "Energias Mentais", "Abro meu coração."},
	{5, "Vishuddha", "13-15", "Idéias", "Comunico com verdade."},
	{6, "Ajna", "16-18", "Intuição", "Minha percepção se afina."},
	{7, "Sahasrara", "19-21", "Conexão com os Arquétipos Universais", "Conecto-me ao silêncio."},
}
