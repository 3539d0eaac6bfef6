package numerology

import "fmt"

// Classic keyword tables used to annotate aggregate readings.
var pitagoricMeanings = map[int]string{
	1:  "Individual | Iniciador",
	2:  "Perceptivo | Cooperador",
	3:  "Talentoso | Criativo",
	4:  "Estável | Seguro",
	5:  "Versátil | Aventureiro",
	6:  "Conciliador | Justo",
	7:  "Intelectual | Buscador",
	8:  "Sábio | Administrador",
	9:  "Humanitário | Generoso",
	11: "Idealismo | Inspiração",
	22: "Construtor | Empreendedor",
	33: "Liderança | Comando",
	44: "Eficiente | Comunicativo",
	55: "Intuitivo | Canalizador",
	66: "Amoroso | Compaixão",
	77: "Liberdade | Discernimento",
	88: "Força Divina Transformadora",
	99: "Aperfeiçoamento",
}

var cabalisticMeanings = map[int]string{
	1:  "Muitas inteligências ou uma inteligência mal aplicada",
	2:  "Número de revelação ou ocultar verdade",
	3:  "Força muito grande de plasmação ou falta de vontade muito grande",
	4:  "O poder da decisão ou uma tirania absoluta",
	5:  "Grande espiritualidade e aberturas espirituais ou um fanatismo muito grande",
	6:  "Poder de decisão seguindo o coração ou momento de grande indecisão",
	7:  "Direcionamento bacana das energias ou um direcionamento erroneo das mesmas",
	8:  "Éticas, bons valores, moral ou falta de ética e imoralidade",
	9:  "Ter um pouco de isolamento, quietude, para achar a luz interior ou imprudência e não saber aquietar a alma",
	10: "Viver os caminhos que o destino demonstra, observar através do Karma ou correr do destino",
	11: "Equilíbrio grande entre as energias espirituais e terrenas ou não colocar em prática as duas energias juntas",
	12: "Comprometimento. Aprender a se comprometer com o que é sério para você ou irresponsabilidade, fugir do dever",
	13: "Aceitar as grandes transformações que o mundo oferece ou não aceitar e ser judiado pelas transformações",
	14: "Equilíbrio entre passado e futuro ou viver aprisionado no passado e futuro",
	15: "Aceitar as sombras e com elas transformar em luz ou ser conduzido por sombras",
	16: "Desconstruir o falso para construir o verdadeiro ou apostar em coisas desgastadas",
	17: "Aprender a ter fé e espiritualidade ou falta de fé, otimismo cego",
	18: "Ter força através dos medos ou excesso de confiança",
	19: "Trabalhar a verdadeira gratidão ou gratidão falsa",
	20: "Libertação verdadeira ou estar preso de luz para morrer",
	21: "Posicionamento claro ou experiências desconectadas",
	22: "Finalização de ciclo importante ou não saber finalizar ciclos",
}

// PitagoricMeaning returns the pythagorean keyword pair for a number.
func PitagoricMeaning(n int) string {
	if txt, ok := pitagoricMeanings[n]; ok {
		return txt
	}
	return ""
}

// CabalisticMeaning returns the dual-polarity kabbalistic meaning of a
// number 1..22.
func CabalisticMeaning(n int) string {
	if txt, ok := cabalisticMeanings[n]; ok {
		return txt
	}
	return fmt.Sprintf("Número %d", n)
}
