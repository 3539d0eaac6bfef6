package astro

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vbautistacode/etheria/internal/domain"
)

// Service renders placement interpretations and chart summaries.
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

func formatDegree(deg *float64) string {
	if deg == nil {
		return ""
	}
	return strconv.FormatFloat(round2(*deg), 'f', -1, 64) + "°"
}

func normalizeName(name string) string {
	decomposed := norm.NFKD.String(name)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

func templateFor(planet string) planetTemplate {
	if tpl, ok := planetTemplates[planet]; ok {
		return tpl
	}
	key := normalizeName(planet)
	for name, tpl := range planetTemplates {
		if normalizeName(name) == key {
			return tpl
		}
	}
	return defaultPlanetTemplate
}

func firstQuality(list string) string {
	if list == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(strings.SplitN(list, ",", 2)[0]))
}

func aspectsFor(planet string, aspects []domain.Aspect) []string {
	var notes []string
	for _, a := range aspects {
		if a.First != planet && a.Second != planet {
			continue
		}
		other := a.Second
		if a.Second == planet {
			other = a.First
		}
		notes = append(notes, fmt.Sprintf("%s com %s (orb %g)", strings.ToLower(a.Name), other, a.Orb))
	}
	return notes
}

// InterpretPosition builds the classic short and long reading for a planet
// at a given sign, degree and house. Unknown parts degrade into readable
// fallbacks rather than errors.
func (s *Service) InterpretPosition(planet, sign string, degree *float64, house int, aspects []domain.Aspect, contextName string) domain.PlanetInterpretation {
	core, ok := planetCores[planet]
	if !ok {
		core = planetCore{"Atuar", "Função específica relacionada ao planeta"}
	}
	signDesc, ok := signDescriptions[sign]
	if !ok {
		signDesc = signText{sign, "Qualidade específica do signo"}
	}
	houseNoun, houseTheme := HouseTheme(house)

	signLabel := sign
	if signLabel == "" {
		signLabel = "—"
	}
	degText := formatDegree(degree)
	who := ""
	if contextName != "" {
		who = contextName + ", "
	}

	at := signLabel
	if degText != "" {
		at += " " + degText
	}
	short := fmt.Sprintf("%s%s em %s fala sobre %s conectando %s. Resumo prático: %s no campo do(a) %s.",
		who, planet, at,
		strings.ToLower(core.Core), strings.ToLower(signDesc.Quality),
		strings.ToLower(core.Verb), strings.ToLower(houseNoun))

	p1 := fmt.Sprintf("%s representa a(o) %s. Em %s, traz a ideia de %s. Essa energia tende a se expressar como %s orientado para %s.",
		planet, strings.ToLower(core.Core), signLabel,
		strings.ToLower(signDesc.Quality), strings.ToLower(core.Verb), strings.ToLower(signDesc.Noun))
	if degText != "" {
		p1 += fmt.Sprintf(" (grau %s).", degText)
	}

	p2 := fmt.Sprintf("A presença na casa do(a) %s aponta para ênfase em %s. Na prática, espere que assuntos ligados a(ao) %s sejam o palco onde essa energia se manifesta.",
		houseNoun, strings.ToLower(houseTheme), strings.ToLower(houseNoun))

	var p3 string
	if len(aspects) > 0 {
		if rel := aspectsFor(planet, aspects); len(rel) > 0 {
			p3 = "Aspectos relevantes: " + strings.Join(rel, "; ") + "."
		} else {
			p3 = "Não há aspectos maiores registrados que modifiquem substancialmente esta leitura."
		}
	} else {
		p3 = "Sem dados de aspectos, considere que a leitura é focal e direta."
	}

	quality := firstQuality(signDesc.Quality)
	if quality == "" {
		quality = "equilíbrio"
	}
	p4 := fmt.Sprintf("Recomendações práticas: cultive %s e aplique de forma consciente no âmbito da(o) %s. Evite extremos e busque equilíbrio entre intenção e ação.",
		quality, strings.ToLower(houseNoun))

	return domain.PlanetInterpretation{
		Planet: planet,
		Short:  short,
		Long:   strings.Join([]string{p1, p2, p3, p4}, "\n\n"),
	}
}

// StyledInterpretation renders the per-planet cycle text in the requested
// voice, enriched with sign, house and aspect context when available.
func (s *Service) StyledInterpretation(planet, sign string, degree *float64, house int, aspects []domain.Aspect, contextName string, style domain.InterpretationStyle) domain.PlanetInterpretation {
	tpl := templateFor(planet)
	chosen := tpl.Technical
	if style == domain.StylePoetic {
		chosen = tpl.Poetic
	}

	short := chosen.Short
	if contextName != "" {
		short = contextName + ", " + short
	}

	var extras []string
	if degree != nil {
		extras = append(extras, fmt.Sprintf("Grau: %s.", strconv.FormatFloat(round3(*degree), 'f', -1, 64)+"°"))
	}
	if sign != "" {
		if desc, ok := signDescriptions[sign]; ok {
			extras = append(extras, fmt.Sprintf("Em %s, a expressão tende a %s.", sign, firstQuality(desc.Quality)))
		}
	}
	if house > 0 {
		_, theme := HouseTheme(house)
		extras = append(extras, fmt.Sprintf("No âmbito da casa %d, foco em %s.", house, firstQuality(theme)))
	}
	if notes := aspectsFor(planet, aspects); len(notes) > 0 {
		extras = append(extras, "Aspectos relevantes: "+strings.Join(notes, "; ")+".")
	}

	long := chosen.Long
	if len(extras) > 0 {
		long += "\n\n" + strings.Join(extras, " ")
	}

	return domain.PlanetInterpretation{Planet: planet, Short: short, Long: long}
}
