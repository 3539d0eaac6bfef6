package arcana

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/usecases/astro"
)

// bodyArcana correlates planets and signs with the major arcana. Keys are
// canonical English names.
var bodyArcana = map[string]domain.Arcanum{
	"Moon":    {Number: 2, Name: "Lua", Keywords: []string{"intuição", "ciclos", "sensibilidade"}},
	"Mars":    {Number: 11, Name: "Marte", Keywords: []string{"ação", "coragem", "conflito"}},
	"Saturn":  {Number: 20, Name: "Saturno", Keywords: []string{"limites", "estrutura", "responsabilidade"}},
	"Sun":     {Number: 22, Name: "Sol", Keywords: []string{"identidade", "vitalidade", "expressão"}},
	"Venus":   {Number: 3, Name: "Vênus", Keywords: []string{"afeto", "valores", "beleza"}},
	"Jupiter": {Number: 4, Name: "Júpiter", Keywords: []string{"expansão", "sorte", "crescimento"}},
	"Mercury": {Number: 17, Name: "Mercúrio", Keywords: []string{"comunicação", "mente", "movimento"}},
	"Uranus":  {Number: 1, Name: "Urano", Keywords: []string{"ruptura", "inovação"}},
	"Neptune": {Number: 21, Name: "Netuno", Keywords: []string{"sonho", "espiritualidade"}},
	"Pluto":   {Number: 13, Name: "Plutão", Keywords: []string{"transformação profunda"}},

	"Aries":       {Number: 5, Name: "Áries", Keywords: []string{"iniciativa", "coragem"}},
	"Taurus":      {Number: 6, Name: "Touro", Keywords: []string{"valores", "estabilidade"}},
	"Gemini":      {Number: 7, Name: "Gêmeos", Keywords: []string{"curiosidade", "comunicação"}},
	"Cancer":      {Number: 8, Name: "Câncer", Keywords: []string{"cuidado", "memória"}},
	"Leo":         {Number: 9, Name: "Leão", Keywords: []string{"expressão", "liderança"}},
	"Virgo":       {Number: 10, Name: "Virgem", Keywords: []string{"serviço", "detalhe"}},
	"Libra":       {Number: 12, Name: "Libra", Keywords: []string{"equilíbrio", "parcerias"}},
	"Scorpio":     {Number: 14, Name: "Escorpião", Keywords: []string{"transformação", "profundidade"}},
	"Sagittarius": {Number: 15, Name: "Sagitário", Keywords: []string{"busca", "expansão"}},
	"Capricorn":   {Number: 16, Name: "Capricórnio", Keywords: []string{"disciplina", "ambição"}},
	"Aquarius":    {Number: 18, Name: "Aquário", Keywords: []string{"visão", "inovação"}},
	"Pisces":      {Number: 19, Name: "Peixes", Keywords: []string{"imaginação", "compaixão"}},
}

// ptAliases accepts Portuguese names for the same bodies.
var ptAliases = map[string]string{
	"lua":         "Moon",
	"marte":       "Mars",
	"saturno":     "Saturn",
	"sol":         "Sun",
	"venus":       "Venus",
	"jupiter":     "Jupiter",
	"mercurio":    "Mercury",
	"urano":       "Uranus",
	"netuno":      "Neptune",
	"plutao":      "Pluto",
	"aries":       "Aries",
	"touro":       "Taurus",
	"gemeos":      "Gemini",
	"cancer":      "Cancer",
	"leao":        "Leo",
	"virgem":      "Virgo",
	"libra":       "Libra",
	"escorpiao":   "Scorpio",
	"sagitario":   "Sagittarius",
	"capricornio": "Capricorn",
	"aquario":     "Aquarius",
	"peixes":      "Pisces",
}

const baseConfidence = 0.5

func normKey(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// ByName looks up the arcanum of a planet or sign, accepting English or
// Portuguese spelling.
func ByName(name string) (domain.Arcanum, bool) {
	if arc, ok := bodyArcana[name]; ok {
		return arc, true
	}
	key := normKey(name)
	if canonical, ok := ptAliases[key]; ok {
		return bodyArcana[canonical], true
	}
	for canonical, arc := range bodyArcana {
		if normKey(canonical) == key {
			return arc, true
		}
	}
	return domain.Arcanum{}, false
}

// ByNumber finds the arcanum for a number 1..22.
func ByNumber(number int) (domain.Arcanum, bool) {
	for _, arc := range bodyArcana {
		if arc.Number == number {
			return arc, true
		}
	}
	return domain.Arcanum{}, false
}

// FromDOB reduces the digits of DDMMYYYY down to the 0..21 arcanum range.
func FromDOB(dob time.Time) int {
	total := 0
	for _, ch := range dob.Format("02012006") {
		total += int(ch - '0')
	}
	for total > 21 {
		sum := 0
		for n := total; n > 0; n /= 10 {
			sum += n % 10
		}
		total = sum
	}
	return total
}

// Service renders arcanum readings for placements and birth dates.
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Correlate finds the arcanum of a planet and scores the confidence of the
// correlation; positions within 2 degrees of a sign cusp are discounted.
func (s *Service) Correlate(planet string, lon float64) (domain.Arcanum, float64, error) {
	arc, ok := ByName(planet)
	if !ok {
		return domain.Arcanum{}, 0, domain.BusinessErrorf("no arcanum mapped for %q", planet)
	}
	confidence := baseConfidence
	degInSign := math.Mod(math.Mod(lon, 360)+360, 30)
	if degInSign < 2 || degInSign > 28 {
		confidence *= 0.85
	}
	return arc, math.Round(confidence*100) / 100, nil
}

// Reading assembles the full arcanum reading for a placement: texts, house
// theme and confidence.
func (s *Service) Reading(arc domain.Arcanum, house int, confidence float64, name string) domain.ArcanumReading {
	reading := domain.ArcanumReading{
		Arcanum:    arc,
		House:      house,
		Confidence: confidence,
		Short:      ShortText(arc.Number, name),
		Long:       LongText(arc.Number, name),
	}
	if house > 0 {
		_, reading.HouseTheme = astro.HouseTheme(house)
	}
	return reading
}

// RenderHouse builds the combined paragraph relating an arcanum to the
// house it falls in.
func (s *Service) RenderHouse(arc domain.Arcanum, house int, name string) string {
	_, theme := astro.HouseTheme(house)
	base := ShortText(arc.Number, name)
	header := fmt.Sprintf("Arcano %d na Casa %d (%s) — %s", arc.Number, house, theme, base)
	out := fmt.Sprintf("%s\n\n%s %s.", header, base, theme)
	if len(arc.Keywords) > 0 {
		out += "\n\nPalavras-chave: " + strings.Join(arc.Keywords, ", ")
	}
	return out
}
