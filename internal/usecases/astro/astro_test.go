package astro

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestLonToSignDegree(t *testing.T) {
	tests := []struct {
		lon    float64
		sign   string
		degree float64
		index  int
	}{
		{0, "Aries", 0, 1},
		{29.99, "Aries", 29.99, 1},
		{30, "Taurus", 0, 2},
		{123.4, "Leo", 3.4, 5},
		{359.5, "Pisces", 29.5, 12},
		{360, "Aries", 0, 1},
		{-30, "Pisces", 0, 12},
	}
	for _, tt := range tests {
		sign, deg, idx := LonToSignDegree(tt.lon)
		assert.Equal(t, tt.sign, sign, "lon %v", tt.lon)
		assert.InDelta(t, tt.degree, deg, 1e-9)
		assert.Equal(t, tt.index, idx)
	}
}

func TestComputeAspects(t *testing.T) {
	aspects := ComputeAspects(map[string]float64{
		"Sun":  10,
		"Moon": 190, // opposition, exact
		"Mars": 129, // trine to Sun with orb 1
	}, DefaultOrb)

	byPair := map[string]domain.Aspect{}
	for _, a := range aspects {
		byPair[a.First+"/"+a.Second+"/"+a.Name] = a
	}

	opp, ok := byPair["Sun/Moon/Opposition"]
	require.True(t, ok)
	assert.Equal(t, 0.0, opp.Orb)

	tri, ok := byPair["Sun/Mars/Trine"]
	require.True(t, ok)
	assert.Equal(t, 1.0, tri.Orb)

	// Wrap-around separation: 350 and 10 are 20 degrees apart, no aspect.
	none := ComputeAspects(map[string]float64{"Sun": 350, "Moon": 10}, DefaultOrb)
	assert.Empty(t, none)

	// But 355 and 55 are a sextile across the 0 boundary.
	sex := ComputeAspects(map[string]float64{"Sun": 355, "Moon": 55}, DefaultOrb)
	require.Len(t, sex, 1)
	assert.Equal(t, "Sextile", sex[0].Name)
}

func TestHouseForLongitude(t *testing.T) {
	// Equal houses starting at 0.
	cusps := []float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}
	assert.Equal(t, 1, HouseForLongitude(15, cusps))
	assert.Equal(t, 12, HouseForLongitude(345, cusps))

	// Wrap-around interval: house 12 spans 330..20.
	shifted := []float64{20, 50, 80, 110, 140, 170, 200, 230, 260, 290, 320, 330}
	assert.Equal(t, 12, HouseForLongitude(5, shifted))
	assert.Equal(t, 12, HouseForLongitude(350, shifted))
	assert.Equal(t, 1, HouseForLongitude(25, shifted))

	assert.Equal(t, 0, HouseForLongitude(10, nil))
}

func natalFixture() *domain.NatalPositions {
	asc := 100.0
	mc := 10.0
	return &domain.NatalPositions{
		JulianDay: 2451545.0,
		Planets: map[string]domain.EphemerisPlanet{
			"Sun":  {Longitude: 45.5},
			"Moon": {Longitude: 225.5},
		},
		Cusps:     []float64{0, 100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70},
		Ascendant: &asc,
		MC:        &mc,
	}
}

func TestBuildChartSummary(t *testing.T) {
	summary := BuildChartSummary(natalFixture())

	require.Len(t, summary.Planets, 2)
	sun := summary.Planets[0]
	assert.Equal(t, "Sun", sun.Planet)
	assert.Equal(t, "Taurus", sun.Sign)
	assert.Equal(t, 15.5, sun.Degree)
	assert.Equal(t, 11, sun.House) // 45.5 falls in the 40..70 interval

	require.Len(t, summary.Cusps, 12)
	assert.Equal(t, 1, summary.Cusps[0].House)
	assert.Equal(t, "Cancer", summary.Cusps[0].Sign)

	require.NotNil(t, summary.Ascendant)
	assert.Equal(t, "Cancer", summary.Ascendant.Sign)

	// Sun and Moon sit in exact opposition.
	require.NotEmpty(t, summary.Aspects)
	assert.Equal(t, "Opposition", summary.Aspects[0].Name)
	assert.Equal(t, 0.0, summary.Aspects[0].Orb)
}

func TestBuildChartSummaryWithoutBirthTime(t *testing.T) {
	natal := natalFixture()
	natal.Cusps = nil
	natal.Ascendant = nil
	natal.MC = nil

	summary := BuildChartSummary(natal)
	assert.Empty(t, summary.Cusps)
	assert.Nil(t, summary.Ascendant)
	assert.Equal(t, 0, summary.Planets[0].House)
}

func TestBuildPrompt(t *testing.T) {
	summary := BuildChartSummary(natalFixture())
	prompt := BuildPrompt(summary)

	assert.Contains(t, prompt, "ASCENDENTE: Cancer 10°")
	assert.Contains(t, prompt, "CÚSPIDES (1–12): 1: Cancer 10°")
	assert.Contains(t, prompt, "- Sun: Taurus 15.5° casa 11")
	assert.Contains(t, prompt, "1) Analogia ao teatro")
}

func TestBuildPromptWithoutBirthTime(t *testing.T) {
	natal := natalFixture()
	natal.Cusps = nil
	natal.Ascendant = nil
	natal.MC = nil

	prompt := BuildPrompt(BuildChartSummary(natal))
	assert.Contains(t, prompt, "ASCENDENTE: não calculado (hora de nascimento ausente ou inválida)")
	assert.Contains(t, prompt, "CÚSPIDES: não calculadas (hora de nascimento ausente ou inválida)")
	assert.Contains(t, prompt, "casa —")
}

func TestInterpretPosition(t *testing.T) {
	svc := New(slog.Default())

	out := svc.InterpretPosition("Moon", "Taurus", f(12.34), 4, nil, "Ana")
	assert.Equal(t, "Moon", out.Planet)
	assert.Contains(t, out.Short, "Ana, Moon em Taurus 12.34°")
	assert.Contains(t, out.Short, "campo do(a) raízes")
	assert.Contains(t, out.Long, "A presença na casa do(a) Raízes")
	assert.Contains(t, out.Long, "Sem dados de aspectos")

	withAspects := svc.InterpretPosition("Moon", "Taurus", nil, 0, []domain.Aspect{
		{First: "Moon", Second: "Sun", Name: "Trine", Orb: 1.2},
	}, "")
	assert.Contains(t, withAspects.Long, "trine com Sun (orb 1.2)")
	assert.Contains(t, withAspects.Long, "Casa desconhecida")
}

func TestStyledInterpretation(t *testing.T) {
	svc := New(slog.Default())

	tech := svc.StyledInterpretation("Sun", "Leo", f(5.0), 10, nil, "Ana", domain.StyleTechnical)
	assert.True(t, strings.HasPrefix(tech.Short, "Ana, É tempo de: afirmar identidade"))
	assert.Contains(t, tech.Long, "Grau: 5°.")
	assert.Contains(t, tech.Long, "Em Leo, a expressão tende a brilho.")
	assert.Contains(t, tech.Long, "No âmbito da casa 10, foco em status.")

	poetic := svc.StyledInterpretation("Moon", "", nil, 0, nil, "", domain.StylePoetic)
	assert.Equal(t, "É tempo de: ouvir as marés internas da Lua.", poetic.Short)

	// Accented casing of a known key still resolves.
	pt := svc.StyledInterpretation("pluto", "", nil, 0, nil, "", domain.StyleTechnical)
	assert.Contains(t, pt.Short, "Transformação profunda")

	unknown := svc.StyledInterpretation("Chiron", "", nil, 0, nil, "", domain.StyleTechnical)
	assert.Equal(t, "Função planetária específica.", unknown.Short)
}

func TestRenderWheelSVG(t *testing.T) {
	svg := string(RenderWheelSVG(BuildChartSummary(natalFixture())))
	assert.Contains(t, svg, `<svg xmlns="http://www.w3.org/2000/svg" width="700" height="700"`)
	assert.Contains(t, svg, ">SU</text>")
	assert.Contains(t, svg, ">MO</text>")
	assert.Equal(t, 12, strings.Count(svg, "<line"))
}
