package astro

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vbautistacode/etheria/internal/domain"
)

// BuildChartSummary turns raw ephemeris positions into the structured chart:
// signs and degrees per planet, house placements when cusps are known,
// angles and major aspects.
func BuildChartSummary(natal *domain.NatalPositions) *domain.ChartSummary {
	summary := &domain.ChartSummary{JulianDay: natal.JulianDay}

	var cuspLons []float64
	if len(natal.Cusps) >= 13 {
		cuspLons = natal.Cusps[1:13]
		summary.Cusps = make([]domain.HouseCusp, 0, 12)
		for i, lon := range cuspLons {
			sign, deg, _ := LonToSignDegree(lon)
			summary.Cusps = append(summary.Cusps, domain.HouseCusp{
				House:     i + 1,
				Longitude: lon,
				Sign:      sign,
				Degree:    round4(deg),
			})
		}
	}

	names := make([]string, 0, len(natal.Planets))
	for name := range natal.Planets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return planetRank(names[i]) < planetRank(names[j])
	})

	longitudes := make(map[string]float64, len(names))
	for _, name := range names {
		p := natal.Planets[name]
		sign, deg, signIdx := LonToSignDegree(p.Longitude)
		pos := domain.PlanetPosition{
			Planet:    name,
			Longitude: round2(p.Longitude),
			Sign:      sign,
			Degree:    deg,
			SignIndex: signIdx,
			Latitude:  p.Latitude,
			Distance:  p.Distance,
		}
		if cuspLons != nil {
			pos.House = HouseForLongitude(p.Longitude, cuspLons)
		}
		summary.Planets = append(summary.Planets, pos)
		longitudes[name] = p.Longitude
	}

	if natal.Ascendant != nil {
		sign, deg, _ := LonToSignDegree(*natal.Ascendant)
		summary.Ascendant = &domain.ChartPoint{Longitude: *natal.Ascendant, Sign: sign, Degree: deg}
	}
	if natal.MC != nil {
		sign, deg, _ := LonToSignDegree(*natal.MC)
		summary.MC = &domain.ChartPoint{Longitude: *natal.MC, Sign: sign, Degree: deg}
	}

	summary.Aspects = ComputeAspects(longitudes, DefaultOrb)
	return summary
}

const promptInstructions = "Use os dados acima para interpretar o mapa. Inclua o Ascendente e a casa de cada planeta quando disponíveis.\n" +
	"Se algum dado estiver ausente, explique claramente que não foi possível calcular e por quê.\n" +
	"Siga a numeração das seções: 1) Analogia ao teatro; 2) Primeira tríade (ASC, Sol, Lua); " +
	"3) Segunda tríade (Marte, Mercúrio, Vênus); 4) Tríade social (Júpiter, Saturno); " +
	"5) Tríade geracional (Urano, Netuno, Plutão); 6) Elementos; 7) Astrologia cármica."

// BuildPrompt serializes a chart summary into the text block fed to the
// narrative generator.
func BuildPrompt(summary *domain.ChartSummary) string {
	var parts []string

	if summary.Ascendant != nil {
		parts = append(parts, fmt.Sprintf("ASCENDENTE: %s %s°", summary.Ascendant.Sign, formatNum(summary.Ascendant.Degree)))
	} else {
		parts = append(parts, "ASCENDENTE: não calculado (hora de nascimento ausente ou inválida)")
	}

	if len(summary.Cusps) > 0 {
		lines := make([]string, 0, len(summary.Cusps))
		for _, c := range summary.Cusps {
			lines = append(lines, fmt.Sprintf("%d: %s %s°", c.House, c.Sign, formatNum(c.Degree)))
		}
		parts = append(parts, "CÚSPIDES (1–12): "+strings.Join(lines, "; "))
	} else {
		parts = append(parts, "CÚSPIDES: não calculadas (hora de nascimento ausente ou inválida)")
	}

	planetLines := make([]string, 0, len(summary.Planets))
	for _, p := range summary.Planets {
		house := "—"
		if p.House > 0 {
			house = strconv.Itoa(p.House)
		}
		planetLines = append(planetLines, fmt.Sprintf("- %s: %s %s° casa %s", p.Planet, p.Sign, formatNum(p.Degree), house))
	}
	parts = append(parts, "PLANETAS:\n"+strings.Join(planetLines, "\n"))

	return strings.Join(parts, "\n\n") + "\n\n" + promptInstructions
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
