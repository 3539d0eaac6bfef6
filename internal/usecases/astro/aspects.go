package astro

import (
	"math"
	"sort"

	"github.com/vbautistacode/etheria/internal/domain"
)

// DefaultOrb is the maximum deviation from an exact aspect angle.
const DefaultOrb = 6.0

type aspectAngle struct {
	Angle float64
	Name  string
}

var aspectAngles = []aspectAngle{
	{0, "Conjunction"},
	{180, "Opposition"},
	{120, "Trine"},
	{90, "Square"},
	{60, "Sextile"},
}

// ComputeAspects finds the major aspects between every pair of planets.
// Pairs are compared by the shortest angular separation.
func ComputeAspects(longitudes map[string]float64, orb float64) []domain.Aspect {
	if orb <= 0 {
		orb = DefaultOrb
	}

	names := make([]string, 0, len(longitudes))
	for name := range longitudes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return planetRank(names[i]) < planetRank(names[j])
	})

	var aspects []domain.Aspect
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			diff := math.Abs(posMod(longitudes[names[i]]-longitudes[names[j]]+180, 360) - 180)
			for _, a := range aspectAngles {
				if dev := math.Abs(diff - a.Angle); dev <= orb {
					aspects = append(aspects, domain.Aspect{
						First:  names[i],
						Second: names[j],
						Name:   a.Name,
						Angle:  a.Angle,
						Orb:    round3(dev),
					})
				}
			}
		}
	}
	return aspects
}

func planetRank(name string) int {
	for i, p := range PlanetOrder {
		if p == name {
			return i
		}
	}
	return len(PlanetOrder)
}
