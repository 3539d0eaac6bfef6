package astro

import "math"

// Signs in tropical order starting at Aries.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// PlanetOrder is the display order for position tables.
var PlanetOrder = []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}

func posMod(a, n float64) float64 {
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// LonToSignDegree converts an ecliptic longitude into (sign name, degree
// within the sign rounded to 2 decimals, sign index 1..12).
func LonToSignDegree(lon float64) (string, float64, int) {
	lon = posMod(lon, 360)
	idx := int(lon/30) % 12
	return Signs[idx], round2(math.Mod(lon, 30)), idx + 1
}
