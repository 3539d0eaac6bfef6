package astro

// HouseForLongitude places a longitude in one of the 12 houses described by
// the cusp longitudes (houses 1..12). Intervals are circular: [cusp[i],
// cusp[i+1]) with wrap-around. Returns 12 when no interval matches and 0
// when cusps are missing.
func HouseForLongitude(lon float64, cusps []float64) int {
	if len(cusps) < 12 {
		return 0
	}
	lon = posMod(lon, 360)
	for i := 0; i < 12; i++ {
		start := posMod(cusps[i], 360)
		end := posMod(cusps[(i+1)%12], 360)
		if start <= end {
			if start <= lon && lon < end {
				return i + 1
			}
		} else if lon >= start || lon < end {
			return i + 1
		}
	}
	return 12
}
