package astro

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/vbautistacode/etheria/internal/domain"
)

const (
	wheelSize   = 700
	wheelRadius = wheelSize * 0.4
)

func polar(cx, cy, r, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// RenderWheelSVG draws the chart wheel: the zodiac circle, the 12 sign
// divisions and a two-letter marker per planet at its longitude.
func RenderWheelSVG(summary *domain.ChartSummary) []byte {
	cx, cy := float64(wheelSize)/2, float64(wheelSize)/2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		wheelSize, wheelSize, wheelSize, wheelSize)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="white" stroke="#333" stroke-width="2"/>`, cx, cy, wheelRadius)
	buf.WriteByte('\n')

	for i := 0; i < 12; i++ {
		angle := float64(i*30) - 90
		x1, y1 := polar(cx, cy, wheelRadius, angle)
		x2, y2 := polar(cx, cy, wheelRadius-20, angle)
		fmt.Fprintf(&buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#666" stroke-width="1"/>`, x1, y1, x2, y2)
		buf.WriteByte('\n')
	}

	for _, p := range summary.Planets {
		angle := p.Longitude - 90
		x, y := polar(cx, cy, wheelRadius-60, angle)
		fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-size="14" text-anchor="middle" fill="#111">%s</text>`,
			x, y, planetMarker(p.Planet))
		buf.WriteByte('\n')
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func planetMarker(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
