package arcana

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func TestByName(t *testing.T) {
	tests := []struct {
		in     string
		number int
	}{
		{"Moon", 2},
		{"Lua", 2},
		{"Sun", 22},
		{"sol", 22},
		{"Scorpio", 14},
		{"Escorpião", 14},
		{"escorpiao", 14},
		{"Capricórnio", 16},
		{"taurus", 6},
	}
	for _, tt := range tests {
		arc, ok := ByName(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.number, arc.Number, tt.in)
	}

	_, ok := ByName("Cometa")
	assert.False(t, ok)
}

func TestByNumber(t *testing.T) {
	arc, ok := ByNumber(13)
	require.True(t, ok)
	assert.Equal(t, "Plutão", arc.Name)

	_, ok = ByNumber(23)
	assert.False(t, ok)
}

func TestFromDOB(t *testing.T) {
	// 15/05/1990 -> 1+5+0+5+1+9+9+0 = 30 -> 3
	assert.Equal(t, 3, FromDOB(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)))
	// 29/11/1999 -> 2+9+1+1+1+9+9+9 = 41 -> 5
	assert.Equal(t, 5, FromDOB(time.Date(1999, 11, 29, 0, 0, 0, 0, time.UTC)))
	// 28/09/1999 -> 2+8+0+9+1+9+9+9 = 47 -> 11
	assert.Equal(t, 11, FromDOB(time.Date(1999, 9, 28, 0, 0, 0, 0, time.UTC)))
}

func TestCorrelate(t *testing.T) {
	svc := New(slog.Default())

	arc, conf, err := svc.Correlate("Moon", 45.5)
	require.NoError(t, err)
	assert.Equal(t, 2, arc.Number)
	assert.Equal(t, 0.5, conf)

	// Within 2 degrees of a cusp the confidence drops.
	_, conf, err = svc.Correlate("Moon", 30.5)
	require.NoError(t, err)
	assert.Equal(t, 0.43, conf)

	_, conf, err = svc.Correlate("Moon", 59.1)
	require.NoError(t, err)
	assert.Equal(t, 0.43, conf)

	_, _, err = svc.Correlate("Cometa", 10)
	assert.True(t, domain.IsBusinessError(err))
}

func TestReading(t *testing.T) {
	svc := New(slog.Default())

	arc, _ := ByNumber(2)
	reading := svc.Reading(arc, 4, 0.5, "Ana")
	assert.Equal(t, 2, reading.Arcanum.Number)
	assert.Equal(t, 4, reading.House)
	assert.Equal(t, "Lar, Família, Passado e Base Emocional", reading.HouseTheme)
	assert.Equal(t, "Ana, o Arcano 2 (A Sacerdotisa) fala de interioridade, intuição e mistério.", reading.Short)
	assert.Contains(t, reading.Long, "escuta do inconsciente")

	// Unknown house leaves the theme empty.
	noHouse := svc.Reading(arc, 0, 0.5, "Ana")
	assert.Empty(t, noHouse.HouseTheme)
}

func TestRenderHouse(t *testing.T) {
	svc := New(slog.Default())

	arc, _ := ByNumber(11)
	text := svc.RenderHouse(arc, 10, "Ana")
	assert.Contains(t, text, "Arcano 11 na Casa 10 (Status, Reputação Pública, Vocação e Autoridade)")
	assert.Contains(t, text, "Ana, o Arcano 11 (A Força)")
	assert.Contains(t, text, "Palavras-chave: ação, coragem, conflito")
}

func TestTextsFallback(t *testing.T) {
	assert.Equal(t, "Consulente, este é um momento para atenção interior e ação consciente.", ShortText(0, ""))
	assert.Contains(t, LongText(25, "Ana"), "Ana, concentre-se em práticas")
}
