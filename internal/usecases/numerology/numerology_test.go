package numerology

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		keepMasters bool
		masterMin   int
		want        int
	}{
		{"single digit stays", 7, true, 11, 7},
		{"two digits collapse", 29, false, 11, 2},
		{"master 11 kept", 29, true, 11, 11},
		{"master 22 kept", 22, true, 11, 22},
		{"master 11 dropped with min 22", 29, true, 22, 2},
		{"master 22 kept with min 22", 22, true, 22, 22},
		{"large total", 1989, false, 11, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.total, tt.keepMasters, tt.masterMin))
		})
	}
}

func TestReduceKabbalistic(t *testing.T) {
	// 15/05/1990 -> 1+5+0+5+1+9+9+0 = 30 -> 3
	assert.Equal(t, 3, ReduceKabbalistic(15, 5, 1990))
	// 29/11/1999 -> 2+9+1+1+1+9+9+9 = 41 -> 5
	assert.Equal(t, 5, ReduceKabbalistic(29, 11, 1999))
	// totals <= 22 pass through untouched: 15/12/1930 -> 6+3+13 = 22
	assert.Equal(t, 22, ReduceKabbalistic(15, 12, 1930))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "JOSE DA SILVA", NormalizeName("José da Silva"))
	assert.Equal(t, "ANDRE", NormalizeName("  André!  "))
	assert.Equal(t, "", NormalizeName("123"))
}

func TestLetterValues(t *testing.T) {
	assert.Equal(t, 1, pythagoreanValue('A'))
	assert.Equal(t, 9, pythagoreanValue('I'))
	assert.Equal(t, 1, pythagoreanValue('J'))
	assert.Equal(t, 8, pythagoreanValue('Z'))

	assert.Equal(t, 8, cabalisticValue('F'))
	assert.Equal(t, 7, cabalisticValue('O'))
	assert.Equal(t, 6, cabalisticValue('X'))
}

func TestLifePath(t *testing.T) {
	svc := New(slog.Default())

	// 1990-05-15 -> 1+9+9+0+0+5+1+5 = 30 -> 3
	lp := svc.LifePath(date(1990, 5, 15))
	assert.Equal(t, 30, lp.Raw)
	assert.Equal(t, 3, lp.Value)

	// 1984-11-29 -> 1+9+8+4+1+1+2+9 = 35 -> 8
	lp = svc.LifePath(date(1984, 11, 29))
	assert.Equal(t, 35, lp.Raw)
	assert.Equal(t, 8, lp.Value)
}

func TestPinnacles(t *testing.T) {
	svc := New(slog.Default())

	// dob 1990-05-15: p1 = r(5+15)=2, p2 = r(15+19)=7 (digits of 1990 sum 19 -> 15+19=34->7)
	p := svc.Pinnacles(date(1990, 5, 15))
	assert.Equal(t, 2, p.First)
	assert.Equal(t, 7, p.Second)
	assert.Equal(t, 9, p.Third)  // r(2+7)
	assert.Equal(t, 6, p.Fourth) // r(5+19)=r(24)
}

func TestPersonalCycle(t *testing.T) {
	svc := New(slog.Default())

	// life path 3, year 2025 (digits 9): r(3+9)=r(12)=3
	pc := svc.PersonalCycle(3, date(2025, 6, 10))
	assert.Equal(t, 3, pc.Year)
	assert.Equal(t, 9, pc.Month) // r(3+6)
	assert.Equal(t, 1, pc.Day)   // r(9+10)=r(19)=r(10)=1
	assert.NotEmpty(t, pc.Description)
}

func TestAnnualInfluence(t *testing.T) {
	svc := New(slog.Default())

	infl := svc.AnnualInfluence("Ana Lima") // 7 letters
	assert.Equal(t, 7, infl.LettersCount)
	assert.Equal(t, 7, infl.Value)
	assert.Equal(t, "Manipura", infl.Chakra)
	assert.Equal(t, "7-9", infl.Quadrant)
	assert.NotEmpty(t, infl.Short)
}

func TestQuadrantFor(t *testing.T) {
	label, chakra, theme := QuadrantFor(22)
	assert.Equal(t, "22 (mestre)", label)
	assert.Equal(t, "Sahasrara", chakra)
	assert.Equal(t, "Manifestação em grande escala", theme)

	label, chakra, _ = QuadrantFor(5)
	assert.Equal(t, "4-6", label)
	assert.Equal(t, "Svadhishthana", chakra)
}

func TestFullReport(t *testing.T) {
	svc := New(slog.Default())
	ref := date(2025, 6, 10)

	t.Run("pythagorean", func(t *testing.T) {
		rep, err := svc.FullReport("José da Silva", date(1990, 5, 15), domain.MethodPythagorean, ref)
		require.NoError(t, err)

		assert.Equal(t, domain.MethodPythagorean, rep.Method)
		assert.Equal(t, "1990-05-15", rep.BirthDate)
		assert.Equal(t, 3, rep.LifePath.Value)
		assert.NotEmpty(t, rep.LifePath.Long)
		require.NotNil(t, rep.PowerNumber)
		// day 15 + month 5 digits -> 1+5+5 = 11, master kept
		assert.Equal(t, 11, rep.PowerNumber.Value)
	})

	t.Run("cabalistic omits power number and long texts", func(t *testing.T) {
		rep, err := svc.FullReport("José da Silva", date(1990, 5, 15), domain.MethodCabalistic, ref)
		require.NoError(t, err)

		assert.Equal(t, domain.MethodCabalistic, rep.Method)
		assert.Nil(t, rep.PowerNumber)
		assert.Empty(t, rep.Expression.Long)
		// life path keeps its long text regardless of method
		assert.NotEmpty(t, rep.LifePath.Long)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.FullReport("   ", date(1990, 5, 15), domain.MethodPythagorean, ref)
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})
}
