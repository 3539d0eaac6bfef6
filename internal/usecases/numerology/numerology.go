package numerology

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vbautistacode/etheria/internal/domain"
)

// Letter tables. The pythagorean map cycles A=1..I=9, J=1..R=9, S=1..Z=8;
// the kabbalistic map follows the traditional non-cyclic table.
var (
	cabalisticMap = map[rune]int{
		'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 8, 'G': 3, 'H': 5, 'I': 1,
		'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'O': 7, 'P': 8, 'Q': 1, 'R': 2,
		'S': 3, 'T': 4, 'U': 6, 'V': 6, 'W': 6, 'X': 6, 'Y': 1, 'Z': 7,
	}

	vowels = map[rune]bool{'A': true, 'E': true, 'I': true, 'O': true, 'U': true}

	masterNumbers = []int{11, 22, 33}
)

func pythagoreanValue(ch rune) int {
	if ch < 'A' || ch > 'Z' {
		return 0
	}
	return int(ch-'A')%9 + 1
}

func cabalisticValue(ch rune) int {
	return cabalisticMap[ch]
}

// NormalizeName uppercases, strips accents and drops everything but
// letters and spaces.
func NormalizeName(s string) string {
	decomposed := norm.NFKD.String(strings.ToUpper(strings.TrimSpace(s)))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range NormalizeName(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce collapses a value to a single digit, optionally stopping at master
// numbers >= masterMin (11 for pythagorean work, 22 for kabbalistic).
func Reduce(total int, keepMasters bool, masterMin int) int {
	isMaster := func(x int) bool {
		if !keepMasters {
			return false
		}
		for _, m := range masterNumbers {
			if x == m && m >= masterMin {
				return true
			}
		}
		return false
	}

	for {
		if isMaster(total) {
			return total
		}
		if total < 10 {
			return total
		}
		total = digitSum(total)
	}
}

// ReduceKabbalistic collapses the digit sum of a DDMMYYYY date to 1..22,
// preserving 11 and 22 along the way.
func ReduceKabbalistic(day, month, year int) int {
	total := digitSum(day) + digitSum(month) + digitSum(year)
	for total > 22 {
		total = digitSum(total)
	}
	return total
}

// Service computes numerology reports.
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

func nameTotal(name string, method domain.NumerologyMethod, filter func(rune) bool) int {
	total := 0
	for _, ch := range lettersOnly(name) {
		if filter != nil && !filter(ch) {
			continue
		}
		if method == domain.MethodCabalistic {
			total += cabalisticValue(ch)
		} else {
			total += pythagoreanValue(ch)
		}
	}
	return total
}

// ExpressionNumber reduces the value of every letter of the name.
func (s *Service) ExpressionNumber(name string, method domain.NumerologyMethod, masterMin int) domain.NumberValue {
	raw := nameTotal(name, method, nil)
	return domain.NumberValue{Value: Reduce(raw, true, masterMin), Raw: raw}
}

// SoulUrgeNumber reduces the vowels of the name.
func (s *Service) SoulUrgeNumber(name string, method domain.NumerologyMethod, masterMin int) domain.NumberValue {
	raw := nameTotal(name, method, func(r rune) bool { return vowels[r] })
	return domain.NumberValue{Value: Reduce(raw, true, masterMin), Raw: raw}
}

// PersonalityNumber reduces the consonants of the name.
func (s *Service) PersonalityNumber(name string, method domain.NumerologyMethod, masterMin int) domain.NumberValue {
	raw := nameTotal(name, method, func(r rune) bool { return !vowels[r] })
	return domain.NumberValue{Value: Reduce(raw, true, masterMin), Raw: raw}
}

// LifePath sums every digit of the birth date and reduces it keeping
// masters.
func (s *Service) LifePath(dob time.Time) domain.NumberValue {
	raw := digitSum(dob.Year()) + digitSum(int(dob.Month())) + digitSum(dob.Day())
	return domain.NumberValue{Value: Reduce(raw, true, 11), Raw: raw}
}

// PowerNumber reduces day+month digits, keeping masters.
func (s *Service) PowerNumber(dob time.Time) domain.NumberValue {
	raw := digitSum(dob.Day()) + digitSum(int(dob.Month()))
	return domain.NumberValue{Value: Reduce(raw, true, 11), Raw: raw}
}

// Pinnacles computes the four life pinnacles from the birth date.
func (s *Service) Pinnacles(dob time.Time) domain.Pinnacles {
	m, d, y := int(dob.Month()), dob.Day(), dob.Year()
	p1 := Reduce(m+d, true, 11)
	p2 := Reduce(d+digitSum(y), true, 11)
	p3 := Reduce(p1+p2, true, 11)
	p4 := Reduce(m+digitSum(y), true, 11)
	return domain.Pinnacles{First: p1, Second: p2, Third: p3, Fourth: p4}
}

// PersonalCycle derives the personal year, month and day for a reference
// date, chaining year -> month -> day.
func (s *Service) PersonalCycle(lifePath int, ref time.Time) domain.PersonalCycle {
	py := Reduce(lifePath+digitSum(ref.Year()), true, 11)
	pm := Reduce(py+int(ref.Month()), true, 11)
	pd := Reduce(pm+ref.Day(), true, 11)
	return domain.PersonalCycle{
		Year:        py,
		Month:       pm,
		Day:         pd,
		Description: interpretationsShort[py],
	}
}

// AnnualInfluence reduces the letter count of the full name; every
// LettersCount years a new life cycle begins, bound to a chakra quadrant.
func (s *Service) AnnualInfluence(name string) domain.AnnualInfluence {
	count := len([]rune(lettersOnly(name)))
	value := Reduce(count, true, 11)
	infl := domain.AnnualInfluence{LettersCount: count, Value: value}
	if tpl, ok := numTemplates[value]; ok {
		infl.Chakra = tpl.Chakra
		infl.Short = tpl.Short
		infl.Long = tpl.Long
	}
	quad, chakra, _ := QuadrantFor(value)
	infl.Quadrant = quad
	if infl.Chakra == "" {
		infl.Chakra = chakra
	}
	return infl
}

// Quantics computes the three quantic numbers from pairwise sums of the
// birth date components.
func (s *Service) Quantics(dob time.Time) domain.Quantics {
	d, m, y := dob.Day(), int(dob.Month()), dob.Year()
	return domain.Quantics{
		DayMonth:  Reduce(d+m, true, 11),
		DayYear:   Reduce(d+y, true, 11),
		MonthYear: Reduce(m+y, true, 11),
	}
}

func reading(v domain.NumberValue, includeLong bool) domain.NumberReading {
	r := domain.NumberReading{
		Value:  v.Value,
		Raw:    v.Raw,
		Short:  interpretationsShort[v.Value],
		Medium: interpretationsMedium[v.Value],
	}
	if includeLong {
		r.Long = interpretationsLong[v.Value]
		if r.Long == "" {
			if tpl, ok := numTemplates[v.Value]; ok {
				r.Long = tpl.Long
			}
		}
	}
	return r
}

// FullReport builds the complete numerology map for a name and birth date.
// The cabalistic method keeps only master 22 for name numbers and omits
// the power number.
func (s *Service) FullReport(name string, dob time.Time, method domain.NumerologyMethod, ref time.Time) (*domain.NumerologyReport, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	if dob.IsZero() {
		return nil, domain.ErrInvalidBirthDate
	}
	if method == "" {
		method = domain.MethodPythagorean
	}

	masterMin := 11
	includeLong := true
	if method == domain.MethodCabalistic {
		masterMin = 22
		includeLong = false
	}

	lifePath := s.LifePath(dob)
	expression := s.ExpressionNumber(name, method, masterMin)
	maturityRaw := digitSum(lifePath.Value) + digitSum(expression.Value)
	maturity := domain.NumberValue{
		Value: Reduce(maturityRaw, true, masterMin),
		Raw:   maturityRaw,
	}

	report := &domain.NumerologyReport{
		Method:          method,
		FullName:        name,
		BirthDate:       dob.Format("2006-01-02"),
		ReferenceDate:   ref.Format("2006-01-02"),
		LifePath:        reading(lifePath, true),
		Expression:      reading(expression, includeLong),
		SoulUrge:        reading(s.SoulUrgeNumber(name, method, masterMin), includeLong),
		Personality:     reading(s.PersonalityNumber(name, method, masterMin), includeLong),
		Maturity:        reading(maturity, includeLong),
		Pinnacles:       s.Pinnacles(dob),
		Personal:        s.PersonalCycle(lifePath.Value, ref),
		AnnualInfluence: s.AnnualInfluence(name),
		Quantics:        s.Quantics(dob),
	}

	if method == domain.MethodPythagorean {
		pn := s.PowerNumber(dob)
		report.PowerNumber = &pn
	}

	s.log.Debug("numerology report built",
		"name", name, "method", string(method), "life_path", lifePath.Value)

	return report, nil
}

// Meaning returns the short interpretation for a reduced number, useful for
// enriching aggregate readings.
func Meaning(n int) string {
	if txt, ok := interpretationsShort[n]; ok {
		return txt
	}
	return fmt.Sprintf("Número %d", n)
}
