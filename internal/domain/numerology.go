package domain

// NumerologyMethod selects the letter-value table used for name numbers.
type NumerologyMethod string

const (
	MethodPythagorean NumerologyMethod = "pythagorean"
	MethodCabalistic  NumerologyMethod = "cabalistic"
)

// NumberValue is a reduced number together with the raw sum it came from.
type NumberValue struct {
	Value int `json:"value"`
	Raw   int `json:"raw"`
}

// NumberReading is a reduced number enriched with its interpretation texts.
type NumberReading struct {
	Value  int    `json:"value"`
	Raw    int    `json:"raw"`
	Short  string `json:"short,omitempty"`
	Medium string `json:"medium,omitempty"`
	Long   string `json:"long,omitempty"`
}

// Pinnacles are the four life pinnacles derived from the birth date.
type Pinnacles struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
	Fourth int `json:"fourth"`
}

// PersonalCycle holds the personal year/month/day for a reference date.
type PersonalCycle struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Description string `json:"description,omitempty"`
}

// AnnualInfluence is the name-length influence cycle: every LettersCount
// years a new life cycle begins.
type AnnualInfluence struct {
	LettersCount int    `json:"letters_count"`
	Value        int    `json:"value"`
	Chakra       string `json:"chakra,omitempty"`
	Quadrant     string `json:"quadrant,omitempty"`
	Short        string `json:"short,omitempty"`
	Long         string `json:"long,omitempty"`
}

// Quantics are the three quantic numbers from pairwise date component sums.
type Quantics struct {
	DayMonth  int `json:"day_month"`
	DayYear   int `json:"day_year"`
	MonthYear int `json:"month_year"`
}

// NumerologyReport is the full numerology map for a person.
type NumerologyReport struct {
	Method        NumerologyMethod `json:"method"`
	FullName      string           `json:"full_name"`
	BirthDate     string           `json:"dob"`
	ReferenceDate string           `json:"reference_date"`

	LifePath    NumberReading `json:"life_path"`
	Expression  NumberReading `json:"expression"`
	SoulUrge    NumberReading `json:"soul_urge"`
	Personality NumberReading `json:"personality"`
	Maturity    NumberReading `json:"maturity"`
	PowerNumber *NumberValue  `json:"power_number,omitempty"`

	Pinnacles       Pinnacles       `json:"pinnacles"`
	Personal        PersonalCycle   `json:"personal"`
	AnnualInfluence AnnualInfluence `json:"annual_influence_by_name"`
	Quantics        Quantics        `json:"quantics"`
}

// PersonalYearReading is the detailed personal-year analysis for a date.
type PersonalYearReading struct {
	Date          string `json:"date"`
	RawSum        int    `json:"raw_sum"`
	ReducedNumber int    `json:"reduced_number"`
	BaseMeaning   string `json:"base_meaning"`
	Short         string `json:"short"`
	Long          string `json:"long"`
}
