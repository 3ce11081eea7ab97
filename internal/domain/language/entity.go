package language

// Fluency represents how well a user speaks a language. The set is
// ordered: rank comparisons must go through Rank, not declaration order.
type Fluency string

const (
	FluencySayHello     Fluency = "say_hello"
	FluencyBeginner     Fluency = "beginner"
	FluencyIntermediate Fluency = "intermediate"
	FluencyAdvanced     Fluency = "advanced"
	FluencyFluent       Fluency = "fluent"
	FluencyNative       Fluency = "native"
)

var fluencyRanks = map[Fluency]int{
	FluencySayHello:     1,
	FluencyBeginner:     2,
	FluencyIntermediate: 3,
	FluencyAdvanced:     4,
	FluencyFluent:       5,
	FluencyNative:       6,
}

// Rank returns the position of the fluency in the proficiency order,
// higher meaning more proficient. Unknown values rank 0.
func (f Fluency) Rank() int {
	return fluencyRanks[f]
}

// Valid reports whether f is a known fluency level
func (f Fluency) Valid() bool {
	_, ok := fluencyRanks[f]
	return ok
}

// Language is a row of the reference vocabulary, seeded out of band
type Language struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// LanguageAbility associates a user with a language at a fluency level.
// At most one row exists per (user, language) pair; the store enforces
// this with a unique constraint.
type LanguageAbility struct {
	ID           int64   `db:"id" json:"id"`
	UserID       int64   `db:"user_id" json:"user_id"`
	LanguageCode string  `db:"language_code" json:"language_code"`
	Fluency      Fluency `db:"fluency" json:"fluency"`
}
