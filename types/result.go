package types

// NumRolls is the fixed size of the Gen-9 random damage roll array
// (85..100 inclusive, in 1/100 steps).
const NumRolls = 16

// ModifierStep is one entry in a DamageResult's audit trail: the name of
// the modifier that fired and, for display, a short human-readable
// description of its effect.
type ModifierStep struct {
	Name        string
	Description string
}

// KOClass is the closed set of KO classifications (spec.md 4.5).
type KOClass int

const (
	NoKO KOClass = iota
	GuaranteedOHKO
	PossibleOHKO
	Guaranteed2HKO
	Possible2HKO
	Guaranteed3HKO
	Possible3HKO
	Guaranteed4HKO
	Possible4HKO
	FivePlusHKO
)

func (k KOClass) String() string {
	switch k {
	case GuaranteedOHKO:
		return "guaranteed OHKO"
	case PossibleOHKO:
		return "possible OHKO"
	case Guaranteed2HKO:
		return "guaranteed 2HKO"
	case Possible2HKO:
		return "possible 2HKO"
	case Guaranteed3HKO:
		return "guaranteed 3HKO"
	case Possible3HKO:
		return "possible 3HKO"
	case Guaranteed4HKO:
		return "guaranteed 4HKO"
	case Possible4HKO:
		return "possible 4HKO"
	case FivePlusHKO:
		return "5+HKO"
	default:
		return "no KO"
	}
}

// DamageResult is the engine's output for one damage calculation
// (spec.md section 3).
type DamageResult struct {
	IsStatus bool

	MinDamage int
	MaxDamage int
	Rolls     [NumRolls]int

	DefenderHP int

	KO KOClass

	Audit []ModifierStep
}

// Percent returns damage as a percentage of DefenderHP, truncated to one
// decimal place per spec.md section 4.4 (98.49% -> 98.4%).
func Percent(damage, defenderHP int) float64 {
	if defenderHP <= 0 {
		return 0
	}
	tenths := damage * 1000 / defenderHP
	return float64(tenths) / 10
}

// MinPercent returns the minimum-roll damage percentage.
func (d DamageResult) MinPercent() float64 { return Percent(d.MinDamage, d.DefenderHP) }

// MaxPercent returns the maximum-roll damage percentage.
func (d DamageResult) MaxPercent() float64 { return Percent(d.MaxDamage, d.DefenderHP) }
