package types

// ParadoxBoost names the stat a Paradox ability (Protosynthesis/Quark
// Drive) is currently boosting, or NoBoost if inactive.
type ParadoxBoost int

const (
	NoParadoxBoost ParadoxBoost = iota
	BoostAttack
	BoostDefense
	BoostSpAttack
	BoostSpDefense
	BoostSpeed
)

// Stages holds the five stat-stage values (HP has none), each in [-6, +6],
// for one side of a damage calculation.
type Stages struct {
	Attack, Defense, SpAttack, SpDefense, Speed int
}

// Get returns the stage for stat s (HP has no stage and returns 0).
func (s Stages) Get(stat Stat) int {
	switch stat {
	case Attack:
		return s.Attack
	case Defense:
		return s.Defense
	case SpAttack:
		return s.SpAttack
	case SpDefense:
		return s.SpDefense
	case Speed:
		return s.Speed
	default:
		return 0
	}
}

// RuinFlags tracks which of the four Ruin abilities (spec.md Phase C step
// 4) are active on the field; they stack multiplicatively.
type RuinFlags struct {
	SwordOfRuin   bool
	BeadsOfRuin   bool
	TabletsOfRuin bool
	VesselOfRuin  bool
}

// ModifierContext enumerates every per-calculation toggle the modifier
// pipeline must honor (spec.md section 3). All boolean fields default
// false; all optional fields default their zero value.
type ModifierContext struct {
	IsDoubles       bool
	MultipleTargets bool

	Weather Weather
	Terrain Terrain

	IsCritical bool

	AttackerStages Stages
	DefenderStages Stages

	AttackerItem    string
	DefenderItem    string
	AttackerAbility string
	DefenderAbility string

	ReflectUp     bool
	LightScreenUp bool
	AuroraVeilUp  bool

	HelpingHand bool
	FriendGuard bool

	AttackerBurned   bool
	HasGuts          bool
	HasAdaptability  bool

	Ruin RuinFlags

	AttackerParadoxBoost ParadoxBoost
	DefenderParadoxBoost ParadoxBoost

	CommanderActive         bool
	DefenderCommanderActive bool

	// MoveHits overrides the multi-hit count when > 0.
	MoveHits int

	// Grounded flags for terrain interactions (spec.md Phase F step 3).
	AttackerGrounded bool
	DefenderGrounded bool

	// AttackerAtFullHP records whether the attacker is at full HP. Nothing
	// reads it: the Gale Wings check in priority uses priority.Actor.AtFullHP.
	AttackerAtFullHP bool
}
