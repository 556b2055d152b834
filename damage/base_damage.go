package damage

// levelFactor returns floor(2*level/5) + 2; at level 50 this is 22
// (spec.md 4.3 Phase E).
func levelFactor(level int) int {
	return 2*level/5 + 2
}

// baseDamage implements Phase E's base-damage formula:
// floor(floor(floor(L*Power*Atk/Def)/50) + 2).
func baseDamage(level, power, atk, def int) int {
	inner := levelFactor(level) * power * atk / def
	return inner/50 + 2
}
