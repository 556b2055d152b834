package damage

// The modifier pipeline uses 4096-scale fixed-point integer multipliers
// with truncation, as is standard in Gen 5+ engines and as spec.md 4.3
// recommends to eliminate floating-point drift in roll parity.
const fixedScale = 4096

// fixedRatio converts an exact rational numerator/denominator into a
// 4096-scale fixed-point multiplier, truncating on non-exact ratios.
func fixedRatio(num, den int) int {
	return num * fixedScale / den
}

// fixedTenths converts a multiplier expressed in tenths (e.g. 15 for 1.5x,
// 13 for 1.3x) into 4096-scale fixed point.
func fixedTenths(tenths int) int {
	return fixedRatio(tenths, 10)
}

var (
	fx1_0  = fixedTenths(10)
	fx1_1  = fixedTenths(11)
	fx1_2  = fixedTenths(12)
	fx1_3  = fixedTenths(13)
	fx1_5  = fixedTenths(15)
	fx2_0  = fixedTenths(20)
	fx0_5  = fixedTenths(5)
	fx0_75 = fixedRatio(3, 4)
	fx2_3  = fixedRatio(2, 3)
	fx0_0  = 0
)

// apply multiplies value by a 4096-scale fixed-point multiplier and
// floors the result, matching the canonical rounding discipline used at
// every documented floor point in spec.md 4.3.
func apply(value, multFixed int) int {
	return value * multFixed / fixedScale
}

// clampMin1 enforces the "damage per hit is clamped to >= 1" invariant
// (spec.md section 3), applied after Phase G's multiplicative chain and
// before multi-hit multiplication.
func clampMin1(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
