package shrink

// Match evaluates the template against a literal window.
//
// Background and Foreground slots must hold exactly; DontCare always holds.
// Disjunct slots are pooled: if any of them is unset, at least one of them
// must be set. A template without Disjunct slots needs no disjunction.
func (t *Template) Match(w Window) bool {
	needGroup := false
	groupHit := false
	for i, s := range t {
		switch s {
		case Background:
			if w[i] {
				return false
			}
		case Foreground:
			if !w[i] {
				return false
			}
		case Disjunct:
			if w[i] {
				groupHit = true
			} else {
				needGroup = true
			}
		}
	}
	return !needGroup || groupHit
}

// MatchConditional reports whether w equals a conditional mark template.
// It is the reference the packed table is built from.
func MatchConditional(w Window) bool {
	return matchAny(conditionalTemplates[:], w)
}

// MatchUnconditional reports whether w hits an unconditional mark template.
func MatchUnconditional(w Window) bool {
	return matchAny(unconditionalTemplates[:], w)
}

func matchAny(ts []Template, w Window) bool {
	for i := range ts {
		if ts[i].Match(w) {
			return true
		}
	}
	return false
}

// lut is a 256-bit set indexed by Code: bit code&63 of word code>>6.
type lut [4]uint64

func (l *lut) has(c Code) bool {
	return l[c>>6]&(1<<(c&63)) != 0
}

func (l *lut) add(c Code) {
	l[c>>6] |= 1 << (c & 63)
}

// buildLUT evaluates match over every neighbour code with the centre set.
// Every template in both catalogs requires a set centre, so codes for an
// unset centre never hit.
func buildLUT(match func(Window) bool) lut {
	var l lut
	for c := 0; c < 256; c++ {
		if match(Code(c).Window()) {
			l.add(Code(c))
		}
	}
	return l
}

var (
	conditionalLUT   lut
	unconditionalLUT lut
)

func init() {
	conditionalLUT = buildLUT(MatchConditional)
	unconditionalLUT = buildLUT(MatchUnconditional)
}

// IsConditional is the packed form of MatchConditional for a set centre.
func IsConditional(c Code) bool {
	return conditionalLUT.has(c)
}

// IsUnconditional is the packed form of MatchUnconditional for a set centre.
func IsUnconditional(c Code) bool {
	return unconditionalLUT.has(c)
}

// ConditionalTable returns a copy of the packed conditional table.
func ConditionalTable() [4]uint64 {
	return conditionalLUT
}

// UnconditionalTable returns a copy of the packed unconditional table.
func UnconditionalTable() [4]uint64 {
	return unconditionalLUT
}

// TemplateCounts returns the sizes of the conditional and unconditional catalogs.
func TemplateCounts() (conditional, unconditional int) {
	return len(conditionalTemplates), len(unconditionalTemplates)
}
