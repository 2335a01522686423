package shrink

// Slot is one cell of a 3×3 template.
type Slot uint8

const (
	// Background requires the pixel to be unset.
	Background Slot = iota
	// Foreground requires the pixel to be set.
	Foreground
	// DontCare matches either state.
	DontCare
	// Disjunct belongs to an OR-group: the template needs at least one of
	// its Disjunct slots set whenever any of them is unset.
	Disjunct
)

// Template is a 3×3 hit-or-miss pattern in row-major order.
type Template [9]Slot

// Table shorthands. The unconditional catalog labels its OR-group members
// A, B and C; they share one disjunction.
const (
	bg = Background
	fg = Foreground
	dd = DontCare
	ga = Disjunct
	gb = Disjunct
	gc = Disjunct
)

// conditionalTemplates are the shrink conditional mark patterns: a set pixel
// whose window equals one of these is a removal candidate. The thin-only
// TK4 group and the skeleton-only K11 group are not part of shrinking.
var conditionalTemplates = [...]Template{
	// S1, bond 1
	{bg, bg, fg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, bg, bg,
		bg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		fg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		bg, bg, fg},

	// S2, bond 2
	{bg, bg, bg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, bg,
		bg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		fg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		bg, fg, bg},

	// S3, bond 3
	{bg, bg, fg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, fg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, fg, bg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, bg, bg,
		fg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		fg, fg, bg,
		fg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		fg, fg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		bg, fg, fg},
	{bg, bg, bg,
		bg, fg, fg,
		bg, bg, fg},

	// STK4, bond 4
	{bg, bg, fg,
		bg, fg, fg,
		bg, bg, fg},
	{fg, fg, fg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, bg, bg,
		fg, fg, bg,
		fg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		fg, fg, fg},

	// ST5, bond 5, diagonal
	{fg, fg, bg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, bg,
		bg, fg, fg,
		bg, bg, fg},
	{bg, fg, fg,
		fg, fg, bg,
		bg, bg, bg},
	{bg, bg, fg,
		bg, fg, fg,
		bg, fg, bg},

	// ST5, bond 5, square
	{bg, fg, fg,
		bg, fg, fg,
		bg, bg, bg},
	{fg, fg, bg,
		fg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		fg, fg, bg,
		fg, fg, bg},
	{bg, bg, bg,
		bg, fg, fg,
		bg, fg, fg},

	// ST6, bond 6
	{fg, fg, bg,
		bg, fg, fg,
		bg, bg, fg},
	{bg, fg, fg,
		fg, fg, bg,
		fg, bg, bg},

	// STK6, bond 6
	{fg, fg, fg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, fg,
		bg, fg, fg,
		bg, bg, fg},
	{fg, fg, fg,
		fg, fg, bg,
		bg, bg, bg},
	{fg, fg, bg,
		fg, fg, bg,
		fg, bg, bg},
	{fg, bg, bg,
		fg, fg, bg,
		fg, fg, bg},
	{bg, bg, bg,
		fg, fg, bg,
		fg, fg, fg},
	{bg, bg, bg,
		bg, fg, fg,
		fg, fg, fg},
	{bg, bg, fg,
		bg, fg, fg,
		bg, fg, fg},

	// STK7, bond 7
	{fg, fg, fg,
		bg, fg, fg,
		bg, bg, fg},
	{fg, fg, fg,
		fg, fg, bg,
		fg, bg, bg},
	{fg, bg, bg,
		fg, fg, bg,
		fg, fg, fg},
	{bg, bg, fg,
		bg, fg, fg,
		fg, fg, fg},

	// STK8, bond 8
	{bg, fg, fg,
		bg, fg, fg,
		bg, fg, fg},
	{fg, fg, fg,
		fg, fg, fg,
		bg, bg, bg},
	{fg, fg, bg,
		fg, fg, bg,
		fg, fg, bg},
	{bg, bg, bg,
		fg, fg, fg,
		fg, fg, fg},

	// STK9, bond 9
	{fg, fg, fg,
		bg, fg, fg,
		bg, fg, fg},
	{bg, fg, fg,
		bg, fg, fg,
		fg, fg, fg},
	{fg, fg, fg,
		fg, fg, fg,
		fg, bg, bg},
	{fg, fg, fg,
		fg, fg, fg,
		bg, bg, fg},
	{fg, fg, fg,
		fg, fg, bg,
		fg, fg, bg},
	{fg, fg, bg,
		fg, fg, bg,
		fg, fg, fg},
	{fg, bg, bg,
		fg, fg, fg,
		fg, fg, fg},
	{bg, bg, fg,
		fg, fg, fg,
		fg, fg, fg},

	// STK10, bond 10
	{fg, fg, fg,
		bg, fg, fg,
		fg, fg, fg},
	{fg, fg, fg,
		fg, fg, fg,
		fg, bg, fg},
	{fg, fg, fg,
		fg, fg, bg,
		fg, fg, fg},
	{fg, bg, fg,
		fg, fg, fg,
		fg, fg, fg},
}

// unconditionalTemplates are the shrink/thin unconditional mark patterns,
// evaluated against the conditional-mark image. A candidate matching any of
// them is kept.
var unconditionalTemplates = [...]Template{
	// spur
	{bg, bg, fg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, bg, bg,
		bg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		bg, fg, bg},
	{bg, bg, bg,
		bg, fg, fg,
		bg, bg, bg},

	// L cluster
	{bg, bg, fg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, fg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, fg, bg,
		bg, fg, bg,
		bg, bg, bg},
	{fg, bg, bg,
		fg, fg, bg,
		bg, bg, bg},
	{bg, bg, bg,
		fg, fg, bg,
		fg, bg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		fg, fg, bg},
	{bg, bg, bg,
		bg, fg, bg,
		bg, fg, fg},
	{bg, bg, bg,
		bg, fg, fg,
		bg, bg, fg},

	// offset
	{bg, fg, fg,
		fg, fg, bg,
		bg, bg, bg},
	{fg, fg, bg,
		bg, fg, fg,
		bg, bg, bg},
	{bg, fg, bg,
		bg, fg, fg,
		bg, bg, fg},
	{bg, bg, fg,
		bg, fg, fg,
		bg, fg, bg},

	// spur corner
	{bg, ga, fg,
		bg, fg, gb,
		fg, bg, bg},
	{fg, gb, bg,
		ga, fg, bg,
		bg, bg, fg},
	{bg, bg, fg,
		ga, fg, bg,
		fg, gb, bg},
	{fg, bg, bg,
		bg, fg, gb,
		bg, ga, fg},

	// corner clutter
	{fg, fg, dd,
		fg, fg, dd,
		dd, dd, dd},

	// tee branch
	{dd, fg, bg,
		fg, fg, fg,
		dd, bg, bg},
	{bg, fg, dd,
		fg, fg, fg,
		bg, bg, dd},
	{bg, bg, dd,
		fg, fg, fg,
		bg, fg, dd},
	{dd, bg, bg,
		fg, fg, fg,
		dd, fg, bg},
	{dd, fg, dd,
		fg, fg, bg,
		bg, fg, bg},
	{bg, fg, bg,
		fg, fg, bg,
		dd, fg, dd},
	{bg, fg, bg,
		bg, fg, fg,
		dd, fg, dd},
	{dd, fg, dd,
		bg, fg, fg,
		bg, fg, bg},

	// vee branch
	{fg, dd, fg,
		dd, fg, dd,
		ga, gb, gc},
	{fg, dd, gc,
		dd, fg, gb,
		fg, dd, ga},
	{gc, gb, ga,
		dd, fg, dd,
		fg, dd, fg},
	{ga, dd, fg,
		gb, fg, dd,
		gc, dd, fg},

	// diagonal branch
	{dd, fg, bg,
		bg, fg, fg,
		fg, bg, dd},
	{bg, fg, dd,
		fg, fg, bg,
		dd, bg, fg},
	{dd, bg, fg,
		fg, fg, bg,
		bg, fg, dd},
	{fg, bg, dd,
		bg, fg, fg,
		dd, fg, bg},
}
