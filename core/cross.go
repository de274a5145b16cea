package core

// CrossOverScalar reports bars where the series moves from strictly below
// line to strictly above it.
func CrossOverScalar(a Price, line Scalar) Rule {
	return And(Sgt(a, line), Slt(a.Shift(1), line))
}

// CrossUnderScalar reports bars where the series moves from strictly above
// line to strictly below it.
func CrossUnderScalar(a Price, line Scalar) Rule {
	return And(Slt(a, line), Sgt(a.Shift(1), line))
}

// CrossScalar reports either crossing direction against a constant line.
func CrossScalar(a Price, line Scalar) Rule {
	return Or(CrossOverScalar(a, line), CrossUnderScalar(a, line))
}

// CrossOver reports bars where a moves from strictly below b to strictly
// above it.
func CrossOver(a, b Price) Rule {
	return And(Gt(a, b), Lt(a.Shift(1), b.Shift(1)))
}

// CrossUnder reports bars where a moves from strictly above b to strictly
// below it.
func CrossUnder(a, b Price) Rule {
	return And(Lt(a, b), Gt(a.Shift(1), b.Shift(1)))
}

// Cross reports either crossing direction between two series.
func Cross(a, b Price) Rule {
	return Or(CrossOver(a, b), CrossUnder(a, b))
}
