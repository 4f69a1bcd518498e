package ari

// Clone returns a deep copy of a. The clone shares no storage with a;
// mutating one never affects the other. Cloning never mutates a.
func Clone(a Ari) Ari {
	switch a.kind {
	case KindReference:
		ref, _ := a.Reference()
		cp := ref.Clone()
		return Ari{kind: KindReference, ref: &cp}
	case KindLiteral:
		lit, _ := a.Literal()
		cp := lit.Clone()
		return Ari{kind: KindLiteral, lit: &cp}
	default:
		return Ari{}
	}
}
