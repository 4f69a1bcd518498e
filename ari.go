package ari

// Kind discriminates the two Ari variants.
type Kind int

// The two Ari variants.
const (
	KindReference Kind = iota
	KindLiteral
)

// ParamsKind discriminates the Params alternatives.
type ParamsKind int

// The Params alternatives.
const (
	ParamsNone ParamsKind = iota
	ParamsList
	ParamsMap
)

// Params is a Reference's parameter set: none, an ordered list, or a map.
type Params struct {
	kind ParamsKind
	list AriList
	m    *AriMap
}

// NoParams returns the empty parameter set.
func NoParams() Params { return Params{kind: ParamsNone} }

// ListParams returns an ordered-list parameter set.
func ListParams(l AriList) Params { return Params{kind: ParamsList, list: l} }

// MapParams returns a map parameter set.
func MapParams(m *AriMap) Params { return Params{kind: ParamsMap, m: m} }

// Kind reports which alternative p holds.
func (p Params) Kind() ParamsKind { return p.kind }

// List returns the list payload and true, or nil, false.
func (p Params) List() (AriList, bool) { return p.list, p.kind == ParamsList }

// Map returns the map payload and true, or nil, false.
func (p Params) Map() (*AriMap, bool) { return p.m, p.kind == ParamsMap }

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	switch p.kind {
	case ParamsList:
		return ListParams(p.list.Clone())
	case ParamsMap:
		return MapParams(p.m.Clone())
	default:
		return NoParams()
	}
}

// Reference is the "//ns/type/obj" + params variant of Ari: a reference to
// a named, optionally parameterized management object.
type Reference struct {
	Path   ObjectPath
	Params Params
}

// Clone returns a deep copy of r.
func (r Reference) Clone() Reference {
	return Reference{Path: r.Path, Params: r.Params.Clone()}
}

// Literal is the typed-value variant of Ari: a Primitive payload, with an
// optional TypedValue when an explicit ARI type tag applies.
type Literal struct {
	Primitive Primitive
	Typed     *TypedValue
}

// Clone returns a deep copy of l.
func (l Literal) Clone() Literal {
	out := Literal{Primitive: l.Primitive}
	if l.Typed != nil {
		tv := l.Typed.Clone()
		out.Typed = &tv
	}
	return out
}

// Ari is the root sum type: exactly one of Reference or Literal applies,
// selected by Kind. The zero value is not a valid Ari; use NewReference or
// NewLiteral (or one of the Literal-payload helpers) to construct one.
type Ari struct {
	kind Kind
	ref  *Reference
	lit  *Literal
}

// NewReference returns a Reference-kind Ari.
func NewReference(path ObjectPath, params Params) Ari {
	return Ari{kind: KindReference, ref: &Reference{Path: path, Params: params}}
}

// NewLiteral returns a Literal-kind Ari. typed may be nil for an untagged
// primitive literal.
func NewLiteral(prim Primitive, typed *TypedValue) Ari {
	return Ari{kind: KindLiteral, lit: &Literal{Primitive: prim, Typed: typed}}
}

// UndefinedAri returns the literal undefined value, "ari:undefined".
func UndefinedAri() Ari { return NewLiteral(Undefined(), nil) }

// Kind reports which variant a holds.
func (a Ari) Kind() Kind { return a.kind }

// IsReference reports whether a is a Reference.
func (a Ari) IsReference() bool { return a.kind == KindReference }

// IsLiteral reports whether a is a Literal.
func (a Ari) IsLiteral() bool { return a.kind == KindLiteral }

// Reference returns the reference payload and true, or nil, false.
func (a Ari) Reference() (*Reference, bool) {
	if a.kind != KindReference {
		return nil, false
	}
	return a.ref, true
}

// Literal returns the literal payload and true, or nil, false.
func (a Ari) Literal() (*Literal, bool) {
	if a.kind != KindLiteral {
		return nil, false
	}
	return a.lit, true
}

// NewAC returns an AC (list) literal.
func NewAC(items AriList) Ari {
	return NewLiteral(Undefined(), &TypedValue{Kind: TypedAC, AC: items})
}

// NewAM returns an AM (map) literal.
func NewAM(m *AriMap) Ari {
	return NewLiteral(Undefined(), &TypedValue{Kind: TypedAM, AM: m})
}

// NewTBL returns a TBL literal.
func NewTBL(t AriTable) Ari {
	return NewLiteral(Undefined(), &TypedValue{Kind: TypedTBL, TBL: t})
}

// NewExecSet returns an EXECSET literal.
func NewExecSet(e ExecSet) Ari {
	return NewLiteral(Undefined(), &TypedValue{Kind: TypedExecSet, ExecSet: e})
}

// NewRptSet returns an RPTSET literal.
func NewRptSet(s RptSet) Ari {
	return NewLiteral(Undefined(), &TypedValue{Kind: TypedRptSet, RptSet: s})
}

// NewTaggedPrimitive returns a Literal carrying prim with an explicit
// AriType tag t, the way the text codec round-trips scenarios such as
// "ari:/INT/1" or "ari:/TEXTSTR/hello" where the tag is present in the
// text form but not otherwise recoverable from the primitive's own kind.
func NewTaggedPrimitive(prim Primitive, t AriType) Ari {
	return NewLiteral(prim, &TypedValue{Kind: TypedPrim, PrimType: t})
}

// NewTP returns a time-point literal.
func NewTP(t Timespec) Ari {
	return NewLiteral(TimespecPrim(t), &TypedValue{Kind: TypedTP})
}

// NewTD returns a time-difference literal.
func NewTD(t Timespec) Ari {
	return NewLiteral(TimespecPrim(t), &TypedValue{Kind: TypedTD})
}
