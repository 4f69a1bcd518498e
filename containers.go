package ari

import "iter"

// AriList is an ordered sequence of Ari values, used for AC literals,
// Params lists, table cells, execution-set targets and report items.
type AriList []Ari

// All iterates the list in order, the way gaissmai/bart's table iterators
// expose a Go 1.23 range-over-func sequence instead of a visitor callback.
func (l AriList) All() iter.Seq[Ari] {
	return func(yield func(Ari) bool) {
		for _, v := range l {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of l.
func (l AriList) Clone() AriList {
	if l == nil {
		return nil
	}
	out := make(AriList, len(l))
	for i, v := range l {
		out[i] = Clone(v)
	}
	return out
}

// AriTable is the TBL container literal: a fixed column count and a
// row-major sequence of cells whose length is a multiple of NCols.
// NCols == 0 implies an empty Cells.
type AriTable struct {
	NCols int
	Cells AriList
}

// Rows reports the number of complete rows held by t. If the table violates
// its own invariant (Cells length not a multiple of NCols), the cells past
// the last complete row are not counted.
func (t AriTable) Rows() int {
	if t.NCols == 0 {
		return 0
	}
	return len(t.Cells) / t.NCols
}

// Clone returns a deep copy of t.
func (t AriTable) Clone() AriTable {
	return AriTable{NCols: t.NCols, Cells: t.Cells.Clone()}
}

// ExecSet is the EXECSET container literal: a nonce and an ordered list of
// target references to execute.
type ExecSet struct {
	Nonce   Ari
	Targets AriList
}

// Clone returns a deep copy of e.
func (e ExecSet) Clone() ExecSet {
	return ExecSet{Nonce: Clone(e.Nonce), Targets: e.Targets.Clone()}
}

// Report is one report within an RptSet: a relative time, the source
// object that produced it, and the ordered list of reported items.
type Report struct {
	RelTime Ari
	Source  Ari
	Items   AriList
}

// Clone returns a deep copy of r.
func (r Report) Clone() Report {
	return Report{RelTime: Clone(r.RelTime), Source: Clone(r.Source), Items: r.Items.Clone()}
}

// RptSet is the RPTSET container literal: a nonce, a reference time shared
// by all reports, and the ordered list of reports.
type RptSet struct {
	Nonce   Ari
	RefTime Ari
	Reports []Report
}

// Clone returns a deep copy of s.
func (s RptSet) Clone() RptSet {
	out := RptSet{Nonce: Clone(s.Nonce), RefTime: Clone(s.RefTime)}
	if s.Reports != nil {
		out.Reports = make([]Report, len(s.Reports))
		for i, r := range s.Reports {
			out.Reports[i] = r.Clone()
		}
	}
	return out
}

// TypedKind discriminates the payload a TypedValue carries.
type TypedKind int

// The typed-literal payload kinds. TypedAC through TypedTD correspond
// one-to-one with the container/time subset of AriType (AC, AM, TBL,
// EXECSET, RPTSET, TP, TD). TypedPrim instead tags a plain primitive
// (BOOL, INT, UINT, VAST, UVAST, REAL32, REAL64, TEXTSTR, BYTESTR, NULL,
// …) with an explicit AriType the payload would not otherwise disclose —
// the payload itself still lives in the enclosing Literal's Primitive.
const (
	TypedAC TypedKind = iota
	TypedAM
	TypedTBL
	TypedExecSet
	TypedRptSet
	TypedTP
	TypedTD
	TypedPrim
)

// TypedValue is present on a Literal when the literal carries an explicit
// ARI type tag, enabling container, time, and explicitly-tagged primitive
// literals. For TypedTP, TypedTD, and TypedPrim the payload is carried by
// the enclosing Literal's Primitive; TypedValue only tags its type.
type TypedValue struct {
	Kind TypedKind

	AC      AriList
	AM      *AriMap
	TBL     AriTable
	ExecSet ExecSet
	RptSet  RptSet

	// PrimType is the explicit tag of a TypedPrim literal.
	PrimType AriType
}

// AriType returns the AriType tag that corresponds to v.Kind.
func (v TypedValue) AriType() AriType {
	switch v.Kind {
	case TypedAC:
		return TypeAC
	case TypedAM:
		return TypeAM
	case TypedTBL:
		return TypeTBL
	case TypedExecSet:
		return TypeExecset
	case TypedRptSet:
		return TypeRptset
	case TypedTD:
		return TypeTD
	case TypedPrim:
		return v.PrimType
	default:
		return TypeTP
	}
}

// Clone returns a deep copy of v.
func (v TypedValue) Clone() TypedValue {
	out := TypedValue{Kind: v.Kind}
	switch v.Kind {
	case TypedAC:
		out.AC = v.AC.Clone()
	case TypedAM:
		if v.AM != nil {
			out.AM = v.AM.Clone()
		}
	case TypedTBL:
		out.TBL = v.TBL.Clone()
	case TypedExecSet:
		out.ExecSet = v.ExecSet.Clone()
	case TypedRptSet:
		out.RptSet = v.RptSet.Clone()
	case TypedPrim:
		out.PrimType = v.PrimType
	}
	return out
}
