package ari

import "math"

// Equal reports structural equality between a and b, per spec.md §4.2:
// Reference vs Literal disagree -> unequal; References compare path and
// params; Literals compare the typed tag (when either carries one), the
// primitive variant, and the payload — with NaN comparing equal only to
// NaN, and AM comparing independent of key order.
func Equal(a, b Ari) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindReference:
		ra, _ := a.Reference()
		rb, _ := b.Reference()
		return ra.Path.Equal(rb.Path) && paramsEqual(ra.Params, rb.Params)
	case KindLiteral:
		la, _ := a.Literal()
		lb, _ := b.Literal()
		return literalEqual(*la, *lb)
	default:
		return false
	}
}

func paramsEqual(a, b Params) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ParamsList:
		return listEqual(a.list, b.list)
	case ParamsMap:
		return mapEqual(a.m, b.m)
	default:
		return true
	}
}

func listEqual(a, b AriList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func literalEqual(a, b Literal) bool {
	if (a.Typed != nil) != (b.Typed != nil) {
		return false
	}
	if a.Typed != nil {
		if a.Typed.Kind != b.Typed.Kind {
			return false
		}
		if a.Typed.Kind == TypedTBL && a.Typed.TBL.NCols != b.Typed.TBL.NCols {
			return false
		}
	}
	if !primitiveEqual(a.Primitive, b.Primitive) {
		return false
	}
	if a.Typed == nil {
		return true
	}
	return typedContainersEqual(*a.Typed, *b.Typed)
}

func typedContainersEqual(a, b TypedValue) bool {
	switch a.Kind {
	case TypedAC:
		return listEqual(a.AC, b.AC)
	case TypedAM:
		return mapEqual(a.AM, b.AM)
	case TypedTBL:
		return listEqual(a.TBL.Cells, b.TBL.Cells)
	case TypedExecSet:
		return Equal(a.ExecSet.Nonce, b.ExecSet.Nonce) && listEqual(a.ExecSet.Targets, b.ExecSet.Targets)
	case TypedRptSet:
		if !Equal(a.RptSet.Nonce, b.RptSet.Nonce) || !Equal(a.RptSet.RefTime, b.RptSet.RefTime) {
			return false
		}
		if len(a.RptSet.Reports) != len(b.RptSet.Reports) {
			return false
		}
		for i := range a.RptSet.Reports {
			ra, rb := a.RptSet.Reports[i], b.RptSet.Reports[i]
			if !Equal(ra.RelTime, rb.RelTime) || !Equal(ra.Source, rb.Source) || !listEqual(ra.Items, rb.Items) {
				return false
			}
		}
		return true
	case TypedPrim:
		return a.PrimType == b.PrimType
	default:
		// TypedTP / TypedTD: payload already compared via Primitive.
		return true
	}
}

func primitiveEqual(a, b Primitive) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case PrimBool:
		return a.b == b.b
	case PrimUint64:
		return a.u == b.u
	case PrimInt64:
		return a.i == b.i
	case PrimFloat64:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return math.IsNaN(a.f) && math.IsNaN(b.f)
		}
		return a.f == b.f
	case PrimTextString:
		return a.text == b.text
	case PrimByteString:
		return string(a.bstr) == string(b.bstr)
	case PrimTimespec:
		return a.ts.Equal(b.ts)
	default:
		// Undefined / Null: no payload, kind equality is enough.
		return true
	}
}
