package ari

// Translator holds the optional rewrite hooks of a Translate walk. A nil
// hook means "copy this level unchanged"; any hook that returns an error
// aborts the walk and Translate returns that error verbatim. Unlike
// Visitor's read-only callbacks, each hook here returns the replacement
// value for its level, and Translate recurses into that level's children
// using the original input structure.
type Translator struct {
	MapAri     func(in Ari, userData any) (Ari, error)
	MapObjPath func(in ObjectPath, userData any) (ObjectPath, error)
	MapLit     func(in Literal, userData any) (Literal, error)
}

// Translate rewrites in according to t, recursing into every container a
// value may hold (list and map params, AC, AM, TBL cells). Execution sets
// and report sets carry sub-values (a nonce, a reference time, per-report
// items) that are themselves independent Ari values the spec does not
// require Translate to open — they pass through via the Clone performed
// at the literal level, matching the reference walker.
func Translate(in Ari, t *Translator, userData any) (Ari, error) {
	var out Ari
	if t.MapAri != nil {
		var err error
		out, err = t.MapAri(in, userData)
		if err != nil {
			return Ari{}, err
		}
	} else {
		out = Ari{kind: in.kind}
	}

	switch in.kind {
	case KindReference:
		ref, _ := in.Reference()

		path := ref.Path
		if t.MapObjPath != nil {
			p, err := t.MapObjPath(ref.Path, userData)
			if err != nil {
				return Ari{}, err
			}
			path = p
		}

		params, err := translateParams(ref.Params, t, userData)
		if err != nil {
			return Ari{}, err
		}

		out.kind = KindReference
		out.ref = &Reference{Path: path, Params: params}

	case KindLiteral:
		lit, _ := in.Literal()

		newLit := lit.Clone()
		if t.MapLit != nil {
			l, err := t.MapLit(*lit, userData)
			if err != nil {
				return Ari{}, err
			}
			newLit = l
		}

		if lit.Typed != nil {
			switch lit.Typed.Kind {
			case TypedAC:
				items, err := translateList(lit.Typed.AC, t, userData)
				if err != nil {
					return Ari{}, err
				}
				newLit.Typed = &TypedValue{Kind: TypedAC, AC: items}
			case TypedAM:
				m, err := translateMap(lit.Typed.AM, t, userData)
				if err != nil {
					return Ari{}, err
				}
				// The map branch writes its result back into the map arm
				// with the Map-kind discriminant retained.
				newLit.Typed = &TypedValue{Kind: TypedAM, AM: m}
			case TypedTBL:
				cells, err := translateList(lit.Typed.TBL.Cells, t, userData)
				if err != nil {
					return Ari{}, err
				}
				newLit.Typed = &TypedValue{Kind: TypedTBL, TBL: AriTable{NCols: lit.Typed.TBL.NCols, Cells: cells}}
			}
		}

		out.kind = KindLiteral
		out.lit = &newLit
	}

	return out, nil
}

func translateParams(p Params, t *Translator, userData any) (Params, error) {
	switch p.kind {
	case ParamsList:
		items, err := translateList(p.list, t, userData)
		if err != nil {
			return Params{}, err
		}
		return ListParams(items), nil
	case ParamsMap:
		m, err := translateMap(p.m, t, userData)
		if err != nil {
			return Params{}, err
		}
		return MapParams(m), nil
	default:
		return NoParams(), nil
	}
}

func translateList(in AriList, t *Translator, userData any) (AriList, error) {
	out := make(AriList, 0, len(in))
	for _, item := range in {
		v, err := Translate(item, t, userData)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func translateMap(in *AriMap, t *Translator, userData any) (*AriMap, error) {
	if in == nil {
		return nil, nil
	}
	out := NewAriMap()
	for k, v := range in.All() {
		newKey, err := Translate(k, t, userData)
		if err != nil {
			return nil, err
		}
		newVal, err := Translate(v, t, userData)
		if err != nil {
			return nil, err
		}
		out.Set(newKey, newVal)
	}
	return out, nil
}
