package ari

// VisitContext carries the ambient state threaded through a Visit walk: a
// link to the parent context, caller-supplied user data, and whether the
// walk is currently descending into a map key (as opposed to its value).
type VisitContext struct {
	Parent   *VisitContext
	UserData any
	IsMapKey bool
}

// child returns a new context one level down from c, inheriting UserData.
func (c *VisitContext) child(isMapKey bool) *VisitContext {
	return &VisitContext{Parent: c, UserData: c.UserData, IsMapKey: isMapKey}
}

// Visitor holds the optional pre-order callbacks of a Visit walk. A nil
// callback is simply skipped; any non-nil callback that returns a non-nil
// error aborts the walk, and Visit returns that error verbatim.
type Visitor struct {
	OnAri     func(node Ari, ctx *VisitContext) error
	OnRef     func(ref *Reference, ctx *VisitContext) error
	OnObjPath func(path ObjectPath, ctx *VisitContext) error
	OnLit     func(lit *Literal, ctx *VisitContext) error
}

// Visit walks a in pre-order: OnAri fires first at every node, then the
// variant-specific callback, then recursion into children in declared
// order (list in order, map in insertion order, table row-major, report
// set in insertion order). userData seeds the root VisitContext.
func Visit(a Ari, v *Visitor, userData any) error {
	return visit(a, v, &VisitContext{UserData: userData})
}

func visit(a Ari, v *Visitor, ctx *VisitContext) error {
	if v.OnAri != nil {
		if err := v.OnAri(a, ctx); err != nil {
			return err
		}
	}
	switch a.kind {
	case KindReference:
		ref, _ := a.Reference()
		return visitRef(ref, v, ctx)
	case KindLiteral:
		lit, _ := a.Literal()
		return visitLit(lit, v, ctx)
	}
	return nil
}

func visitRef(ref *Reference, v *Visitor, ctx *VisitContext) error {
	if v.OnRef != nil {
		if err := v.OnRef(ref, ctx); err != nil {
			return err
		}
	}
	if v.OnObjPath != nil {
		if err := v.OnObjPath(ref.Path, ctx); err != nil {
			return err
		}
	}
	switch ref.Params.kind {
	case ParamsList:
		return visitList(ref.Params.list, v, ctx)
	case ParamsMap:
		return visitMap(ref.Params.m, v, ctx)
	}
	return nil
}

func visitLit(lit *Literal, v *Visitor, ctx *VisitContext) error {
	if v.OnLit != nil {
		if err := v.OnLit(lit, ctx); err != nil {
			return err
		}
	}
	if lit.Typed == nil {
		return nil
	}
	switch lit.Typed.Kind {
	case TypedAC:
		return visitList(lit.Typed.AC, v, ctx)
	case TypedAM:
		return visitMap(lit.Typed.AM, v, ctx)
	case TypedTBL:
		return visitList(lit.Typed.TBL.Cells, v, ctx)
	case TypedExecSet:
		sub := ctx.child(false)
		if err := visit(lit.Typed.ExecSet.Nonce, v, sub); err != nil {
			return err
		}
		return visitList(lit.Typed.ExecSet.Targets, v, ctx)
	case TypedRptSet:
		sub := ctx.child(false)
		if err := visit(lit.Typed.RptSet.Nonce, v, sub); err != nil {
			return err
		}
		if err := visit(lit.Typed.RptSet.RefTime, v, sub); err != nil {
			return err
		}
		for _, r := range lit.Typed.RptSet.Reports {
			if err := visit(r.RelTime, v, sub); err != nil {
				return err
			}
			if err := visit(r.Source, v, sub); err != nil {
				return err
			}
			if err := visitList(r.Items, v, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func visitList(l AriList, v *Visitor, ctx *VisitContext) error {
	sub := ctx.child(false)
	for _, item := range l {
		if err := visit(item, v, sub); err != nil {
			return err
		}
	}
	return nil
}

func visitMap(m *AriMap, v *Visitor, ctx *VisitContext) error {
	if m == nil {
		return nil
	}
	keyCtx := ctx.child(true)
	valCtx := ctx.child(false)
	for k, val := range m.All() {
		if err := visit(k, v, keyCtx); err != nil {
			return err
		}
		if err := visit(val, v, valCtx); err != nil {
			return err
		}
	}
	return nil
}
