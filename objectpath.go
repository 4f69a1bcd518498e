package ari

// ObjectPath names a managed object by its namespace/type/object triple.
// AriType is a derived, cached enumeration form of TypeID, populated when
// the type identifier names one of the built-in ARI types; encoders may
// prefer it over the raw segment (see the ShowAriType field of
// text.Options).
type ObjectPath struct {
	NsID   IdSegment
	TypeID IdSegment
	ObjID  IdSegment

	AriType    AriType
	HasAriType bool
}

// NewObjectPath returns a path with no derived AriType set.
func NewObjectPath(ns, typ, obj IdSegment) ObjectPath {
	return ObjectPath{NsID: ns, TypeID: typ, ObjID: obj}
}

// WithAriType returns a copy of p with the derived AriType cache set.
func (p ObjectPath) WithAriType(t AriType) ObjectPath {
	p.AriType = t
	p.HasAriType = true
	return p
}

// Equal reports structural equality per spec: ns and obj compared directly,
// and type compared by the derived AriType when both sides carry one,
// falling back to the raw TypeID segment otherwise.
func (p ObjectPath) Equal(o ObjectPath) bool {
	if !p.NsID.Equal(o.NsID) || !p.ObjID.Equal(o.ObjID) {
		return false
	}
	if p.HasAriType && o.HasAriType {
		return p.AriType == o.AriType
	}
	return p.TypeID.Equal(o.TypeID)
}
