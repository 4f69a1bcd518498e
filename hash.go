package ari

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hashState wraps an xxhash digest as the rolling accumulator that a
// single traversal feeds, per spec.md §4.3. xxhash is the pack's dominant
// non-cryptographic hash library (see DESIGN.md); it needs no seeding or
// finalization step beyond Sum64.
type hashState struct {
	d *xxhash.Digest
}

func newHashState() *hashState {
	return &hashState{d: xxhash.New()}
}

func (h *hashState) writeUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.d.Write(buf[:])
}

func (h *hashState) writeTag(tag int) { h.writeUint64(uint64(tag)) }

func (h *hashState) writeBool(b bool) {
	if b {
		h.writeTag(1)
	} else {
		h.writeTag(0)
	}
}

func (h *hashState) writeString(s string) {
	h.writeUint64(uint64(len(s)))
	h.d.Write([]byte(s))
}
func (h *hashState) writeBytes(b []byte) {
	h.writeUint64(uint64(len(b)))
	h.d.Write(b)
}

func (h *hashState) sum() uint64 { return h.d.Sum64() }

// Hash computes a structural hash of a such that Equal(a, b) implies
// Hash(a) == Hash(b).
func Hash(a Ari) uint64 {
	h := newHashState()
	h.writeAri(a)
	return h.sum()
}

func (h *hashState) writeAri(a Ari) {
	h.writeTag(int(a.kind))
	switch a.kind {
	case KindReference:
		ref, _ := a.Reference()
		h.writeObjectPath(ref.Path)
		h.writeParams(ref.Params)
	case KindLiteral:
		lit, _ := a.Literal()
		h.writeLiteral(*lit)
	}
}

func (h *hashState) writeIdSeg(s IdSegment) {
	h.writeTag(int(s.form))
	switch s.form {
	case idText:
		h.writeString(s.text)
	case idInt:
		h.writeUint64(uint64(s.num))
	}
}

func (h *hashState) writeObjectPath(p ObjectPath) {
	h.writeIdSeg(p.NsID)
	// prefer the derived AriType, matching the reference implementation's
	// ari_hash_visit_objpath preference for the cached enumeration.
	if p.HasAriType {
		h.writeTag(1)
		h.writeTag(int(p.AriType))
	} else {
		h.writeTag(0)
		h.writeIdSeg(p.TypeID)
	}
	h.writeIdSeg(p.ObjID)
}

func (h *hashState) writeParams(p Params) {
	h.writeTag(int(p.kind))
	switch p.kind {
	case ParamsList:
		h.writeList(p.list)
	case ParamsMap:
		mapHash(p.m, h)
	}
}

func (h *hashState) writeList(l AriList) {
	h.writeUint64(uint64(len(l)))
	for _, v := range l {
		h.writeAri(v)
	}
}

func (h *hashState) writeLiteral(l Literal) {
	h.writeBool(l.Typed != nil)
	if l.Typed != nil {
		h.writeTag(int(l.Typed.Kind))
		if l.Typed.Kind == TypedTBL {
			h.writeUint64(uint64(l.Typed.TBL.NCols))
		}
	}
	h.writePrimitive(l.Primitive)
	if l.Typed != nil {
		h.writeTypedContainers(*l.Typed)
	}
}

func (h *hashState) writeTypedContainers(v TypedValue) {
	switch v.Kind {
	case TypedAC:
		h.writeList(v.AC)
	case TypedAM:
		mapHash(v.AM, h)
	case TypedTBL:
		h.writeList(v.TBL.Cells)
	case TypedExecSet:
		h.writeAri(v.ExecSet.Nonce)
		h.writeList(v.ExecSet.Targets)
	case TypedRptSet:
		h.writeAri(v.RptSet.Nonce)
		h.writeAri(v.RptSet.RefTime)
		h.writeUint64(uint64(len(v.RptSet.Reports)))
		for _, r := range v.RptSet.Reports {
			h.writeAri(r.RelTime)
			h.writeAri(r.Source)
			h.writeList(r.Items)
		}
	case TypedPrim:
		h.writeTag(int(v.PrimType))
	}
}

func (h *hashState) writePrimitive(p Primitive) {
	h.writeTag(int(p.kind))
	switch p.kind {
	case PrimBool:
		h.writeBool(p.b)
	case PrimUint64:
		h.writeUint64(p.u)
	case PrimInt64:
		h.writeUint64(uint64(p.i))
	case PrimFloat64:
		// Canonicalize NaN to a single bit pattern so that the equal
		// law (all NaNs compare equal) implies equal hashes too.
		v := p.f
		if math.IsNaN(v) {
			h.writeUint64(math.Float64bits(math.NaN()))
		} else {
			h.writeUint64(math.Float64bits(v))
		}
	case PrimTextString:
		h.writeString(p.text)
	case PrimByteString:
		h.writeBytes(p.bstr)
	case PrimTimespec:
		h.writeUint64(uint64(p.ts.Seconds))
		h.writeUint64(uint64(p.ts.Nanoseconds))
	}
}
