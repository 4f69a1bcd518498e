package ari

// PrimKind discriminates the Primitive payload that a Literal carries.
type PrimKind int

// The primitive payload kinds.
const (
	PrimUndefined PrimKind = iota
	PrimNull
	PrimBool
	PrimUint64
	PrimInt64
	PrimFloat64
	PrimTextString
	PrimByteString
	PrimTimespec
)

// Timespec is a DTN-epoch-relative time value: seconds since the epoch
// (which may be negative, for times before it) plus a nanosecond remainder
// in [0, 1e9).
type Timespec struct {
	Seconds     int64
	Nanoseconds uint32
}

// Equal compares two Timespec values field-wise.
func (t Timespec) Equal(o Timespec) bool {
	return t.Seconds == o.Seconds && t.Nanoseconds == o.Nanoseconds
}

// Primitive is the untyped payload of a Literal: undefined, null, a
// boolean, a signed or unsigned integer, a float, a text or byte string, or
// a Timespec. Exactly one payload applies, selected by Kind.
type Primitive struct {
	kind PrimKind

	b    bool
	u    uint64
	i    int64
	f    float64
	text string
	bstr []byte
	ts   Timespec
}

// Kind reports which payload p carries.
func (p Primitive) Kind() PrimKind { return p.kind }

// Undefined returns the undefined primitive.
func Undefined() Primitive { return Primitive{kind: PrimUndefined} }

// NullPrimitive returns the null primitive.
func NullPrimitive() Primitive { return Primitive{kind: PrimNull} }

// BoolPrim returns a boolean primitive.
func BoolPrim(v bool) Primitive { return Primitive{kind: PrimBool, b: v} }

// UintPrim returns an unsigned-integer primitive.
func UintPrim(v uint64) Primitive { return Primitive{kind: PrimUint64, u: v} }

// IntPrim returns a signed-integer primitive.
func IntPrim(v int64) Primitive { return Primitive{kind: PrimInt64, i: v} }

// FloatPrim returns a floating-point primitive. NaN and ±Inf are valid.
func FloatPrim(v float64) Primitive { return Primitive{kind: PrimFloat64, f: v} }

// TextPrim returns a UTF-8 text-string primitive. v is the logical string;
// any trailing NUL is an encoding detail of storage, never part of v.
func TextPrim(v string) Primitive { return Primitive{kind: PrimTextString, text: v} }

// BytePrim returns an opaque byte-string primitive. The slice is copied.
func BytePrim(v []byte) Primitive {
	cp := append([]byte(nil), v...)
	return Primitive{kind: PrimByteString, bstr: cp}
}

// TimespecPrim returns a time-value primitive (used, tagged, as TP or TD).
func TimespecPrim(v Timespec) Primitive { return Primitive{kind: PrimTimespec, ts: v} }

// Bool returns the boolean payload and true, or false, false if p is not PrimBool.
func (p Primitive) Bool() (bool, bool) { return p.b, p.kind == PrimBool }

// Uint64 returns the unsigned-integer payload and true, or 0, false.
func (p Primitive) Uint64() (uint64, bool) { return p.u, p.kind == PrimUint64 }

// Int64 returns the signed-integer payload and true, or 0, false.
func (p Primitive) Int64() (int64, bool) { return p.i, p.kind == PrimInt64 }

// Float64 returns the float payload and true, or 0, false.
func (p Primitive) Float64() (float64, bool) { return p.f, p.kind == PrimFloat64 }

// Text returns the text-string payload and true, or "", false.
func (p Primitive) Text() (string, bool) { return p.text, p.kind == PrimTextString }

// Bytes returns the byte-string payload and true, or nil, false. The
// returned slice is shared with p; callers must not mutate it.
func (p Primitive) Bytes() ([]byte, bool) { return p.bstr, p.kind == PrimByteString }

// Timespec returns the time-value payload and true, or the zero value, false.
func (p Primitive) Timespec() (Timespec, bool) { return p.ts, p.kind == PrimTimespec }
