package ari

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualReflexive(t *testing.T) {
	values := []Ari{
		UndefinedAri(),
		NewLiteral(NullPrimitive(), nil),
		NewLiteral(BoolPrim(true), nil),
		NewLiteral(UintPrim(42), nil),
		NewLiteral(IntPrim(-7), nil),
		NewLiteral(FloatPrim(3.5), nil),
		NewLiteral(FloatPrim(math.NaN()), nil),
		NewLiteral(TextPrim("hello"), nil),
		NewLiteral(BytePrim([]byte{1, 2, 3}), nil),
		NewReference(NewObjectPath(TextSeg("adm"), TextSeg("CTRL"), IntSeg(1)), NoParams()),
		NewAC(AriList{NewLiteral(UintPrim(1), nil), NewLiteral(UintPrim(2), nil)}),
	}
	for _, v := range values {
		assert.True(t, Equal(v, Clone(v)), "value should equal its own clone")
		assert.Equal(t, Hash(v), Hash(Clone(v)), "clone should hash the same")
	}
}

func TestEqualNaNEqualsNaN(t *testing.T) {
	a := NewLiteral(FloatPrim(math.NaN()), nil)
	b := NewLiteral(FloatPrim(math.NaN()), nil)
	assert.True(t, Equal(a, b), "NaN should equal NaN under structural equality")
	assert.Equal(t, Hash(a), Hash(b))
}

func TestEqualDistinguishesKinds(t *testing.T) {
	u := NewLiteral(UintPrim(1), nil)
	i := NewLiteral(IntPrim(1), nil)
	assert.False(t, Equal(u, i), "uint64(1) and int64(1) are distinct primitive kinds")
}

func TestAriMapOrderIndependentEquality(t *testing.T) {
	k1 := NewLiteral(TextPrim("a"), nil)
	k2 := NewLiteral(TextPrim("b"), nil)
	v1 := NewLiteral(UintPrim(1), nil)
	v2 := NewLiteral(UintPrim(2), nil)

	m1 := NewAriMap()
	m1.Set(k1, v1)
	m1.Set(k2, v2)

	m2 := NewAriMap()
	m2.Set(k2, v2)
	m2.Set(k1, v1)

	am1 := NewAM(m1)
	am2 := NewAM(m2)

	assert.True(t, Equal(am1, am2), "AM equality must not depend on insertion order")
	assert.Equal(t, Hash(am1), Hash(am2), "AM hash must not depend on insertion order")
}

func TestAriMapGetSetUpdatesInPlace(t *testing.T) {
	m := NewAriMap()
	k := NewLiteral(TextPrim("k"), nil)
	m.Set(k, NewLiteral(UintPrim(1), nil))
	m.Set(k, NewLiteral(UintPrim(2), nil))

	require.Equal(t, 1, m.Len(), "updating an existing key must not grow the map")
	v, ok := m.Get(k)
	require.True(t, ok)
	got, _ := v.Literal()
	n, _ := got.Primitive.Uint64()
	assert.Equal(t, uint64(2), n)
}

func TestObjectPathEqualPrefersAriType(t *testing.T) {
	p1 := NewObjectPath(TextSeg("adm"), TextSeg("CTRL"), IntSeg(1)).WithAriType(TypeCtrl)
	p2 := NewObjectPath(TextSeg("adm"), IntSeg(int64(TypeCtrl)), IntSeg(1)).WithAriType(TypeCtrl)
	assert.True(t, p1.Equal(p2), "derived AriType should take precedence over raw TypeID form")
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewAriMap()
	m.Set(NewLiteral(TextPrim("k"), nil), NewLiteral(UintPrim(1), nil))
	orig := NewAM(m)
	clone := Clone(orig)

	m.Set(NewLiteral(TextPrim("k2"), nil), NewLiteral(UintPrim(2), nil))

	assert.False(t, Equal(orig, clone), "mutating the original map must not affect a prior clone")
}
