package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnma-go/ari"
)

func roundTrip(t *testing.T, a ari.Ari, opts Options) ari.Ari {
	t.Helper()
	s, err := Encode(a, opts)
	require.NoError(t, err, "encode")
	got, err := Decode(s)
	require.NoError(t, err, "decode %q", s)
	return got
}

func TestEncodeDecodeRoundTripPrimitives(t *testing.T) {
	opts := Default()
	values := []ari.Ari{
		ari.UndefinedAri(),
		ari.NewLiteral(ari.NullPrimitive(), nil),
		ari.NewLiteral(ari.BoolPrim(true), nil),
		ari.NewLiteral(ari.BoolPrim(false), nil),
		ari.NewLiteral(ari.UintPrim(42), nil),
		ari.NewLiteral(ari.IntPrim(-7), nil),
		ari.NewLiteral(ari.FloatPrim(3.5), nil),
		ari.NewLiteral(ari.TextPrim("hello"), nil),
		ari.NewLiteral(ari.TextPrim("has space"), nil),
		ari.NewLiteral(ari.BytePrim([]byte{0xDE, 0xAD, 0xBE, 0xEF}), nil),
	}
	for _, v := range values {
		got := roundTrip(t, v, opts)
		assert.True(t, ari.Equal(v, got), "round trip should preserve structural equality for %#v", v)
	}
}

func TestEncodeDecodeRoundTripFloatSpecials(t *testing.T) {
	opts := Default()
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		v := ari.NewLiteral(ari.FloatPrim(f), nil)
		s, err := Encode(v, opts)
		require.NoError(t, err)
		got, err := Decode(s)
		require.NoError(t, err, "decode %q", s)
		lit, _ := got.Literal()
		gf, _ := lit.Primitive.Float64()
		if math.IsNaN(f) {
			assert.True(t, math.IsNaN(gf))
		} else {
			assert.Equal(t, f, gf)
		}
	}
}

func TestEncodeDecodeRoundTripAC(t *testing.T) {
	v := ari.NewAC(ari.AriList{
		ari.NewLiteral(ari.UintPrim(1), nil),
		ari.NewLiteral(ari.TextPrim("x"), nil),
	})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripAM(t *testing.T) {
	m := ari.NewAriMap()
	m.Set(ari.NewLiteral(ari.TextPrim("k1"), nil), ari.NewLiteral(ari.UintPrim(1), nil))
	m.Set(ari.NewLiteral(ari.TextPrim("k2"), nil), ari.NewLiteral(ari.UintPrim(2), nil))
	v := ari.NewAM(m)
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripTBL(t *testing.T) {
	v := ari.NewTBL(ari.AriTable{
		NCols: 2,
		Cells: ari.AriList{
			ari.NewLiteral(ari.UintPrim(1), nil), ari.NewLiteral(ari.UintPrim(2), nil),
			ari.NewLiteral(ari.UintPrim(3), nil), ari.NewLiteral(ari.UintPrim(4), nil),
		},
	})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripExecSet(t *testing.T) {
	v := ari.NewExecSet(ari.ExecSet{
		Nonce: ari.NewLiteral(ari.UintPrim(7), nil),
		Targets: ari.AriList{
			ari.NewReference(ari.NewObjectPath(ari.TextSeg("adm"), ari.TextSeg("CTRL"), ari.IntSeg(1)), ari.NoParams()),
		},
	})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripRptSet(t *testing.T) {
	v := ari.NewRptSet(ari.RptSet{
		Nonce:   ari.NewLiteral(ari.UintPrim(7), nil),
		RefTime: ari.NewTP(ari.Timespec{Seconds: 100}),
		Reports: []ari.Report{
			{
				RelTime: ari.NewTD(ari.Timespec{Seconds: 5}),
				Source:  ari.NewReference(ari.NewObjectPath(ari.TextSeg("adm"), ari.TextSeg("EDD"), ari.IntSeg(2)), ari.NoParams()),
				Items:   ari.AriList{ari.NewLiteral(ari.UintPrim(9), nil)},
			},
		},
	})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripTimepoint(t *testing.T) {
	v := ari.NewTP(ari.Timespec{Seconds: 12345, Nanoseconds: 500000000})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripDuration(t *testing.T) {
	v := ari.NewTD(ari.Timespec{Seconds: -90061, Nanoseconds: 250000000})
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripReference(t *testing.T) {
	path := ari.NewObjectPath(ari.TextSeg("adm"), ari.TextSeg("CTRL"), ari.IntSeg(3))
	v := ari.NewReference(path, ari.ListParams(ari.AriList{ari.NewLiteral(ari.UintPrim(1), nil)}))
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

func TestEncodeDecodeRoundTripUnicodeSurrogatePair(t *testing.T) {
	v := ari.NewLiteral(ari.TextPrim("emoji:\U0001F600"), nil)
	got := roundTrip(t, v, Default())
	assert.True(t, ari.Equal(v, got))
}

// TestEncodeScenarios pins the concrete encodings of tagged primitives and
// containers against fixed expected strings, the way a spec conformance
// table would.
func TestEncodeScenarios(t *testing.T) {
	opts := Default()

	ac := ari.NewAC(ari.AriList{
		ari.NewTaggedPrimitive(ari.IntPrim(1), ari.TypeInt),
		ari.NewTaggedPrimitive(ari.IntPrim(2), ari.TypeInt),
		ari.NewTaggedPrimitive(ari.IntPrim(3), ari.TypeInt),
	})
	s, err := Encode(ac, opts)
	require.NoError(t, err)
	assert.Equal(t, "ari:/AC/(/INT/1,/INT/2,/INT/3)", s)

	m := ari.NewAriMap()
	m.Set(ari.NewTaggedPrimitive(ari.IntPrim(1), ari.TypeInt), ari.NewLiteral(ari.TextPrim("a"), nil))
	am := ari.NewAM(m)
	s, err = Encode(am, opts)
	require.NoError(t, err)
	assert.Equal(t, "ari:/AM/(/INT/1=a)", s)

	tbl := ari.NewTBL(ari.AriTable{
		NCols: 2,
		Cells: ari.AriList{
			ari.NewTaggedPrimitive(ari.IntPrim(1), ari.TypeInt), ari.NewTaggedPrimitive(ari.IntPrim(2), ari.TypeInt),
			ari.NewTaggedPrimitive(ari.IntPrim(3), ari.TypeInt), ari.NewTaggedPrimitive(ari.IntPrim(4), ari.TypeInt),
		},
	})
	s, err = Encode(tbl, opts)
	require.NoError(t, err)
	assert.Equal(t, "ari:/TBL/c=2;(/INT/1,/INT/2)(/INT/3,/INT/4)", s)

	bstr := ari.NewTaggedPrimitive(ari.BytePrim([]byte{0xDE, 0xAD, 0xBE, 0xEF}), ari.TypeBytestr)
	bstrOpts := opts
	bstrOpts.BstrForm = BstrBase16
	s, err = Encode(bstr, bstrOpts)
	require.NoError(t, err)
	assert.Equal(t, "ari:/BYTESTR/h'DEADBEEF'", s)

	tstr := ari.NewTaggedPrimitive(ari.TextPrim("hello world"), ari.TypeTextstr)
	s, err = Encode(tstr, opts)
	require.NoError(t, err)
	assert.Equal(t, "ari:/TEXTSTR/%22hello%20world%22", s)

	for _, a := range []ari.Ari{ac, am, tbl, bstr, tstr} {
		s, err := Encode(a, opts)
		require.NoError(t, err)
		got, err := Decode(s)
		require.NoError(t, err, "decode %q", s)
		assert.True(t, ari.Equal(a, got), "round trip should preserve structural equality for %q", s)
	}
}

func TestDecodeTaggedPrimitive(t *testing.T) {
	got, err := Decode("ari:/INT/1")
	require.NoError(t, err)
	lit, ok := got.Literal()
	require.True(t, ok)
	require.NotNil(t, lit.Typed)
	assert.Equal(t, ari.TypedPrim, lit.Typed.Kind)
	assert.Equal(t, ari.TypeInt, lit.Typed.AriType())
	v, ok := lit.Primitive.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestDecodeTrailingGarbage(t *testing.T) {
	_, err := Decode("undefinedXYZ")
	require.Error(t, err)
	var aerr *ari.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, ari.CodeTrailingGarbage, aerr.Code)
}

func TestDecodeBase16ByteString(t *testing.T) {
	got, err := Decode("h'DEADBEEF'")
	require.NoError(t, err)
	lit, _ := got.Literal()
	b, _ := lit.Primitive.Bytes()
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b)
}

func TestSchemePrefixOptions(t *testing.T) {
	v := ari.NewLiteral(ari.UintPrim(1), nil)

	s, err := Encode(v, Options{SchemePrefix: SchemeNone, ShowAriType: ShowText, IntBase: 10, FloatForm: 'g', TextIdentity: true, BstrForm: BstrBase16, TimeText: true})
	require.NoError(t, err)
	assert.Equal(t, "1", s)

	s, err = Encode(v, Options{SchemePrefix: SchemeFirst, ShowAriType: ShowText, IntBase: 10, FloatForm: 'g', TextIdentity: true, BstrForm: BstrBase16, TimeText: true})
	require.NoError(t, err)
	assert.Equal(t, "ari:1", s)
}
