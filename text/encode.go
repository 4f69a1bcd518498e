package text

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dtnma-go/ari"
	"github.com/dtnma-go/ari/text/internal/codec"
)

// Encode renders a as a URI-like text string under opts.
func Encode(a ari.Ari, opts Options) (string, error) {
	e := &encoder{opts: opts}
	if err := e.ari(a, 0, false); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

type encoder struct {
	sb   strings.Builder
	opts Options
}

func (e *encoder) emitScheme(depth int, noScheme bool) {
	if noScheme {
		return
	}
	switch e.opts.SchemePrefix {
	case SchemeAll:
		e.sb.WriteString("ari:")
	case SchemeFirst:
		if depth == 0 {
			e.sb.WriteString("ari:")
		}
	}
}

func (e *encoder) ari(a ari.Ari, depth int, noScheme bool) error {
	e.emitScheme(depth, noScheme)
	if ref, ok := a.Reference(); ok {
		return e.objref(*ref, depth)
	}
	lit, _ := a.Literal()
	return e.literal(*lit, depth)
}

func (e *encoder) idseg(s ari.IdSegment) {
	if v, ok := s.Int(); ok {
		e.sb.WriteString(strconv.FormatInt(v, 10))
		return
	}
	if v, ok := s.Text(); ok {
		e.sb.WriteString(v)
	}
}

func (e *encoder) hasTypeObj(p ari.ObjectPath) bool {
	return p.HasAriType || !p.TypeID.IsNull()
}

func (e *encoder) typeSeg(p ari.ObjectPath) {
	if e.opts.ShowAriType == ShowOrig && !p.TypeID.IsNull() {
		e.idseg(p.TypeID)
		return
	}
	if p.HasAriType {
		if e.opts.ShowAriType == ShowInt {
			e.sb.WriteString(strconv.Itoa(int(p.AriType)))
		} else {
			e.sb.WriteString(p.AriType.String())
		}
		return
	}
	e.idseg(p.TypeID)
}

func (e *encoder) objref(ref ari.Reference, depth int) error {
	e.sb.WriteString("//")
	e.idseg(ref.Path.NsID)
	e.sb.WriteByte('/')
	if e.hasTypeObj(ref.Path) {
		e.typeSeg(ref.Path)
		e.sb.WriteByte('/')
		e.idseg(ref.Path.ObjID)
	}
	return e.params(ref.Params, depth)
}

func (e *encoder) params(p ari.Params, depth int) error {
	switch p.Kind() {
	case ari.ParamsList:
		list, _ := p.List()
		return e.ac(list, depth)
	case ari.ParamsMap:
		m, _ := p.Map()
		return e.am(m, depth)
	default:
		return nil
	}
}

func (e *encoder) ac(list ari.AriList, depth int) error {
	e.sb.WriteByte('(')
	for i, item := range list {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		if err := e.ari(item, depth+1, false); err != nil {
			return err
		}
	}
	e.sb.WriteByte(')')
	return nil
}

func (e *encoder) am(m *ari.AriMap, depth int) error {
	e.sb.WriteByte('(')
	first := true
	var err error
	if m != nil {
		for k, v := range m.All() {
			if !first {
				e.sb.WriteByte(',')
			}
			first = false
			if err = e.ari(k, depth+1, false); err != nil {
				return err
			}
			e.sb.WriteByte('=')
			if err = e.ari(v, depth+1, false); err != nil {
				return err
			}
		}
	}
	e.sb.WriteByte(')')
	return nil
}

func (e *encoder) typeTag(v ari.TypedValue) {
	t := v.AriType()
	if e.opts.ShowAriType == ShowInt {
		e.sb.WriteString(strconv.Itoa(int(t)))
		return
	}
	// ShowOrig has no original raw segment to prefer for a literal's
	// explicit type tag, so it falls back to the canonical name too.
	e.sb.WriteString(t.String())
}

func (e *encoder) literal(lit ari.Literal, depth int) error {
	if lit.Typed == nil {
		return e.primitive(lit.Primitive)
	}

	e.sb.WriteByte('/')
	e.typeTag(*lit.Typed)
	e.sb.WriteByte('/')

	switch lit.Typed.Kind {
	case ari.TypedAC:
		return e.ac(lit.Typed.AC, depth)
	case ari.TypedAM:
		return e.am(lit.Typed.AM, depth)
	case ari.TypedTBL:
		return e.tbl(lit.Typed.TBL, depth)
	case ari.TypedExecSet:
		return e.execset(lit.Typed.ExecSet, depth)
	case ari.TypedRptSet:
		return e.rptset(lit.Typed.RptSet, depth)
	case ari.TypedTP:
		ts, _ := lit.Primitive.Timespec()
		e.sb.WriteString(e.time(ts, true))
		return nil
	case ari.TypedTD:
		ts, _ := lit.Primitive.Timespec()
		e.sb.WriteString(e.time(ts, false))
		return nil
	case ari.TypedPrim:
		return e.primitive(lit.Primitive)
	}
	return nil
}

func (e *encoder) tbl(t ari.AriTable, depth int) error {
	e.sb.WriteString("c=")
	e.sb.WriteString(strconv.Itoa(t.NCols))
	e.sb.WriteByte(';')
	if t.NCols == 0 {
		return nil
	}
	for row := 0; row < t.Rows(); row++ {
		e.sb.WriteByte('(')
		for col := 0; col < t.NCols; col++ {
			if col > 0 {
				e.sb.WriteByte(',')
			}
			if err := e.ari(t.Cells[row*t.NCols+col], depth+1, false); err != nil {
				return err
			}
		}
		e.sb.WriteByte(')')
	}
	return nil
}

func (e *encoder) execset(es ari.ExecSet, depth int) error {
	e.sb.WriteString("n=")
	if err := e.ari(es.Nonce, depth+1, true); err != nil {
		return err
	}
	e.sb.WriteByte(';')
	return e.ac(es.Targets, depth)
}

func (e *encoder) rptset(rs ari.RptSet, depth int) error {
	e.sb.WriteString("n=")
	if err := e.ari(rs.Nonce, depth+1, true); err != nil {
		return err
	}
	e.sb.WriteString(";r=")
	if err := e.ari(rs.RefTime, depth+1, true); err != nil {
		return err
	}
	e.sb.WriteByte(';')
	for _, r := range rs.Reports {
		if err := e.report(r, depth); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) report(r ari.Report, depth int) error {
	e.sb.WriteString("(t=")
	if err := e.ari(r.RelTime, depth+1, true); err != nil {
		return err
	}
	e.sb.WriteString(";s=")
	if err := e.ari(r.Source, depth+1, true); err != nil {
		return err
	}
	e.sb.WriteByte(';')
	if err := e.ac(r.Items, depth); err != nil {
		return err
	}
	e.sb.WriteByte(')')
	return nil
}

func (e *encoder) time(ts ari.Timespec, isPoint bool) string {
	if !e.opts.TimeText {
		return codec.EncodeDecimalTime(ts.Seconds, ts.Nanoseconds)
	}
	if isPoint {
		return codec.EncodeUTCTime(ts.Seconds, ts.Nanoseconds)
	}
	return codec.EncodeDuration(ts.Seconds, ts.Nanoseconds)
}

func (e *encoder) primitive(p ari.Primitive) error {
	switch p.Kind() {
	case ari.PrimUndefined:
		e.sb.WriteString("undefined")
	case ari.PrimNull:
		e.sb.WriteString("null")
	case ari.PrimBool:
		v, _ := p.Bool()
		if v {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	case ari.PrimUint64:
		v, _ := p.Uint64()
		s, err := codec.EncodeUint(v, e.opts.IntBase)
		if err != nil {
			return invalidArg("encodeUint", err)
		}
		e.sb.WriteString(s)
	case ari.PrimInt64:
		v, _ := p.Int64()
		s, err := codec.EncodeInt(v, e.opts.IntBase)
		if err != nil {
			return invalidArg("encodeInt", err)
		}
		e.sb.WriteString(s)
	case ari.PrimFloat64:
		v, _ := p.Float64()
		s, err := codec.EncodeFloat(v, e.opts.FloatForm)
		if err != nil {
			return invalidArg("encodeFloat", err)
		}
		e.sb.WriteString(s)
	case ari.PrimTextString:
		v, _ := p.Text()
		e.sb.WriteString(e.textString(v))
	case ari.PrimByteString:
		v, _ := p.Bytes()
		e.sb.WriteString(e.byteString(v))
	case ari.PrimTimespec:
		v, _ := p.Timespec()
		e.sb.WriteString(e.time(v, true))
	}
	return nil
}

func isIdentFirst(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentRest(c byte) bool {
	return isIdentFirst(c) || (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentFirst(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentRest(s[i]) {
			return false
		}
	}
	return true
}

// textString implements the tstr grammar's second alternative: the quote
// delimiters are part of the %-encoded-quoted-string production, not a
// raw delimiter outside it, so the whole `"..."` construct is
// percent-encoded — neither '"' nor any other non-unreserved byte is
// exempted. This is what lets a bare token() scan find the end of the
// literal on decode without tracking quote state.
func (e *encoder) textString(s string) string {
	if e.opts.TextIdentity && isIdentifier(s) {
		return s
	}
	escaped := codec.SlashEscape(s, '"')
	return codec.PercentEncode(`"`+escaped+`"`, "")
}

func (e *encoder) byteString(b []byte) string {
	switch e.opts.BstrForm {
	case BstrBase64URL:
		return "b64'" + codec.EncodeBase64(b, true) + "'"
	case BstrBase16:
		return "h'" + codec.EncodeBase16(b) + "'"
	default:
		if n := len(b); n > 0 && b[n-1] == 0 && utf8.Valid(b[:n-1]) {
			escaped := codec.SlashEscape(string(b[:n-1]), '\'')
			return codec.PercentEncode(`'`+escaped+`'`, "")
		}
		return "h'" + codec.EncodeBase16(b) + "'"
	}
}
