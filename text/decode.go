package text

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnma-go/ari"
	"github.com/dtnma-go/ari/text/internal/codec"
)

// Decode parses s as a URI-like text string into an Ari. It accepts any of
// the three scheme_prefix behaviours, either time form, and bare or
// quoted text/byte strings, regardless of which Options produced s on
// encode. Decode takes no Options: the grammar and any explicit type tag
// alone decide how each value is read.
func Decode(s string) (ari.Ari, error) {
	p := &parser{s: s}
	a, err := p.parseAri()
	if err != nil {
		return ari.Ari{}, err
	}
	if p.pos != len(p.s) {
		return ari.Ari{}, ari.NewError(ari.CodeTrailingGarbage, "Decode",
			fmt.Errorf("unconsumed input %q", p.s[p.pos:]))
	}
	return a, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.s) }

func (p *parser) peekByte() byte {
	if p.atEnd() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) consumeByte(c byte) bool {
	if p.peekByte() != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) consumeLiteral(lit string) bool {
	if !strings.HasPrefix(p.s[p.pos:], lit) {
		return false
	}
	p.pos += len(lit)
	return true
}

func isDelim(c byte) bool {
	switch c {
	case '/', '(', ')', ',', '=', ';':
		return true
	default:
		return false
	}
}

// token reads a run up to (not including) the next grammar delimiter or
// the end of input.
func (p *parser) token() string {
	start := p.pos
	for p.pos < len(p.s) && !isDelim(p.s[p.pos]) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *parser) skipScheme() {
	p.consumeLiteral("ari:")
}

func (p *parser) parseAri() (ari.Ari, error) {
	p.skipScheme()
	if strings.HasPrefix(p.s[p.pos:], "//") {
		return p.parseObjRef()
	}
	return p.parseLiteral()
}

func isDecimalInt(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '-' {
		i = 1
	}
	if i >= len(tok) {
		return false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func (p *parser) parseIdSeg() (ari.IdSegment, error) {
	tok := p.token()
	if tok == "" {
		return ari.NullSeg(), nil
	}
	if isDecimalInt(tok) {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return ari.IdSegment{}, malformed("parseIdSeg", err)
		}
		return ari.IntSeg(v), nil
	}
	return ari.TextSeg(tok), nil
}

func (p *parser) parseObjRef() (ari.Ari, error) {
	p.pos += 2 // "//"
	nsSeg, err := p.parseIdSeg()
	if err != nil {
		return ari.Ari{}, err
	}
	if !p.consumeByte('/') {
		return ari.Ari{}, malformed("parseObjRef", errors.New("expected '/' after namespace segment"))
	}

	path := ari.NewObjectPath(nsSeg, ari.NullSeg(), ari.NullSeg())
	if !p.atEnd() && p.peekByte() != '(' {
		typeTok := p.token()
		if !p.consumeByte('/') {
			return ari.Ari{}, malformed("parseObjRef", errors.New("expected '/' after type segment"))
		}
		objSeg, err := p.parseIdSeg()
		if err != nil {
			return ari.Ari{}, err
		}
		path.ObjID = objSeg
		path.TypeID = typeIdSeg(typeTok)
		if t, ok := resolveAriType(typeTok); ok {
			path = path.WithAriType(t)
		}
	}

	params, err := p.parseParams()
	if err != nil {
		return ari.Ari{}, err
	}
	return ari.NewReference(path, params), nil
}

func typeIdSeg(tok string) ari.IdSegment {
	if isDecimalInt(tok) {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return ari.IntSeg(v)
		}
	}
	return ari.TextSeg(tok)
}

func resolveAriType(tok string) (ari.AriType, bool) {
	if t, ok := ari.AriTypeFromName(tok); ok {
		return t, true
	}
	if n, err := strconv.Atoi(tok); err == nil {
		if name, ok := ari.AriTypeToName(ari.AriType(n)); ok && name != "" {
			return ari.AriType(n), true
		}
	}
	return 0, false
}

func (p *parser) parseParams() (ari.Params, error) {
	if p.atEnd() || p.peekByte() != '(' {
		return ari.NoParams(), nil
	}
	return p.parseACOrAM()
}

// parseACOrAM parses a parenthesized "(" [ ari ("," ari)* ] ")" body,
// switching to map parsing the moment it sees the first "key=value" pair.
func (p *parser) parseACOrAM() (ari.Params, error) {
	if !p.consumeByte('(') {
		return ari.Params{}, malformed("parseACOrAM", errors.New("expected '('"))
	}
	if p.consumeByte(')') {
		return ari.ListParams(nil), nil
	}

	first, err := p.parseAri()
	if err != nil {
		return ari.Params{}, err
	}

	if p.consumeByte('=') {
		val, err := p.parseAri()
		if err != nil {
			return ari.Params{}, err
		}
		m := ari.NewAriMap()
		m.Set(first, val)
		for p.consumeByte(',') {
			k, err := p.parseAri()
			if err != nil {
				return ari.Params{}, err
			}
			if !p.consumeByte('=') {
				return ari.Params{}, malformed("parseACOrAM", errors.New("expected '=' in map entry"))
			}
			v, err := p.parseAri()
			if err != nil {
				return ari.Params{}, err
			}
			m.Set(k, v)
		}
		if !p.consumeByte(')') {
			return ari.Params{}, malformed("parseACOrAM", errors.New("expected ')'"))
		}
		return ari.MapParams(m), nil
	}

	list := ari.AriList{first}
	for p.consumeByte(',') {
		v, err := p.parseAri()
		if err != nil {
			return ari.Params{}, err
		}
		list = append(list, v)
	}
	if !p.consumeByte(')') {
		return ari.Params{}, malformed("parseACOrAM", errors.New("expected ')'"))
	}
	return ari.ListParams(list), nil
}

func (p *parser) parseLiteral() (ari.Ari, error) {
	if p.consumeByte('/') {
		tok := p.token()
		if !p.consumeByte('/') {
			return ari.Ari{}, malformed("parseLiteral", errors.New("expected '/' after type tag"))
		}
		if kind, ok := containerKindFromToken(tok); ok {
			return p.parseTypedBody(kind)
		}
		// an explicit tag on a primitive, e.g. "/INT/1" or "/TEXTSTR/hi":
		// parse the primitive body, then carry the tag forward as a
		// TypedPrim so it round-trips back out on Encode.
		a, err := p.parsePrimLiteral()
		if err != nil {
			return ari.Ari{}, err
		}
		t, ok := resolveAriType(tok)
		if !ok {
			return ari.Ari{}, malformed("parseLiteral", fmt.Errorf("unknown type tag %q", tok))
		}
		lit, _ := a.Literal()
		return ari.NewTaggedPrimitive(coercePrimitive(lit.Primitive, t), t), nil
	}
	return p.parsePrimLiteral()
}

// coercePrimitive resolves ambiguity that the bare text grammar leaves
// unresolved — an unsigned-looking digit run tagged /INT/ is a signed
// integer, one tagged /REAL32/ or /REAL64/ is floating-point — the way an
// explicit type tag on a primitive is supposed to disambiguate it.
func coercePrimitive(p ari.Primitive, t ari.AriType) ari.Primitive {
	switch t {
	case ari.TypeInt, ari.TypeVast:
		if v, ok := p.Uint64(); ok {
			return ari.IntPrim(int64(v))
		}
	case ari.TypeUint, ari.TypeUvast:
		if v, ok := p.Int64(); ok {
			return ari.UintPrim(uint64(v))
		}
	case ari.TypeReal32, ari.TypeReal64:
		if v, ok := p.Uint64(); ok {
			return ari.FloatPrim(float64(v))
		}
		if v, ok := p.Int64(); ok {
			return ari.FloatPrim(float64(v))
		}
	}
	return p
}

func containerKindFromToken(tok string) (ari.TypedKind, bool) {
	t, ok := resolveAriType(tok)
	if !ok {
		return 0, false
	}
	switch t {
	case ari.TypeAC:
		return ari.TypedAC, true
	case ari.TypeAM:
		return ari.TypedAM, true
	case ari.TypeTBL:
		return ari.TypedTBL, true
	case ari.TypeExecset:
		return ari.TypedExecSet, true
	case ari.TypeRptset:
		return ari.TypedRptSet, true
	case ari.TypeTP:
		return ari.TypedTP, true
	case ari.TypeTD:
		return ari.TypedTD, true
	default:
		return 0, false
	}
}

func (p *parser) parseTypedBody(kind ari.TypedKind) (ari.Ari, error) {
	switch kind {
	case ari.TypedAC:
		params, err := p.parseACOrAM()
		if err != nil {
			return ari.Ari{}, err
		}
		list, ok := params.List()
		if !ok {
			return ari.Ari{}, semanticViolation("parseTypedBody", errors.New("AC body is not a list"))
		}
		return ari.NewAC(list), nil
	case ari.TypedAM:
		params, err := p.parseACOrAM()
		if err != nil {
			return ari.Ari{}, err
		}
		if m, ok := params.Map(); ok {
			return ari.NewAM(m), nil
		}
		if list, ok := params.List(); ok && len(list) == 0 {
			return ari.NewAM(ari.NewAriMap()), nil
		}
		return ari.Ari{}, semanticViolation("parseTypedBody", errors.New("AM body is not a map"))
	case ari.TypedTBL:
		return p.parseTBL()
	case ari.TypedExecSet:
		return p.parseExecSet()
	case ari.TypedRptSet:
		return p.parseRptSet()
	case ari.TypedTP:
		return p.parseTime(true)
	case ari.TypedTD:
		return p.parseTime(false)
	}
	return ari.Ari{}, malformed("parseTypedBody", errors.New("unreachable"))
}

func (p *parser) parseTBL() (ari.Ari, error) {
	if !p.consumeLiteral("c=") {
		return ari.Ari{}, malformed("parseTBL", errors.New("expected 'c='"))
	}
	tok := p.token()
	ncols, err := strconv.Atoi(tok)
	if err != nil {
		return ari.Ari{}, malformed("parseTBL", err)
	}
	if !p.consumeByte(';') {
		return ari.Ari{}, malformed("parseTBL", errors.New("expected ';' after column count"))
	}

	var cells ari.AriList
	for !p.atEnd() && p.peekByte() == '(' {
		params, err := p.parseACOrAM()
		if err != nil {
			return ari.Ari{}, err
		}
		row, ok := params.List()
		if !ok {
			return ari.Ari{}, semanticViolation("parseTBL", errors.New("row is not a plain list"))
		}
		if ncols > 0 && len(row) != ncols {
			return ari.Ari{}, semanticViolation("parseTBL",
				fmt.Errorf("row width %d does not match ncols %d", len(row), ncols))
		}
		cells = append(cells, row...)
	}
	return ari.NewTBL(ari.AriTable{NCols: ncols, Cells: cells}), nil
}

func (p *parser) parseExecSet() (ari.Ari, error) {
	if !p.consumeLiteral("n=") {
		return ari.Ari{}, malformed("parseExecSet", errors.New("expected 'n='"))
	}
	nonce, err := p.parseAri()
	if err != nil {
		return ari.Ari{}, err
	}
	if !p.consumeByte(';') {
		return ari.Ari{}, malformed("parseExecSet", errors.New("expected ';' after nonce"))
	}
	params, err := p.parseACOrAM()
	if err != nil {
		return ari.Ari{}, err
	}
	targets, ok := params.List()
	if !ok {
		return ari.Ari{}, semanticViolation("parseExecSet", errors.New("targets is not a plain list"))
	}
	return ari.NewExecSet(ari.ExecSet{Nonce: nonce, Targets: targets}), nil
}

func (p *parser) parseRptSet() (ari.Ari, error) {
	if !p.consumeLiteral("n=") {
		return ari.Ari{}, malformed("parseRptSet", errors.New("expected 'n='"))
	}
	nonce, err := p.parseAri()
	if err != nil {
		return ari.Ari{}, err
	}
	if !p.consumeByte(';') {
		return ari.Ari{}, malformed("parseRptSet", errors.New("expected ';' after nonce"))
	}
	if !p.consumeLiteral("r=") {
		return ari.Ari{}, malformed("parseRptSet", errors.New("expected 'r='"))
	}
	reftime, err := p.parseAri()
	if err != nil {
		return ari.Ari{}, err
	}
	if !p.consumeByte(';') {
		return ari.Ari{}, malformed("parseRptSet", errors.New("expected ';' after reftime"))
	}

	var reports []ari.Report
	for !p.atEnd() && p.peekByte() == '(' {
		p.pos++
		if !p.consumeLiteral("t=") {
			return ari.Ari{}, malformed("parseRptSet", errors.New("expected 't=' in report"))
		}
		reltime, err := p.parseAri()
		if err != nil {
			return ari.Ari{}, err
		}
		if !p.consumeByte(';') {
			return ari.Ari{}, malformed("parseRptSet", errors.New("expected ';' after reltime"))
		}
		if !p.consumeLiteral("s=") {
			return ari.Ari{}, malformed("parseRptSet", errors.New("expected 's=' in report"))
		}
		source, err := p.parseAri()
		if err != nil {
			return ari.Ari{}, err
		}
		if !p.consumeByte(';') {
			return ari.Ari{}, malformed("parseRptSet", errors.New("expected ';' after source"))
		}
		itemsParams, err := p.parseACOrAM()
		if err != nil {
			return ari.Ari{}, err
		}
		items, ok := itemsParams.List()
		if !ok {
			return ari.Ari{}, semanticViolation("parseRptSet", errors.New("report items is not a plain list"))
		}
		if !p.consumeByte(')') {
			return ari.Ari{}, malformed("parseRptSet", errors.New("expected ')' closing report"))
		}
		reports = append(reports, ari.Report{RelTime: reltime, Source: source, Items: items})
	}
	return ari.NewRptSet(ari.RptSet{Nonce: nonce, RefTime: reftime, Reports: reports}), nil
}

func (p *parser) parseTime(isPoint bool) (ari.Ari, error) {
	tok := p.token()
	if tok == "" {
		return ari.Ari{}, malformed("parseTime", errors.New("empty time value"))
	}

	var sec int64
	var nsec uint32
	var err error
	switch {
	case strings.HasSuffix(tok, "Z"):
		sec, nsec, err = codec.DecodeUTCTime(tok)
	case strings.HasPrefix(tok, "P") || strings.HasPrefix(tok, "-P") || strings.HasPrefix(tok, "+P"):
		sec, nsec, err = codec.DecodeDuration(tok)
	default:
		sec, nsec, err = codec.DecodeDecimalTime(tok)
	}
	if err != nil {
		return ari.Ari{}, wrapCodecErr("parseTime", err)
	}

	ts := ari.Timespec{Seconds: sec, Nanoseconds: nsec}
	if isPoint {
		return ari.NewTP(ts), nil
	}
	return ari.NewTD(ts), nil
}

// parseRawQuoted accepts a quoted string written with literal quote bytes
// delimiting a percent-encoded, slash-escaped body — a lenient form the
// grammar's canonical encoding never produces (see parseEncodedQuoted) but
// that hand-written input may use.
func (p *parser) parseRawQuoted(quote byte) (string, error) {
	if !p.consumeByte(quote) {
		return "", malformed("parseRawQuoted", fmt.Errorf("expected %q", quote))
	}
	start := p.pos
	for p.pos < len(p.s) {
		if p.s[p.pos] == '\\' {
			p.pos += 2
			continue
		}
		if p.s[p.pos] == quote {
			break
		}
		p.pos++
	}
	if p.atEnd() {
		return "", malformed("parseRawQuoted", errors.New("unterminated quoted string"))
	}
	raw := p.s[start:p.pos]
	p.pos++ // closing quote

	decoded, err := codec.PercentDecode(raw)
	if err != nil {
		return "", wrapCodecErr("parseRawQuoted", err)
	}
	unescaped, err := codec.SlashUnescape(decoded)
	if err != nil {
		return "", wrapCodecErr("parseRawQuoted", err)
	}
	return unescaped, nil
}

// peekPercentQuote reports whether the parser sits at a %-encoded-quoted-
// string token per the tstr grammar, where the quote delimiters themselves
// are part of the percent-encoded run rather than raw bytes.
func (p *parser) peekPercentQuote() (byte, bool) {
	rest := p.s[p.pos:]
	if len(rest) < 3 || rest[0] != '%' {
		return 0, false
	}
	switch {
	case strings.EqualFold(rest[:3], "%22"):
		return '"', true
	case strings.EqualFold(rest[:3], "%27"):
		return '\'', true
	}
	return 0, false
}

// parseEncodedQuoted reads a whole %-encoded-quoted-string token — quote
// delimiters included — as a single delimiter-free run, the canonical form
// textString/byteString emit.
func (p *parser) parseEncodedQuoted(quote byte) (string, error) {
	tok := p.token()
	decoded, err := codec.PercentDecode(tok)
	if err != nil {
		return "", wrapCodecErr("parseEncodedQuoted", err)
	}
	if len(decoded) < 2 || decoded[0] != quote || decoded[len(decoded)-1] != quote {
		return "", malformed("parseEncodedQuoted", fmt.Errorf("expected %q-delimited token, got %q", quote, decoded))
	}
	unescaped, err := codec.SlashUnescape(decoded[1 : len(decoded)-1])
	if err != nil {
		return "", wrapCodecErr("parseEncodedQuoted", err)
	}
	return unescaped, nil
}

var floatSpecials = map[string]bool{"NaN": true, "Infinity": true, "+Infinity": true, "-Infinity": true}

func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '-' || c == '+' || (c >= '0' && c <= '9')
}

func (p *parser) parsePrimLiteral() (ari.Ari, error) {
	switch {
	case p.consumeLiteral("undefined"):
		return ari.UndefinedAri(), nil
	case p.consumeLiteral("null"):
		return ari.NewLiteral(ari.NullPrimitive(), nil), nil
	case p.consumeLiteral("true"):
		return ari.NewLiteral(ari.BoolPrim(true), nil), nil
	case p.consumeLiteral("false"):
		return ari.NewLiteral(ari.BoolPrim(false), nil), nil
	}

	if quote, ok := p.peekPercentQuote(); ok {
		s, err := p.parseEncodedQuoted(quote)
		if err != nil {
			return ari.Ari{}, err
		}
		if quote == '"' {
			return ari.NewLiteral(ari.TextPrim(s), nil), nil
		}
		return ari.NewLiteral(ari.BytePrim(append([]byte(s), 0)), nil), nil
	}

	switch p.peekByte() {
	case '"':
		s, err := p.parseRawQuoted('"')
		if err != nil {
			return ari.Ari{}, err
		}
		return ari.NewLiteral(ari.TextPrim(s), nil), nil
	case '\'':
		s, err := p.parseRawQuoted('\'')
		if err != nil {
			return ari.Ari{}, err
		}
		return ari.NewLiteral(ari.BytePrim(append([]byte(s), 0)), nil), nil
	case '(':
		params, err := p.parseACOrAM()
		if err != nil {
			return ari.Ari{}, err
		}
		if m, ok := params.Map(); ok {
			return ari.NewAM(m), nil
		}
		list, _ := params.List()
		return ari.NewAC(list), nil
	}

	if strings.HasPrefix(p.s[p.pos:], "h'") {
		return p.parseBstrForm("h'", func(body string) ([]byte, error) { return codec.DecodeBase16(body) })
	}
	if strings.HasPrefix(p.s[p.pos:], "b64'") {
		return p.parseBstrForm("b64'", func(body string) ([]byte, error) { return codec.DecodeBase64(body, true) })
	}
	if strings.HasPrefix(p.s[p.pos:], "c=") {
		return p.parseTBL()
	}
	if strings.HasPrefix(p.s[p.pos:], "n=") {
		if looksLikeRptSet(p.s[p.pos:]) {
			return p.parseRptSet()
		}
		return p.parseExecSet()
	}

	tok := p.token()
	if tok == "" {
		return ari.Ari{}, malformed("parsePrimLiteral", errors.New("empty literal"))
	}
	if floatSpecials[tok] {
		f, _ := codec.DecodeFloat(tok)
		return ari.NewLiteral(ari.FloatPrim(f), nil), nil
	}
	if looksNumeric(tok) {
		if strings.ContainsAny(tok, ".") || (!strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0X") && strings.ContainsAny(tok, "eE")) {
			if f, err := codec.DecodeFloat(tok); err == nil {
				return ari.NewLiteral(ari.FloatPrim(f), nil), nil
			}
		}
		if strings.HasPrefix(tok, "-") {
			if v, err := codec.DecodeInt(tok); err == nil {
				return ari.NewLiteral(ari.IntPrim(v), nil), nil
			}
		} else {
			if v, err := codec.DecodeUint(tok); err == nil {
				return ari.NewLiteral(ari.UintPrim(v), nil), nil
			}
		}
		if f, err := codec.DecodeFloat(tok); err == nil {
			return ari.NewLiteral(ari.FloatPrim(f), nil), nil
		}
		return ari.Ari{}, malformed("parsePrimLiteral", fmt.Errorf("bad numeric literal %q", tok))
	}
	if isIdentifier(tok) {
		return ari.NewLiteral(ari.TextPrim(tok), nil), nil
	}
	return ari.Ari{}, malformed("parsePrimLiteral", fmt.Errorf("unrecognized literal %q", tok))
}

func (p *parser) parseBstrForm(prefix string, decode func(string) ([]byte, error)) (ari.Ari, error) {
	p.pos += len(prefix)
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != '\'' {
		p.pos++
	}
	if p.atEnd() {
		return ari.Ari{}, malformed("parseBstrForm", errors.New("unterminated byte-string literal"))
	}
	body := p.s[start:p.pos]
	p.pos++ // closing quote

	b, err := decode(body)
	if err != nil {
		return ari.Ari{}, wrapCodecErr("parseBstrForm", err)
	}
	return ari.NewLiteral(ari.BytePrim(b), nil), nil
}

// looksLikeRptSet distinguishes a bare "n=...;r=...;..." report set from a
// bare "n=...;(...)" execution set by scanning for an "r=" field directly
// after the nonce's terminating ';', at depth 0 relative to this value.
func looksLikeRptSet(s string) bool {
	depth := 0
	for i := 2; i < len(s); i++ { // skip leading "n="
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ';':
			if depth == 0 {
				return strings.HasPrefix(s[i+1:], "r=")
			}
		}
	}
	return false
}
