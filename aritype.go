package ari

import (
	"strconv"
	"strings"
	"sync"
)

// AriType enumerates the built-in ARI literal and managed-object types.
// The set is closed: IANA sub-registries "Literal Types" and "Managed
// Object Types" define the members, mirrored here in the same order as
// the reference C implementation's name table.
type AriType int

// The built-in ARI types, in registry order.
const (
	TypeLiteral AriType = iota
	TypeNull
	TypeBool
	TypeByte
	TypeInt
	TypeUint
	TypeVast
	TypeUvast
	TypeReal32
	TypeReal64
	TypeTextstr
	TypeBytestr
	TypeTP
	TypeTD
	TypeLabel
	TypeCBOR
	TypeARItype
	TypeAC
	TypeAM
	TypeTBL
	TypeExecset
	TypeRptset
	TypeObject
	TypeIdent
	TypeConst
	TypeCtrl

	typeCount // sentinel, not a valid AriType
)

var ariTypeNames = [typeCount]string{
	TypeLiteral: "LITERAL",
	TypeNull:    "NULL",
	TypeBool:    "BOOL",
	TypeByte:    "BYTE",
	TypeInt:     "INT",
	TypeUint:    "UINT",
	TypeVast:    "VAST",
	TypeUvast:   "UVAST",
	TypeReal32:  "REAL32",
	TypeReal64:  "REAL64",
	TypeTextstr: "TEXTSTR",
	TypeBytestr: "BYTESTR",
	TypeTP:      "TP",
	TypeTD:      "TD",
	TypeLabel:   "LABEL",
	TypeCBOR:    "CBOR",
	TypeARItype: "ARITYPE",
	TypeAC:      "AC",
	TypeAM:      "AM",
	TypeTBL:     "TBL",
	TypeExecset: "EXECSET",
	TypeRptset:  "RPTSET",
	TypeObject:  "OBJECT",
	TypeIdent:   "IDENT",
	TypeConst:   "CONST",
	TypeCtrl:    "CTRL",
}

// byName is built once, lazily, guarded by sync.OnceValue — the idiomatic
// replacement for the reference implementation's pthread_once-guarded
// dictionary. The table is read-only after first use and safe for
// concurrent reads from any goroutine.
var byName = sync.OnceValue(func() map[string]AriType {
	m := make(map[string]AriType, len(ariTypeNames))
	for t, name := range ariTypeNames {
		m[name] = AriType(t)
	}
	return m
})

// String returns the canonical uppercase name, or "AriType(n)" for a value
// outside the closed enumeration.
func (t AriType) String() string {
	if name, ok := AriTypeToName(t); ok {
		return name
	}
	return "AriType(" + strconv.Itoa(int(t)) + ")"
}

// AriTypeToName returns the canonical name for t, or false if t is not one
// of the built-in types.
func AriTypeToName(t AriType) (string, bool) {
	if t < 0 || t >= typeCount {
		return "", false
	}
	name := ariTypeNames[t]
	return name, name != ""
}

// AriTypeFromName resolves name to its AriType, case-insensitively, or
// returns false when no built-in type matches.
func AriTypeFromName(name string) (AriType, bool) {
	t, ok := byName()[strings.ToUpper(name)]
	return t, ok
}

