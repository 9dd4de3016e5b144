package flake

import (
	"strconv"
	"strings"
)

// indentUnit is the fixed indentation step of the rendered dialect.
const indentUnit = "  "

func indentAt(level int) string {
	return strings.Repeat(indentUnit, level)
}

// Encode renders a Value as Nix expression text. The first line carries no
// leading indentation so the result composes after "key = "; continuation
// lines of lists and attribute sets are indented one unit deeper than
// indent, with the closing bracket back at indent.
//
// Encode is total: every Value shape renders, and unknown shapes degrade
// to the null literal. Strings and keys are emitted verbatim with no
// escaping; embedded double quotes or invalid identifiers produce invalid
// Nix, which callers are expected to avoid.
func Encode(v Value, indent int) string {
	switch v.kind {
	case KindString:
		return `"` + v.str + `"`
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindList:
		if len(v.list) == 0 {
			return "[]"
		}
		var b strings.Builder
		b.WriteString("[\n")
		for _, elem := range v.list {
			b.WriteString(indentAt(indent + 1))
			b.WriteString(Encode(elem, indent+1))
			b.WriteString("\n")
		}
		b.WriteString(indentAt(indent))
		b.WriteString("]")
		return b.String()
	case KindAttrs:
		if v.attrs == nil || v.attrs.Len() == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		b.WriteString(EncodeBody(v.attrs, indent+1))
		b.WriteString(indentAt(indent))
		b.WriteString("}")
		return b.String()
	default:
		return "null"
	}
}

// EncodeBody renders only the "key = value;" lines of an attribute set,
// one per key in insertion order, each indented at the given level and
// terminated by a newline. No wrapping braces are emitted, so callers can
// splice the body directly into an enclosing block they open themselves.
func EncodeBody(attrs *AttrSet, indent int) string {
	if attrs == nil {
		return ""
	}
	var b strings.Builder
	for _, key := range attrs.Keys() {
		v, _ := attrs.Get(key)
		b.WriteString(indentAt(indent))
		b.WriteString(key)
		b.WriteString(" = ")
		b.WriteString(Encode(v, indent))
		b.WriteString(";\n")
	}
	return b.String()
}
