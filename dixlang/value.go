package dixlang

import (
	"strconv"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "num"
	case KindText:
		return "str"
	case KindBool:
		return "bool"
	}
	return "none"
}

// Value is a number, a text or a boolean. The zero Value is none.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Num(f float64) Value {
	return Value{
		kind: KindNumber,
		num:  f,
	}
}

func Text(s string) Value {
	return Value{
		kind: KindText,
		text: s,
	}
}

func Bool(b bool) Value {
	v := Value{
		kind: KindBool,
	}
	if b {
		v.num = 1
	}
	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) Boolean() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

// Truth reports whether v satisfies a condition.
func (v Value) Truth() bool {
	switch v.kind {
	case KindNumber, KindBool:
		return v.num != 0
	case KindText:
		return v.text != ""
	}
	return false
}

func (v Value) Equal(other Value) bool {
	return v == other
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	}
	return ""
}

// Any returns v as a plain Go value: float64, string, bool or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.num != 0
	}
	return nil
}
