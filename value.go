package sheetcalc

import (
	"strconv"
	"strings"
)

type ValueType int

const (
	ValueLiteral ValueType = iota
	ValueFormula
	ValueText
)

func (t ValueType) String() string {
	switch t {
	case ValueLiteral:
		return "literal"
	case ValueFormula:
		return "formula"
	case ValueText:
		return "text"
	}
	return "unknown"
}

// Value is what a cell stores: an integer literal, formula text starting
// with '=', or any other text. Text cells can be stored but never resolve.
type Value struct {
	t ValueType
	i int
	s string
}

func Literal(i int) Value {
	return Value{t: ValueLiteral, i: i}
}

// Formula stores formula text including its leading '='. Text without
// the '=' is not a formula and is stored as Text.
func Formula(text string) Value {
	if !strings.HasPrefix(text, "=") {
		return Text(text)
	}
	return Value{t: ValueFormula, s: text}
}

func Text(s string) Value {
	return Value{t: ValueText, s: s}
}

// ParseValue classifies text typed by a user: base-10 integers become
// literals, text starting with '=' becomes a formula, the rest is text.
func ParseValue(text string) Value {
	if i, err := strconv.Atoi(text); err == nil {
		return Literal(i)
	}
	if strings.HasPrefix(text, "=") {
		return Formula(text)
	}
	return Text(text)
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) Int() (int, bool) {
	return v.i, v.t == ValueLiteral
}

// Body returns the formula text after the leading '='.
func (v Value) Body() (string, bool) {
	if v.t != ValueFormula {
		return "", false
	}
	return v.s[1:], true
}

func (v Value) String() string {
	switch v.t {
	case ValueLiteral:
		return strconv.Itoa(v.i)
	case ValueFormula:
		return v.s
	case ValueText:
		return strconv.Quote(v.s)
	}
	return ""
}
