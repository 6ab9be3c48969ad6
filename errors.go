package sheetcalc

import (
	"errors"
	"fmt"
)

var (
	ErrCellNotFound    = errors.New("cell not found")
	ErrInvalidCell     = errors.New("invalid cell")
	ErrCyclicReference = errors.New("cyclic reference")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownCommand  = errors.New("unknown command")
)

// ErrorCode follows spreadsheet display conventions.
type ErrorCode uint8

const (
	CodeNotFound ErrorCode = iota + 1 // #REF!
	CodeInvalid                       // #VALUE!
	CodeCycle                         // #CYCLE!
	CodeDiv0                          // #DIV/0!
	CodeSyntax                        // #ERROR!
)

var errorCodeNames = map[ErrorCode]string{
	CodeNotFound: "#REF!",
	CodeInvalid:  "#VALUE!",
	CodeCycle:    "#CYCLE!",
	CodeDiv0:     "#DIV/0!",
	CodeSyntax:   "#ERROR!",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return "#ERROR!"
}

// CellError reports a failure tied to one cell identifier. Err is one of
// the sentinel errors, Cause is an optional underlying failure.
type CellError struct {
	Code  ErrorCode
	ID    string
	Err   error
	Cause error
}

func (e *CellError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", e.Err, e.ID, e.Cause)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.ID)
}

func (e *CellError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func notFound(id string) error {
	return &CellError{Code: CodeNotFound, ID: id, Err: ErrCellNotFound}
}

func invalidCell(id string, cause error) error {
	return &CellError{Code: CodeInvalid, ID: id, Err: ErrInvalidCell, Cause: cause}
}

func cyclicReference(id string) error {
	return &CellError{Code: CodeCycle, ID: id, Err: ErrCyclicReference}
}

func divisionByZero(id string) error {
	return &CellError{Code: CodeDiv0, ID: id, Err: ErrDivisionByZero}
}

func syntaxError(body string, cause error) error {
	return &CellError{Code: CodeSyntax, ID: body, Err: ErrSyntax, Cause: cause}
}
