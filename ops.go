package sheetcalc

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type Fn func(*Env, *Command) error

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["set"] = doSet
	ops["get"] = doGet
	ops["print"] = doPrint
	ops["raw"] = doRaw
	ops["cells"] = doCells
	ops["refs"] = doRefs
}

// Env runs script commands against a sheet.
type Env struct {
	sheet *Sheet
	out   io.Writer
}

func NewEnv(sheet *Sheet) *Env {
	return &Env{
		sheet: sheet,
		out:   os.Stdout,
	}
}

func (e *Env) Sheet() *Sheet {
	return e.sheet
}

func (e *Env) SetOutput(w io.Writer) {
	e.out = w
}

// Exec runs one command. Errors are prefixed with the script line.
func (e *Env) Exec(c *Command) error {
	fn, ok := ops[c.Name]
	if !ok {
		return fmt.Errorf("line %d: %w: %s", c.Line, ErrUnknownCommand, c.Name)
	}
	if err := fn(e, c); err != nil {
		return fmt.Errorf("line %d: %s: %w", c.Line, c.Name, err)
	}
	return nil
}

// Eval runs every command read from r and stops at the first error.
func (e *Env) Eval(r io.Reader) error {
	parser := NewParser(r)
	for {
		c, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = e.Exec(c); err != nil {
			return err
		}
	}
}

func wantArgs(c *Command, n int, usage string) error {
	if len(c.Args) != n {
		return fmt.Errorf("%w: usage: %s %s", ErrSyntax, c.Name, usage)
	}
	return nil
}

func doSet(e *Env, c *Command) error {
	if len(c.Args) < 2 {
		return fmt.Errorf("%w: usage: set <id> <value>", ErrSyntax)
	}
	e.sheet.Set(c.Args[0], ParseValue(c.Tail(1)))
	return nil
}

func doGet(e *Env, c *Command) error {
	if err := wantArgs(c, 1, "<id>"); err != nil {
		return err
	}
	n, err := e.sheet.Get(c.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, n)
	return nil
}

func doPrint(e *Env, c *Command) error {
	if err := wantArgs(c, 1, "<id>"); err != nil {
		return err
	}
	n, err := e.sheet.Get(c.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s = %d\n", c.Args[0], n)
	return nil
}

func doRaw(e *Env, c *Command) error {
	if err := wantArgs(c, 1, "<id>"); err != nil {
		return err
	}
	v, err := e.sheet.Store().GetRaw(c.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, v)
	return nil
}

func doCells(e *Env, c *Command) error {
	if err := wantArgs(c, 0, ""); err != nil {
		return err
	}
	for _, entry := range e.sheet.Store().Cells() {
		fmt.Fprintf(e.out, "%s\t%s\t%v\n", entry.ID, entry.Value.Type(), entry.Value)
	}
	return nil
}

func doRefs(e *Env, c *Command) error {
	if err := wantArgs(c, 1, "<id>"); err != nil {
		return err
	}
	refs, err := e.sheet.References(c.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, strings.Join(refs, " "))
	return nil
}
