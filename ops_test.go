package sheetcalc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.sheet")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no scripts in testdir")
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		env := NewEnv(NewSheet())
		env.out = &buf
		err = env.Eval(f)
		f.Close()
		base := fn[:len(fn)-len(".sheet")]
		if err != nil {
			b, err2 := os.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Errorf("%s: %v", fn, err)
			}
			continue
		}
		if _, err := os.Stat(base + ".err"); err == nil {
			t.Errorf("%s: want error but got none", fn)
			continue
		}
		got := buf.String()
		b, err := os.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}

func TestExecUnknownCommand(t *testing.T) {
	env := NewEnv(NewSheet())
	err := env.Exec(&Command{Name: "sum", Line: 7})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("want ErrUnknownCommand but got %v", err)
	}
	if want := "line 7: unknown command: sum"; err.Error() != want {
		t.Errorf("want %q but got %q", want, err.Error())
	}
}

func TestExecUsage(t *testing.T) {
	env := NewEnv(NewSheet())
	env.out = &bytes.Buffer{}
	for _, line := range []string{"set A1", "get", "get A1 A2", "print", "raw", "cells A1", "refs"} {
		t.Logf("%q", line)
		err := env.Exec(ParseLine(line))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("want ErrSyntax for %q but got %v", line, err)
		}
	}
}

func TestExecKeepsGoingAfterError(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(NewSheet())
	env.out = &buf
	for _, line := range []string{"set A1 1", "get B1", "get A1"} {
		env.Exec(ParseLine(line))
	}
	if diff := cmp.Diff("1\n", buf.String()); diff != "" {
		t.Error(diff)
	}
}
