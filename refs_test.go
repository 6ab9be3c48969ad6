package sheetcalc

import (
	"bytes"
	"errors"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReferences(t *testing.T) {
	tests := []struct {
		value Value
		want  []string
	}{
		{value: Formula("=A1+A2"), want: []string{"A1", "A2"}},
		{value: Formula("=A1+A1"), want: []string{"A1"}},
		{value: Formula("=D1 - D1"), want: []string{"D1"}},
		{value: Formula("=M*N/K"), want: []string{"M", "N/K", "M*N", "K"}},
		{value: Formula("=E1*E2/E3"), want: []string{"E1", "E2/E3", "E1*E2", "E3"}},
		{value: Formula("=A1*B1-A1"), want: []string{"A1", "B1-A1", "A1*B1"}},
		{value: Formula("=1+A1"), want: []string{"1", "A1"}},
		{value: Formula("=my cell+A1"), want: []string{"my cell", "A1"}},
		{value: Formula("= my cell * 2 "), want: []string{"my cell", "2"}},
		{value: Formula("=+A1"), want: []string{"", "A1"}},
		{value: Formula("=A1+"), want: []string{"A1"}},
		{value: Formula("=+"), want: []string{}},
		{value: Formula("A1+A2"), want: nil},
		{value: Literal(13), want: nil},
		{value: Text("=A1"), want: nil},
	}
	eval := NewEvaluator(NewStore())
	for _, test := range tests {
		t.Logf("%v", test.value)
		got, err := eval.References(test.value)
		if err != nil {
			t.Errorf("%v: %v", test.value, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%v: %s", test.value, diff)
		}
	}
}

func TestReferencesCorrected(t *testing.T) {
	tests := []struct {
		formula string
		want    []string
		err     error
	}{
		{formula: "=M*N/K", want: []string{"M", "N", "K"}},
		{formula: "=1+A1*A1", want: []string{"1", "A1"}},
		{formula: "=D1 - D1", want: []string{"D1"}},
		{formula: "=A1+", err: ErrSyntax},
		{formula: "=my cell+A1", err: ErrSyntax},
	}
	eval := NewEvaluator(NewStore(), WithMode(ModeCorrected))
	for _, test := range tests {
		t.Logf("%q", test.formula)
		got, err := eval.References(Formula(test.formula))
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("want %v for %q but got %v", test.err, test.formula, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", test.formula, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.formula, diff)
		}
	}
}

// Every identifier References reports must be one the evaluator reads,
// and the other way round.
func TestReferencesMatchResolve(t *testing.T) {
	formulas := []string{
		"=A1+A2",
		"=M*N/K",
		"=A1*B1-A1",
		"=1+A1",
		"=my cell+A1",
		"=A1/B1/C1+D1-E1",
		"=+A1",
		"=A1 + A1 * A1",
	}
	for _, mode := range []Mode{ModeReference, ModeCorrected} {
		for _, formula := range formulas {
			t.Logf("%s mode: %q", mode, formula)
			s := NewSheet(WithMode(mode))
			refs, err := s.Evaluator().References(Formula(formula))
			if err != nil {
				if mode == ModeCorrected && errors.Is(err, ErrSyntax) {
					continue
				}
				t.Errorf("%q: %v", formula, err)
				continue
			}
			for _, id := range refs {
				s.SetInt(id, 1)
			}
			s.SetFormula("result", formula)

			var buf bytes.Buffer
			traced := NewSheet(WithMode(mode), WithTrace(log.New(&buf, "", 0)))
			for _, entry := range s.Store().Cells() {
				traced.Set(entry.ID, entry.Value)
			}
			if _, err := traced.Get("result"); err != nil {
				t.Errorf("%s mode: %q: %v", mode, formula, err)
				continue
			}
			if diff := cmp.Diff(refs, resolvedIDs(t, buf.String())); diff != "" {
				t.Errorf("%s mode: %q: %s", mode, formula, diff)
			}
		}
	}
}

// resolvedIDs collects the ids in a trace below the top-level cell, in
// order of first appearance.
func resolvedIDs(t *testing.T, trace string) []string {
	t.Helper()
	seen := make(map[string]bool)
	ids := []string{}
	for _, line := range strings.Split(strings.TrimSpace(trace), "\n") {
		if !strings.HasPrefix(line, "  ") {
			continue
		}
		id, err := strconv.Unquote(strings.TrimPrefix(strings.TrimSpace(line), "resolve "))
		if err != nil {
			t.Fatal(err)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
