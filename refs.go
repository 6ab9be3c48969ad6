package sheetcalc

import (
	"strings"
)

// References lists the cell identifiers resolving v would request, in
// order of first appearance, following the evaluator's mode. Literals
// and text have no references. In ModeCorrected a body that does not
// parse is reported as ErrSyntax.
func (e *Evaluator) References(v Value) ([]string, error) {
	body, ok := v.Body()
	if !ok {
		return nil, nil
	}
	var ids []string
	if e.mode == ModeCorrected {
		expr, err := parseCorrected(body)
		if err != nil {
			return nil, err
		}
		ids = expr.refs()
	} else {
		for _, term := range split(body, '+') {
			for _, red := range reductions(strings.TrimSpace(term)) {
				ids = append(ids, red.refs...)
			}
		}
	}

	seen := make(map[string]bool)
	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, id)
	}
	return refs, nil
}

// References lists the identifiers the formula stored in id mentions.
func (s *Sheet) References(id string) ([]string, error) {
	v, err := s.store.GetRaw(id)
	if err != nil {
		return nil, err
	}
	return s.eval.References(v)
}
