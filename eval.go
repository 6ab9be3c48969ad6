package sheetcalc

import (
	"log"
	"strings"
)

// Mode selects how a formula body is evaluated.
type Mode int

const (
	// ModeReference splits the body on '+' and reduces each term with the
	// multiply, divide and subtract reducers. A term holding both '*' and
	// '/' contributes both results, and subtraction is seeded at 1.
	ModeReference Mode = iota
	// ModeCorrected evaluates with the usual precedence and seeds.
	ModeCorrected
)

func (m Mode) String() string {
	switch m {
	case ModeReference:
		return "reference"
	case ModeCorrected:
		return "corrected"
	}
	return "unknown"
}

type Option func(*Evaluator)

// WithCycleDetection makes Resolve fail with ErrCyclicReference when a
// cell is reached again while it is still being evaluated. Without it a
// self-referencing formula recurses until the goroutine stack is exhausted.
func WithCycleDetection(on bool) Option {
	return func(e *Evaluator) {
		e.detectCycles = on
	}
}

func WithMode(m Mode) Option {
	return func(e *Evaluator) {
		e.mode = m
	}
}

// WithTrace logs every resolve step to l.
func WithTrace(l *log.Logger) Option {
	return func(e *Evaluator) {
		e.trace = l
	}
}

// Evaluator resolves cells of a Store to integers. Nothing is cached: a
// reference appearing twice is evaluated twice.
type Evaluator struct {
	store        *Store
	mode         Mode
	detectCycles bool
	trace        *log.Logger
}

func NewEvaluator(store *Store, opts ...Option) *Evaluator {
	e := &Evaluator{
		store: store,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Mode() Mode {
	return e.mode
}

// Resolve returns the integer value of the cell id. The first error met
// during the descent is returned as is.
func (e *Evaluator) Resolve(id string) (int, error) {
	r := &resolver{Evaluator: e}
	if e.detectCycles {
		r.visiting = make(map[string]bool)
	}
	return r.resolve(id)
}

// resolver holds the state of one top-level Resolve call.
type resolver struct {
	*Evaluator
	visiting map[string]bool
	depth    int
}

func (r *resolver) resolve(id string) (int, error) {
	if r.trace != nil {
		r.trace.Printf("%*sresolve %q", r.depth*2, "", id)
	}
	v, err := r.store.GetRaw(id)
	if err != nil {
		return 0, invalidCell(id, err)
	}
	if i, ok := v.Int(); ok {
		return i, nil
	}
	body, ok := v.Body()
	if !ok {
		return 0, invalidCell(id, nil)
	}

	if r.visiting != nil {
		if r.visiting[id] {
			return 0, cyclicReference(id)
		}
		r.visiting[id] = true
		defer delete(r.visiting, id)
	}
	r.depth++
	defer func() { r.depth-- }()

	if r.mode == ModeCorrected {
		return r.evalCorrected(body)
	}
	return r.evalFormula(body)
}

func (r *resolver) evalFormula(body string) (int, error) {
	sum := 0
	for _, term := range split(body, '+') {
		for _, red := range reductions(strings.TrimSpace(term)) {
			n, err := r.reduce(red)
			if err != nil {
				return 0, err
			}
			sum += n
		}
	}
	return sum, nil
}

// reduction is one contribution of a term to the sum: the operator whose
// reducer applies and the trimmed identifiers it resolves. op is 0 for a
// plain reference.
type reduction struct {
	op   byte
	refs []string
}

// reductions decides what a term adds to the sum. '*' and '/' are checked
// independently, so a term holding both contributes twice; the plain
// reference only applies to a term with none of "*/-".
func reductions(term string) []reduction {
	var rs []reduction
	if strings.ContainsRune(term, '*') {
		rs = append(rs, reduction{op: '*', refs: pieces(term, '*')})
	}
	if strings.ContainsRune(term, '/') {
		rs = append(rs, reduction{op: '/', refs: pieces(term, '/')})
	}
	if strings.ContainsRune(term, '-') {
		rs = append(rs, reduction{op: '-', refs: pieces(term, '-')})
	} else if !strings.ContainsAny(term, "*/") {
		rs = append(rs, reduction{refs: []string{term}})
	}
	return rs
}

func (r *resolver) reduce(red reduction) (int, error) {
	switch red.op {
	case '*':
		return r.product(red.refs)
	case '/':
		return r.quotient(red.refs)
	case '-':
		return r.difference(red.refs)
	}
	return r.resolve(red.refs[0])
}

func (r *resolver) product(refs []string) (int, error) {
	p := 1
	for _, ref := range refs {
		n, err := r.resolve(ref)
		if err != nil {
			return 0, err
		}
		p *= n
	}
	return p, nil
}

// quotient seeds with the first operand and truncates on every step.
func (r *resolver) quotient(refs []string) (int, error) {
	var q int
	for i, ref := range refs {
		n, err := r.resolve(ref)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			q = n
			continue
		}
		if n == 0 {
			return 0, divisionByZero(ref)
		}
		q /= n
	}
	return q, nil
}

// difference is seeded at 1, not at the first operand.
func (r *resolver) difference(refs []string) (int, error) {
	d := 1
	for _, ref := range refs {
		n, err := r.resolve(ref)
		if err != nil {
			return 0, err
		}
		d -= n
	}
	return d, nil
}

// pieces splits a term around sep and trims every piece.
func pieces(term string, sep byte) []string {
	ps := split(term, sep)
	for i, p := range ps {
		ps[i] = strings.TrimSpace(p)
	}
	return ps
}

// split cuts s around sep. When sep occurs at least once, trailing empty
// pieces are dropped, so "A1+" is one piece and "+" is none.
func split(s string, sep byte) []string {
	pieces := strings.Split(s, string(sep))
	if len(pieces) == 1 {
		return pieces
	}
	for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	return pieces
}
