package sheetcalc

import (
	"errors"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

type operator int

const (
	opAdd operator = iota
	opSub
	opMul
	opDiv
)

var operatorMap = map[string]operator{"+": opAdd, "-": opSub, "*": opMul, "/": opDiv}

func (o *operator) Capture(s []string) error {
	*o = operatorMap[s[0]]
	return nil
}

type sumExpr struct {
	Left  *productExpr `parser:"@@"`
	Right []*opProduct `parser:"( @@ )*"`
}

type opProduct struct {
	Operator operator     `parser:"@(\"+\" | \"-\")"`
	Product  *productExpr `parser:"@@"`
}

type productExpr struct {
	Left  *cellRef `parser:"@@"`
	Right []*opRef `parser:"( @@ )*"`
}

type opRef struct {
	Operator operator `parser:"@(\"*\" | \"/\")"`
	Ref      *cellRef `parser:"@@"`
}

type cellRef struct {
	ID string `parser:"@Ref"`
}

var correctedLexer = lexer.Must(lexer.Regexp(
	`(\s+)` +
		`|(?P<Ref>[^\s+\-*/]+)` +
		`|(?P<Punct>[+\-*/])`,
))

var correctedParser = participle.MustBuild(&sumExpr{}, participle.Lexer(correctedLexer))

// parseCorrected parses a formula body into a precedence tree. Operands
// are cell identifiers; numbers are identifiers too.
func parseCorrected(body string) (*sumExpr, error) {
	expr := &sumExpr{}
	if err := correctedParser.ParseString(body, expr); err != nil {
		return nil, syntaxError(body, err)
	}
	if expr.Left == nil {
		return nil, syntaxError(body, errors.New("empty formula"))
	}
	return expr, nil
}

func (e *sumExpr) refs() []string {
	ids := e.Left.refs()
	for _, rhs := range e.Right {
		ids = append(ids, rhs.Product.refs()...)
	}
	return ids
}

func (p *productExpr) refs() []string {
	ids := []string{p.Left.ID}
	for _, rhs := range p.Right {
		ids = append(ids, rhs.Ref.ID)
	}
	return ids
}

func (r *resolver) evalCorrected(body string) (int, error) {
	expr, err := parseCorrected(body)
	if err != nil {
		return 0, err
	}
	sum, err := r.evalProduct(expr.Left)
	if err != nil {
		return 0, err
	}
	for _, rhs := range expr.Right {
		n, err := r.evalProduct(rhs.Product)
		if err != nil {
			return 0, err
		}
		if rhs.Operator == opSub {
			sum -= n
		} else {
			sum += n
		}
	}
	return sum, nil
}

func (r *resolver) evalProduct(p *productExpr) (int, error) {
	acc, err := r.resolve(p.Left.ID)
	if err != nil {
		return 0, err
	}
	for _, rhs := range p.Right {
		n, err := r.resolve(rhs.Ref.ID)
		if err != nil {
			return 0, err
		}
		if rhs.Operator == opMul {
			acc *= n
			continue
		}
		if n == 0 {
			return 0, divisionByZero(rhs.Ref.ID)
		}
		acc /= n
	}
	return acc, nil
}
