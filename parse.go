package sheetcalc

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Command is one line of a sheet script, e.g. "set A3 =A1+A2".
type Command struct {
	Name string
	Args []string
	Rest string
	Line int
}

func (c *Command) String() string {
	if c.Rest == "" {
		return c.Name
	}
	return c.Name + " " + c.Rest
}

// Tail returns the raw text after the first n arguments. Formulas may
// contain spaces, so set takes its value from here instead of Args.
func (c *Command) Tail(n int) string {
	s := c.Rest
	for i := 0; i < n; i++ {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		s = s[end:]
	}
	return strings.TrimSpace(s)
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

type Parser struct {
	buf  *bufio.Reader
	line int
}

func (p *Parser) Line() int {
	return p.line
}

// Next returns the next command, skipping blank lines and '#' comments.
// It returns io.EOF once the input is exhausted.
func (p *Parser) Next() (*Command, error) {
	for {
		s, err := p.buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if s == "" && err == io.EOF {
			return nil, io.EOF
		}
		p.line++
		if c := ParseLine(s); c != nil {
			c.Line = p.line
			return c, nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
	}
}

func (p *Parser) Parse() ([]*Command, error) {
	var cmds []*Command
	for {
		c, err := p.Next()
		if err == io.EOF {
			return cmds, nil
		}
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
}

// ParseLine parses a single script line. It returns nil for blank lines
// and comments.
func ParseLine(s string) *Command {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '#' {
		return nil
	}
	name, rest := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		name, rest = s[:i], strings.TrimSpace(s[i:])
	}
	return &Command{
		Name: name,
		Args: strings.Fields(rest),
		Rest: rest,
	}
}
