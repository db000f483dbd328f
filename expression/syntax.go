package expression

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Knetic/govaluate"
)

// The expression language is plain arithmetic:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/" | "%") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | name | name "(" sum { "," sum } ")" | "(" sum ")"
//
// Unary minus binds weaker than exponentiation, and exponentiation groups to
// the right: -x^2 = -(x^2), 2^3^2 = 2^(3^2). govaluate does it the other way
// round in both cases, so normalize hands it a fully parenthesized rewrite.

type tokKind int8

const (
	tokEOF tokKind = iota
	tokNumber
	tokName
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokKind
	val  string
	num  float64
	pos  int
}

func (t token) is(kind tokKind, ops string) bool {
	return t.kind == kind && (ops == "" || strings.Contains(ops, t.val))
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q at position %d", t.val, t.pos)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// scanNumber returns the end of the numeric literal starting at i:
// digits, an optional fraction and an optional exponent.
func scanNumber(text string, i int) int {
	j := i
	for j < len(text) && isDigit(text[j]) {
		j++
	}
	if j < len(text) && text[j] == '.' {
		j++
		for j < len(text) && isDigit(text[j]) {
			j++
		}
	}
	if j < len(text) && (text[j] == 'e' || text[j] == 'E') {
		k := j + 1
		if k < len(text) && (text[k] == '+' || text[k] == '-') {
			k++
		}
		if k < len(text) && isDigit(text[k]) {
			for k < len(text) && isDigit(text[k]) {
				k++
			}
			j = k
		}
	}
	return j
}

func tokenize(text string) ([]token, error) {
	var toks []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			j := scanNumber(text, i)
			v, err := strconv.ParseFloat(text[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q at position %d", text[i:j], i)
			}
			toks = append(toks, token{kind: tokNumber, val: text[i:j], num: v, pos: i})
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j])) {
				j++
			}
			toks = append(toks, token{kind: tokName, val: text[i:j], pos: i})
			i = j
		case c == '*' && i+1 < len(text) && text[i+1] == '*':
			toks = append(toks, token{kind: tokOp, val: "^", pos: i})
			i += 2
		case strings.IndexByte("+-*/%^", c) >= 0:
			toks = append(toks, token{kind: tokOp, val: text[i : i+1], pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, val: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, val: ")", pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, val: ",", pos: i})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(text[i:])
			return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(text)}), nil
}

type parser struct {
	toks []token
	at   int
}

func (p *parser) peek() token {
	return p.toks[p.at]
}

func (p *parser) next() token {
	t := p.toks[p.at]
	if t.kind != tokEOF {
		p.at++
	}
	return t
}

func (p *parser) expect(kind tokKind, what string) error {
	if t := p.next(); t.kind != kind {
		return fmt.Errorf("expected %s, found %v", what, t)
	}
	return nil
}

// normalize checks text against the expression grammar and rewrites it
// into govaluate syntax with every operation parenthesized.
func normalize(text string) (string, error) {
	toks, err := tokenize(text)
	if err != nil {
		return "", err
	}
	p := &parser{toks: toks}
	out, err := p.parseSum()
	if err != nil {
		return "", err
	}
	if t := p.peek(); t.kind != tokEOF {
		return "", fmt.Errorf("unexpected %v", t)
	}
	return out, nil
}

func (p *parser) parseSum() (string, error) {
	left, err := p.parseProduct()
	if err != nil {
		return "", err
	}
	for p.peek().is(tokOp, "+-") {
		op := p.next()
		right, err := p.parseProduct()
		if err != nil {
			return "", err
		}
		left = "(" + left + " " + op.val + " " + right + ")"
	}
	return left, nil
}

func (p *parser) parseProduct() (string, error) {
	left, err := p.parseUnary()
	if err != nil {
		return "", err
	}
	for p.peek().is(tokOp, "*/%") {
		op := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return "", err
		}
		left = "(" + left + " " + op.val + " " + right + ")"
	}
	return left, nil
}

func (p *parser) parseUnary() (string, error) {
	if !p.peek().is(tokOp, "+-") {
		return p.parsePower()
	}
	op := p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return "", err
	}
	if op.val == "-" {
		return "(-" + operand + ")", nil
	}
	return operand, nil
}

func (p *parser) parsePower() (string, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return "", err
	}
	if !p.peek().is(tokOp, "^") {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return "", err
	}
	return "(" + base + " ** " + exp + ")", nil
}

func (p *parser) parsePrimary() (string, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return strconv.FormatFloat(t.num, 'f', -1, 64), nil
	case tokName:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		if _, ok := functions[t.val]; ok {
			return "", fmt.Errorf("function %s at position %d needs arguments", t.val, t.pos)
		}
		return "[" + t.val + "]", nil
	case tokLParen:
		inner, err := p.parseSum()
		if err != nil {
			return "", err
		}
		if err := p.expect(tokRParen, ")"); err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	}
	return "", fmt.Errorf("unexpected %v", t)
}

func (p *parser) parseCall(name token) (string, error) {
	f, ok := functions[name.val]
	if !ok {
		return "", fmt.Errorf("unknown function %s at position %d", name.val, name.pos)
	}
	p.next() // '('
	var args []string
	for {
		arg, err := p.parseSum()
		if err != nil {
			return "", err
		}
		args = append(args, arg)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRParen, ")"); err != nil {
		return "", err
	}
	if len(args) != f.arity {
		return "", fmt.Errorf("function %s takes %d argument(s), got %d", name.val, f.arity, len(args))
	}
	return name.val + "(" + strings.Join(args, ", ") + ")", nil
}

// checkTokens makes sure govaluate read nothing but arithmetic.
func checkTokens(parsed *govaluate.EvaluableExpression) error {
	for _, tok := range parsed.Tokens() {
		switch tok.Kind {
		case govaluate.NUMERIC, govaluate.VARIABLE, govaluate.FUNCTION,
			govaluate.CLAUSE, govaluate.CLAUSE_CLOSE, govaluate.SEPARATOR:
			continue
		case govaluate.MODIFIER:
			if op, ok := tok.Value.(string); ok && isArithmetic(op) {
				continue
			}
		case govaluate.PREFIX:
			if op, ok := tok.Value.(string); ok && op == "-" {
				continue
			}
		}
		return fmt.Errorf("not an arithmetic token: %v", tok.Value)
	}
	return nil
}

func isArithmetic(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%", "**":
		return true
	}
	return false
}
