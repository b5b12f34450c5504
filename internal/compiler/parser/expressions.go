package parser

import (
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

// --- Expression Parsing ---
//
// Precedence is encoded by call nesting, lowest first:
//
//	||  &&  == !=  < > <= >=  + -  * / %  prefix ! - ++ --  primary
//
// Every level is left-associative and yields an int wrapped to 32 bits.

// parseExpression evaluates one expression. An empty expression, where the
// current token already closes the construct, evaluates to 0.
func (p *Parser) parseExpression() (int, error) {
	if p.curTok.IsOperator(";") || p.curTok.IsOperator(")") {
		return 0, nil
	}
	return p.parseLogicalOr()
}

// parseBinary parses a left-associative chain of the given operators over
// operands read by next. Both operands are always evaluated.
func (p *Parser) parseBinary(next func() (int, error), apply func(op string, left, right int) (int, error), ops ...string) (int, error) {
	left, err := next()
	if err != nil {
		return 0, err
	}

	for p.curIsOneOf(ops...) {
		op := p.curTok.Literal
		p.nextToken()

		right, err := next()
		if err != nil {
			return 0, err
		}
		if left, err = apply(op, left, right); err != nil {
			return 0, err
		}
		left = symbols.WrapInt(left)
	}
	return left, nil
}

func (p *Parser) parseLogicalOr() (int, error) {
	return p.parseBinary(p.parseLogicalAnd, func(_ string, l, r int) (int, error) {
		return boolToInt(l != 0 || r != 0), nil
	}, "||")
}

func (p *Parser) parseLogicalAnd() (int, error) {
	return p.parseBinary(p.parseEquality, func(_ string, l, r int) (int, error) {
		return boolToInt(l != 0 && r != 0), nil
	}, "&&")
}

func (p *Parser) parseEquality() (int, error) {
	return p.parseBinary(p.parseComparison, func(op string, l, r int) (int, error) {
		if op == "==" {
			return boolToInt(l == r), nil
		}
		return boolToInt(l != r), nil
	}, "==", "!=")
}

func (p *Parser) parseComparison() (int, error) {
	return p.parseBinary(p.parseAdditive, func(op string, l, r int) (int, error) {
		switch op {
		case "<":
			return boolToInt(l < r), nil
		case ">":
			return boolToInt(l > r), nil
		case "<=":
			return boolToInt(l <= r), nil
		}
		return boolToInt(l >= r), nil
	}, "<", ">", "<=", ">=")
}

func (p *Parser) parseAdditive() (int, error) {
	return p.parseBinary(p.parseMultiplicative, func(op string, l, r int) (int, error) {
		if op == "+" {
			return l + r, nil
		}
		return l - r, nil
	}, "+", "-")
}

func (p *Parser) parseMultiplicative() (int, error) {
	return p.parseBinary(p.parseUnary, func(op string, l, r int) (int, error) {
		switch op {
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return 0, p.errorf("Division by zero")
			}
			return l / r, nil
		}
		if r == 0 {
			return 0, p.errorf("Modulo by zero")
		}
		return l % r, nil
	}, "*", "/", "%")
}

// parseUnary handles prefix operators. ++ and -- are consumed without
// effect.
func (p *Parser) parseUnary() (int, error) {
	switch {
	case p.curTok.IsOperator("!"):
		p.nextToken()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return boolToInt(v == 0), nil

	case p.curTok.IsOperator("-"):
		p.nextToken()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return symbols.WrapInt(-v), nil

	case p.curIsOneOf("++", "--"):
		p.nextToken()
		return p.parseUnary()
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (int, error) {
	var value int

	switch {
	case p.curTok.Type == token.TokenInteger:
		value = p.curTok.IntValue
		p.nextToken()

	case p.curTok.Type == token.TokenFloat:
		value = symbols.WrapInt(int(p.curTok.FloatValue))
		p.nextToken()

	case p.curTok.Type == token.TokenChar:
		value = p.curTok.IntValue
		p.nextToken()

	case p.curTok.Type == token.TokenIdent:
		identTok := p.curTok
		p.nextToken()

		if p.curTok.IsOperator("(") {
			if err := p.parseCall(identTok.Literal); err != nil {
				return 0, err
			}
			// No frames: the value is whatever the shared slot holds.
			value = p.s.ReturnValue
			break
		}

		if id, ok := p.s.Resolve(identTok.Literal); ok {
			value = p.s.Symbol(id).Load()
		} else {
			p.addWarning(identTok, "'%s' is not declared, using 0", identTok.Literal)
		}

	case p.curTok.IsOperator("("):
		p.nextToken()
		if p.curTok.IsEOF() {
			return 0, p.errorf("Unexpected EOF after '('")
		}
		v, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if err := p.expectOperator(")", "Expected ')'"); err != nil {
			return 0, err
		}
		value = v

	default:
		return 0, p.errorf("Expected expression")
	}

	// Postfix ++ and -- are consumed without effect.
	if p.curIsOneOf("++", "--") {
		p.nextToken()
	}
	return value, nil
}

// parseCall binds the argument list of a call to name. The current token
// is '('. Arguments go to the function's shared parameter slots in
// declaration order; extra arguments are evaluated and dropped, and
// parameters without an argument keep their previous value.
func (p *Parser) parseCall(name string) error {
	fid, ok := p.s.Function(name)
	if !ok {
		return p.errorf("Undefined function")
	}
	callTok := p.curTok
	p.nextToken() // Consume '('

	params := p.s.FunctionAt(fid).Params
	argc := 0
	for !p.curTok.IsOperator(")") {
		if p.curTok.IsEOF() {
			return p.errorf("Expected ')' in function call")
		}

		v, err := p.parseExpression()
		if err != nil {
			return err
		}
		if argc < len(params) {
			p.s.Symbol(params[argc]).Store(v)
		}
		argc++

		if p.curTok.IsOperator(",") {
			p.nextToken()
			continue
		}
		if !p.curTok.IsOperator(")") {
			return p.errorf("Expected ',' or ')' in argument list")
		}
	}
	p.nextToken() // Consume ')'

	if argc != len(params) {
		p.addWarning(callTok, "'%s' takes %d arguments, called with %d", name, len(params), argc)
	}
	p.logger.Debug("called function", "name", name, "args", argc)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
