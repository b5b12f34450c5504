package parser

import (
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

// --- Statement Parsing ---

func (p *Parser) parseStatement() error {
	switch {
	case p.curTok.IsTypeKeyword():
		return p.parseDeclaration()

	case p.curTok.Type == token.TokenIdent:
		if p.peekTok.IsOperator("(") {
			return p.parseCallStatement()
		}
		return p.parseAssignment(true)

	case p.curTok.Type == token.TokenReserved:
		switch p.curTok.Literal {
		case "if":
			return p.parseIfStatement()
		case "while":
			return p.parseWhileStatement()
		case "for":
			return p.parseForStatement()
		case "return":
			return p.parseReturnStatement()
		}
		return p.errorf("Unexpected '%s'", p.curTok.Literal)

	case p.curTok.IsOperator("{"):
		return p.parseBlock()

	case p.curTok.IsOperator(";"):
		p.nextToken()
		return nil
	}

	return p.errorf("Expected declaration, assignment, or statement")
}

// parseDeclaration handles
//
//	type name ;
//	type name = expr ;
//	type name ( params ) block
func (p *Parser) parseDeclaration() error {
	if !p.curTok.IsTypeKeyword() {
		return p.errorf("Expected type")
	}
	typ := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != token.TokenIdent {
		return p.errorf("Expected variable name")
	}
	nameTok := p.curTok
	name := nameTok.Literal
	p.nextToken()

	if p.curTok.IsOperator("(") {
		return p.parseFunctionDeclaration(typ, name)
	}

	value := 0
	if p.curTok.IsOperator("=") {
		p.nextToken()
		v, err := p.parseExpression()
		if err != nil {
			return err
		}
		value = v
	}
	if err := p.expectOperator(";", "Expected ';'"); err != nil {
		return err
	}

	if p.s.DeclaredHere(name) {
		p.addWarning(nameTok, "'%s' redeclared, shadowing the earlier declaration", name)
	}
	id := p.s.Declare(name, typ, value)
	p.logger.Debug("declared variable",
		"name", name, "type", typ, "value", p.s.Symbol(id).Load(), "local", p.s.InFunction())
	return nil
}

// parseFunctionDeclaration parses the parameter list and body. The function
// is registered before its body so the body can call it by name.
func (p *Parser) parseFunctionDeclaration(returnType, name string) error {
	p.nextToken() // Consume '('

	var params []symbols.Param
	for !p.curTok.IsOperator(")") {
		if !p.curTok.IsTypeKeyword() {
			break
		}
		paramType := p.curTok.Literal
		p.nextToken()

		if p.curTok.Type != token.TokenIdent {
			return p.errorf("Expected parameter name")
		}
		params = append(params, symbols.Param{Type: paramType, Name: p.curTok.Literal})
		p.nextToken()

		if p.curTok.IsOperator(",") {
			p.nextToken()
		}
	}
	if err := p.expectOperator(")", "Expected ')'"); err != nil {
		return err
	}

	fid := p.s.DeclareFunction(name, returnType, params)
	p.logger.Debug("registered function", "name", name, "return", returnType, "params", len(params))

	restore := p.s.Enter(fid)
	defer restore()
	return p.parseBlock()
}

// parseAssignment handles name op expr, with op one of = += -= *= /= %=.
// The right-hand side is evaluated before the target is resolved.
func (p *Parser) parseAssignment(terminated bool) error {
	name := p.curTok.Literal
	p.nextToken()

	if !p.curTok.IsAssignOp() {
		return p.errorf("Expected assignment operator")
	}
	op := p.curTok.Literal
	p.nextToken()

	value, err := p.parseExpression()
	if err != nil {
		return err
	}

	id, ok := p.s.Resolve(name)
	if !ok {
		return p.errorf("Variable not declared")
	}

	sym := p.s.Symbol(id)
	current := sym.Load()
	switch op {
	case "=":
		sym.Store(value)
	case "+=":
		sym.Store(current + value)
	case "-=":
		sym.Store(current - value)
	case "*=":
		sym.Store(current * value)
	case "/=":
		if value == 0 {
			return p.errorf("Divide by zero")
		}
		sym.Store(current / value)
	case "%=":
		if value == 0 {
			return p.errorf("Modulo by zero")
		}
		sym.Store(current % value)
	}

	if terminated {
		return p.expectOperator(";", "Expected ';'")
	}
	return nil
}

// parseCallStatement handles name(args) with an optional ';'. A call
// statement clears the return slot.
func (p *Parser) parseCallStatement() error {
	name := p.curTok.Literal
	p.nextToken()

	if err := p.parseCall(name); err != nil {
		return err
	}
	p.s.ReturnValue = 0

	if p.curTok.IsOperator(";") {
		p.nextToken()
	}
	return nil
}

// parseBlock handles { statement* }.
func (p *Parser) parseBlock() error {
	if err := p.expectOperator("{", "Expected '{'"); err != nil {
		return err
	}

	for !p.curTok.IsOperator("}") {
		if p.curTok.IsEOF() {
			return p.errorf("Unexpected EOF in block")
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	p.nextToken() // Consume '}'
	return nil
}

// --- Control Flow ---
//
// Guarded statements are evaluated exactly once, whatever the condition:
// both branches of an if run, and loop bodies never repeat.

func (p *Parser) parseIfStatement() error {
	line := p.curTok.Line
	p.nextToken() // Consume 'if'

	if err := p.expectOperator("(", "Expected '(' after if"); err != nil {
		return err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := p.expectOperator(")", "Expected ')' after if condition"); err != nil {
		return err
	}
	p.logger.Debug("evaluated condition", "stmt", "if", "line", line, "value", cond)

	if err := p.parseStatement(); err != nil {
		return err
	}

	if p.curTok.IsReserved("else") {
		p.nextToken()
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseWhileStatement() error {
	line := p.curTok.Line
	p.nextToken() // Consume 'while'

	if err := p.expectOperator("(", "Expected '(' after while"); err != nil {
		return err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := p.expectOperator(")", "Expected ')' after while condition"); err != nil {
		return err
	}
	p.logger.Debug("evaluated condition", "stmt", "while", "line", line, "value", cond)

	return p.parseStatement()
}

// parseForStatement handles for (init; cond; step) statement. init is a
// declaration, an assignment, an expression or empty; step is an
// assignment, an expression or empty.
func (p *Parser) parseForStatement() error {
	line := p.curTok.Line
	p.nextToken() // Consume 'for'

	if err := p.expectOperator("(", "Expected '(' after for"); err != nil {
		return err
	}

	switch {
	case p.curTok.IsTypeKeyword():
		if err := p.parseDeclaration(); err != nil {
			return err
		}
	case p.curTok.Type == token.TokenIdent && p.peekTok.IsAssignOp():
		if err := p.parseAssignment(true); err != nil {
			return err
		}
	case p.curTok.Type == token.TokenIdent:
		if _, err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.expectOperator(";", "Expected ';' after initialization"); err != nil {
			return err
		}
	case p.curTok.IsOperator(";"):
		p.nextToken()
	default:
		return p.errorf("Invalid for loop initialization")
	}

	cond := 0
	if !p.curTok.IsOperator(";") {
		v, err := p.parseExpression()
		if err != nil {
			return err
		}
		cond = v
	}
	if err := p.expectOperator(";", "Expected ';' after for condition"); err != nil {
		return err
	}

	switch {
	case p.curTok.Type == token.TokenIdent && p.peekTok.IsAssignOp():
		if err := p.parseAssignment(false); err != nil {
			return err
		}
	case !p.curTok.IsOperator(")"):
		if _, err := p.parseExpression(); err != nil {
			return err
		}
	}
	if err := p.expectOperator(")", "Expected ')' in for loop"); err != nil {
		return err
	}
	p.logger.Debug("evaluated condition", "stmt", "for", "line", line, "value", cond)

	return p.parseStatement()
}

func (p *Parser) parseReturnStatement() error {
	p.nextToken() // Consume 'return'

	if !p.curTok.IsOperator(";") {
		v, err := p.parseExpression()
		if err != nil {
			return err
		}
		p.s.ReturnValue = v
	}
	return p.expectOperator(";", "Expected ';' after return")
}
