package bolang

const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth bounds block nesting, DefaultMaxDepth if not positive
	MaxDepth int
}

type parser struct {
	tokens   []Token
	current  int
	depth    int
	maxDepth int
	err      *Error
}

// Parse builds a Module from tokens. On failure it returns the first error only.
func Parse(tokens []Token) (*Module, error) {
	return Options{}.Parse(tokens)
}

func (o Options) Parse(tokens []Token) (*Module, error) {
	p := &parser{
		tokens:   tokens,
		maxDepth: o.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	module := new(Module)
	for !p.atEnd() && p.err == nil {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		module.Stmts = append(module.Stmts, stmt)
	}
	if p.err != nil {
		return nil, p.err
	}
	return module, nil
}

func (p *parser) parseStmt() (Stmt, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.failAt(p.previousPos(), "Expected statement")
	}

	var stmt Stmt
	var err error
	if tok.Kind == TokenKeyword {
		switch tok.Keyword {
		case KeywordLet:
			stmt, err = p.parseLet()
		case KeywordReturn:
			stmt, err = p.parseReturn()
		case KeywordLoop:
			stmt, err = p.parseLoop()
		case KeywordWhile:
			stmt, err = p.parseWhile()
		case KeywordIf:
			stmt, err = p.parseIf()
		default:
			return nil, p.failAt(tok.Pos, "Unsupported keyword")
		}
	} else {
		var x Expr
		x, err = p.parseExpr()
		stmt = &ExprStmt{
			X: x,
		}
	}
	if err != nil {
		return nil, err
	}

	if !p.match(OpSemicolon) {
		return nil, p.failAt(p.previousPos(), "Expected semicolon")
	}
	return stmt, nil
}

// let name = expr
func (p *parser) parseLet() (*LetStmt, error) {
	p.current++
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenIdentifier {
		return nil, p.failHere("Expected identifier")
	}
	p.current++
	if !p.match(OpEqual) {
		return nil, p.failHere("Expected equals sign")
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &LetStmt{
		Name:  tok.Text,
		Value: value,
	}, nil
}

// return; or return expr
func (p *parser) parseReturn() (*ReturnStmt, error) {
	p.current++
	if p.check(OpSemicolon) {
		return &ReturnStmt{}, nil
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{
		Value: value,
	}, nil
}

// loop { }
func (p *parser) parseLoop() (*LoopStmt, error) {
	p.current++
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &LoopStmt{
		Body: body,
	}, nil
}

// while cond { }
func (p *parser) parseWhile() (*WhileStmt, error) {
	p.current++
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{
		Cond: cond,
		Body: body,
	}, nil
}

// if cond { } else { }
func (p *parser) parseIf() (*IfStmt, error) {
	p.current++
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{
		Cond: cond,
		Then: then,
	}
	if tok, ok := p.peek(); ok && tok.IsKeyword(KeywordElse) {
		p.current++
		stmt.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) parseBlock() (*BlockStmt, error) {
	open, ok := p.peek()
	if !ok || !open.IsOp(OpLeftBrace) {
		return nil, p.failHere("Expected block")
	}
	p.current++

	p.depth++
	defer func() {
		p.depth--
	}()
	if p.depth > p.maxDepth {
		return nil, p.failAt(open.Pos, "Nesting too deep")
	}

	block := new(BlockStmt)
	for {
		if p.atEnd() {
			return nil, p.failAt(open.Pos, "Unclosed block")
		}
		if p.match(OpRightBrace) {
			return block, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
}

// Only literals are expressions for now. Operator precedence goes here.
func (p *parser) parseExpr() (Expr, error) {
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenLiteral {
		return nil, p.failHere("Expected literal")
	}
	p.current++
	return &LiteralExpr{
		Value: tok.Value,
	}, nil
}

func (p *parser) atEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.current], true
}

func (p *parser) check(op Op) bool {
	tok, ok := p.peek()
	return ok && tok.IsOp(op)
}

func (p *parser) match(op Op) bool {
	if !p.check(op) {
		return false
	}
	p.current++
	return true
}

// previousPos is the position of the last consumed token.
func (p *parser) previousPos() int {
	if p.current == 0 || len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[min(p.current, len(p.tokens))-1].Pos
}

// failHere reports at the current token, or at the last consumed one at end of input.
func (p *parser) failHere(message string) error {
	if tok, ok := p.peek(); ok {
		return p.failAt(tok.Pos, message)
	}
	return p.failAt(p.previousPos(), message)
}

// failAt records the first error of the pass. Later failures return it unchanged.
func (p *parser) failAt(pos int, message string) error {
	if p.err != nil {
		return p.err
	}
	p.err = &Error{
		Message: message,
		Pos:     pos,
	}
	return p.err
}
