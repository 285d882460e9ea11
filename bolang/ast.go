package bolang

// Module is the parse result of one source unit.
type Module struct {
	Stmts []Stmt
}

// Stmt variants: ExprStmt, AssignStmt, LetStmt, ReturnStmt, LoopStmt, WhileStmt, IfStmt, BlockStmt.
type Stmt interface {
	stmt()
}

type ExprStmt struct {
	X Expr
}

// AssignStmt assigns Value to Target. Target is an AssignableExpr.
type AssignStmt struct {
	Target *AssignableExpr
	Value  Expr
}

type LetStmt struct {
	Name  string
	Value Expr
}

type ReturnStmt struct {
	Value Expr // nil for a bare return
}

type LoopStmt struct {
	Body *BlockStmt
}

type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
}

type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // nil without else
}

type BlockStmt struct {
	Stmts []Stmt
}

func (*ExprStmt) stmt()   {}
func (*AssignStmt) stmt() {}
func (*LetStmt) stmt()    {}
func (*ReturnStmt) stmt() {}
func (*LoopStmt) stmt()   {}
func (*WhileStmt) stmt()  {}
func (*IfStmt) stmt()     {}
func (*BlockStmt) stmt()  {}

// Expr variants: LiteralExpr, UnaryExpr, BinaryExpr, AssignableExpr, ArrayExpr.
type Expr interface {
	expr()
}

type LiteralExpr struct {
	Value Value
}

type UnaryExpr struct {
	Op Op
	X  Expr
}

type BinaryExpr struct {
	Op Op
	X  Expr
	Y  Expr
}

// AssignableExpr marks X as a valid assignment target.
type AssignableExpr struct {
	X Expr
}

type ArrayExpr struct {
	Elems []Expr
}

func (*LiteralExpr) expr()    {}
func (*UnaryExpr) expr()      {}
func (*BinaryExpr) expr()     {}
func (*AssignableExpr) expr() {}
func (*ArrayExpr) expr()      {}
