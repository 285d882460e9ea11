package dumps

import (
	"fmt"

	"github.com/reusee/bo/bolang"
	"github.com/samber/lo"
)

// Tree converts tokens, AST nodes and values into maps, slices and scalars.
func Tree(v any) any {
	switch v := v.(type) {

	case nil:
		return nil

	case []bolang.Token:
		return lo.Map(v, func(tok bolang.Token, _ int) any {
			return Tree(tok)
		})
	case bolang.Token:
		return map[string]any{
			"kind": v.Kind.String(),
			"text": v.String(),
			"pos":  v.Pos,
		}

	case *bolang.Module:
		return map[string]any{
			"kind":  "module",
			"stmts": stmts(v.Stmts),
		}

	case *bolang.ExprStmt:
		return map[string]any{
			"kind": "expr",
			"x":    Tree(v.X),
		}
	case *bolang.AssignStmt:
		return map[string]any{
			"kind":   "assign",
			"target": Tree(v.Target),
			"value":  Tree(v.Value),
		}
	case *bolang.LetStmt:
		return map[string]any{
			"kind":  "let",
			"name":  v.Name,
			"value": Tree(v.Value),
		}
	case *bolang.ReturnStmt:
		ret := map[string]any{
			"kind": "return",
		}
		if v.Value != nil {
			ret["value"] = Tree(v.Value)
		}
		return ret
	case *bolang.LoopStmt:
		return map[string]any{
			"kind": "loop",
			"body": Tree(v.Body),
		}
	case *bolang.WhileStmt:
		return map[string]any{
			"kind": "while",
			"cond": Tree(v.Cond),
			"body": Tree(v.Body),
		}
	case *bolang.IfStmt:
		ret := map[string]any{
			"kind": "if",
			"cond": Tree(v.Cond),
			"then": Tree(v.Then),
		}
		if v.Else != nil {
			ret["else"] = Tree(v.Else)
		}
		return ret
	case *bolang.BlockStmt:
		return map[string]any{
			"kind":  "block",
			"stmts": stmts(v.Stmts),
		}

	case *bolang.LiteralExpr:
		return map[string]any{
			"kind":  "literal",
			"type":  typeName(v.Value),
			"value": Tree(v.Value),
		}
	case *bolang.UnaryExpr:
		return map[string]any{
			"kind": "unary",
			"op":   v.Op.String(),
			"x":    Tree(v.X),
		}
	case *bolang.BinaryExpr:
		return map[string]any{
			"kind": "binary",
			"op":   v.Op.String(),
			"x":    Tree(v.X),
			"y":    Tree(v.Y),
		}
	case *bolang.AssignableExpr:
		return map[string]any{
			"kind": "assignable",
			"x":    Tree(v.X),
		}
	case *bolang.ArrayExpr:
		return map[string]any{
			"kind": "array",
			"elems": lo.Map(v.Elems, func(e bolang.Expr, _ int) any {
				return Tree(e)
			}),
		}

	case bolang.Int:
		return int64(v)
	case bolang.Float:
		return float64(v)
	case bolang.Bool:
		return bool(v)
	case bolang.String:
		return string(v)
	case bolang.Array:
		return lo.Map(v, func(e bolang.Value, _ int) any {
			return Tree(e)
		})
	case bolang.Dict:
		return lo.MapValues(v, func(e bolang.Value, _ string) any {
			return Tree(e)
		})
	case bolang.Function:
		return map[string]any{
			"function": int(v),
		}

	}

	panic(fmt.Errorf("unsupported node: %T", v))
}

func stmts(list []bolang.Stmt) []any {
	return lo.Map(list, func(s bolang.Stmt, _ int) any {
		return Tree(s)
	})
}

func typeName(v bolang.Value) string {
	switch v.(type) {
	case bolang.Int:
		return "int"
	case bolang.Float:
		return "float"
	case bolang.Bool:
		return "bool"
	case bolang.String:
		return "string"
	case bolang.Array:
		return "array"
	case bolang.Dict:
		return "dict"
	case bolang.Function:
		return "function"
	}
	return "unknown"
}
