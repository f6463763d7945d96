// Package printer serializes an ast.Script to JSON or YAML, externally
// tagged (each node is {"type": "<NodeName>", ...fields}), for the
// goscript CLI's --parse mode.
package printer

import (
	"github.com/goccy/go-yaml"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/jsonvalue"
	"github.com/cwbudde/goscript/internal/token"
)

// ToJSON renders script as an externally-tagged JSON document.
func ToJSON(script *ast.Script) ([]byte, error) {
	return node(script).MarshalJSON()
}

// ToYAML renders script as the same externally-tagged tree, via YAML.
func ToYAML(script *ast.Script) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(node(script)))
}

func posValue(pos token.Position) *jsonvalue.Value {
	v := jsonvalue.NewObject()
	v.ObjectSet("line", jsonvalue.NewInt64(int64(pos.Line+1)))
	v.ObjectSet("col", jsonvalue.NewInt64(int64(pos.Column+1)))
	return v
}

func tagged(kind string, n ast.Node) *jsonvalue.Value {
	v := jsonvalue.NewObject()
	v.ObjectSet("type", jsonvalue.NewString(kind))
	v.ObjectSet("pos", posValue(n.Pos()))
	return v
}

func nodeList[T ast.Node](items []T) *jsonvalue.Value {
	arr := jsonvalue.NewArray()
	for _, it := range items {
		arr.ArrayAppend(node(it))
	}
	return arr
}

// node dispatches over every concrete ast.Node kind. Unknown node types
// (there should be none) fall back to a bare type tag.
func node(n ast.Node) *jsonvalue.Value {
	switch e := n.(type) {
	case *ast.Script:
		v := jsonvalue.NewObject()
		v.ObjectSet("type", jsonvalue.NewString("Script"))
		v.ObjectSet("body", node(e.Body))
		return v
	case *ast.Block:
		v := tagged("Block", e)
		v.ObjectSet("hoisted", nodeList(e.Hoisted))
		v.ObjectSet("body", nodeList(e.Body))
		return v

	case *ast.Identifier:
		v := tagged("Identifier", e)
		v.ObjectSet("name", jsonvalue.NewString(e.Value))
		return v
	case *ast.ThisExpr:
		return tagged("ThisExpr", e)
	case *ast.Literal:
		v := tagged("Literal", e)
		v.ObjectSet("kind", literalKindName(e.Kind))
		switch e.Kind {
		case ast.LitBoolean:
			v.ObjectSet("value", jsonvalue.NewBoolean(e.Bool))
		case ast.LitNumberInt:
			v.ObjectSet("value", jsonvalue.NewInt64(e.Int))
		case ast.LitNumberFloat:
			v.ObjectSet("value", jsonvalue.NewNumber(e.Float))
		case ast.LitString:
			v.ObjectSet("value", jsonvalue.NewString(e.Str))
		}
		return v
	case *ast.ArrayLiteral:
		v := tagged("ArrayLiteral", e)
		arr := jsonvalue.NewArray()
		for _, el := range e.Elements {
			if el == nil {
				arr.ArrayAppend(jsonvalue.NewNull())
				continue
			}
			arr.ArrayAppend(node(el))
		}
		v.ObjectSet("elements", arr)
		return v
	case *ast.ObjectLiteral:
		v := tagged("ObjectLiteral", e)
		arr := jsonvalue.NewArray()
		for _, p := range e.Properties {
			prop := jsonvalue.NewObject()
			prop.ObjectSet("key", node(p.Key))
			prop.ObjectSet("value", node(p.Value))
			arr.ArrayAppend(prop)
		}
		v.ObjectSet("properties", arr)
		return v
	case *ast.FunctionExpr:
		v := tagged("FunctionExpr", e)
		if e.Name != nil {
			v.ObjectSet("name", node(e.Name))
		} else {
			v.ObjectSet("name", jsonvalue.NewNull())
		}
		v.ObjectSet("params", nodeList(e.Params))
		v.ObjectSet("body", node(e.Body))
		return v
	case *ast.AssignmentExpr:
		v := tagged("AssignmentExpr", e)
		v.ObjectSet("op", jsonvalue.NewString(e.Op.String()))
		v.ObjectSet("target", node(e.Target))
		v.ObjectSet("value", node(e.Value))
		return v
	case *ast.BinaryExpr:
		v := tagged("BinaryExpr", e)
		v.ObjectSet("op", jsonvalue.NewString(e.Op.String()))
		v.ObjectSet("left", node(e.Left))
		v.ObjectSet("right", node(e.Right))
		return v
	case *ast.RelationalExpr:
		v := tagged("RelationalExpr", e)
		v.ObjectSet("op", jsonvalue.NewString(e.Op.String()))
		v.ObjectSet("left", node(e.Left))
		v.ObjectSet("right", node(e.Right))
		return v
	case *ast.UnaryExpr:
		v := tagged("UnaryExpr", e)
		v.ObjectSet("op", jsonvalue.NewString(e.Op.String()))
		v.ObjectSet("operand", node(e.Operand))
		return v
	case *ast.UpdateExpr:
		v := tagged("UpdateExpr", e)
		v.ObjectSet("op", jsonvalue.NewString(e.Op.String()))
		v.ObjectSet("prefix", jsonvalue.NewBoolean(e.Prefix))
		v.ObjectSet("target", node(e.Target))
		return v
	case *ast.NewExpr:
		v := tagged("NewExpr", e)
		v.ObjectSet("callee", node(e.Callee))
		v.ObjectSet("args", nodeList(e.Args))
		return v
	case *ast.MemberExpr:
		v := tagged("MemberExpr", e)
		v.ObjectSet("object", node(e.Object))
		v.ObjectSet("property", node(e.Property))
		v.ObjectSet("computed", jsonvalue.NewBoolean(e.Computed))
		return v
	case *ast.CallExpr:
		v := tagged("CallExpr", e)
		v.ObjectSet("callee", node(e.Callee))
		v.ObjectSet("args", nodeList(e.Args))
		return v
	case *ast.GroupingExpr:
		v := tagged("GroupingExpr", e)
		v.ObjectSet("inner", node(e.Inner))
		return v
	case *ast.TernaryExpr:
		v := tagged("TernaryExpr", e)
		v.ObjectSet("cond", node(e.Cond))
		v.ObjectSet("then", node(e.Then))
		v.ObjectSet("else", node(e.Else))
		return v

	case *ast.ExpressionStmt:
		v := tagged("ExpressionStmt", e)
		v.ObjectSet("expr", node(e.Expr))
		return v
	case *ast.EmptyStmt:
		return tagged("EmptyStmt", e)
	case *ast.IfStmt:
		v := tagged("IfStmt", e)
		v.ObjectSet("cond", node(e.Cond))
		v.ObjectSet("then", node(e.Then))
		if e.Else != nil {
			v.ObjectSet("else", node(e.Else))
		} else {
			v.ObjectSet("else", jsonvalue.NewNull())
		}
		return v
	case *ast.SwitchStmt:
		v := tagged("SwitchStmt", e)
		v.ObjectSet("discriminant", node(e.Discriminant))
		cases := jsonvalue.NewArray()
		for _, c := range e.Cases {
			cv := jsonvalue.NewObject()
			if c.Test != nil {
				cv.ObjectSet("test", node(c.Test))
			} else {
				cv.ObjectSet("test", jsonvalue.NewNull())
			}
			cv.ObjectSet("body", nodeList(c.Body))
			cases.ArrayAppend(cv)
		}
		v.ObjectSet("cases", cases)
		return v
	case *ast.TryStmt:
		v := tagged("TryStmt", e)
		v.ObjectSet("block", node(e.Block))
		if e.Catch != nil {
			cv := jsonvalue.NewObject()
			if e.Catch.Param != nil {
				cv.ObjectSet("param", node(e.Catch.Param))
			} else {
				cv.ObjectSet("param", jsonvalue.NewNull())
			}
			cv.ObjectSet("body", node(e.Catch.Body))
			v.ObjectSet("catch", cv)
		} else {
			v.ObjectSet("catch", jsonvalue.NewNull())
		}
		if e.Finally != nil {
			v.ObjectSet("finally", node(e.Finally))
		} else {
			v.ObjectSet("finally", jsonvalue.NewNull())
		}
		return v
	case *ast.DoWhileStmt:
		v := tagged("DoWhileStmt", e)
		v.ObjectSet("body", node(e.Body))
		v.ObjectSet("cond", node(e.Cond))
		return v
	case *ast.WhileStmt:
		v := tagged("WhileStmt", e)
		v.ObjectSet("cond", node(e.Cond))
		v.ObjectSet("body", node(e.Body))
		return v
	case *ast.ForStmt:
		v := tagged("ForStmt", e)
		if e.Init != nil {
			v.ObjectSet("init", node(e.Init))
		} else {
			v.ObjectSet("init", jsonvalue.NewNull())
		}
		if e.Cond != nil {
			v.ObjectSet("cond", node(e.Cond))
		} else {
			v.ObjectSet("cond", jsonvalue.NewNull())
		}
		if e.Update != nil {
			v.ObjectSet("update", node(e.Update))
		} else {
			v.ObjectSet("update", jsonvalue.NewNull())
		}
		v.ObjectSet("body", node(e.Body))
		return v
	case *ast.BreakStmt:
		return tagged("BreakStmt", e)
	case *ast.ContinueStmt:
		return tagged("ContinueStmt", e)
	case *ast.ReturnStmt:
		v := tagged("ReturnStmt", e)
		if e.Value != nil {
			v.ObjectSet("value", node(e.Value))
		} else {
			v.ObjectSet("value", jsonvalue.NewNull())
		}
		return v
	case *ast.ThrowStmt:
		v := tagged("ThrowStmt", e)
		v.ObjectSet("value", node(e.Value))
		return v

	case *ast.VarDecl:
		v := tagged("VarDecl", e)
		v.ObjectSet("declarators", declaratorList(e.Declarators))
		return v
	case *ast.LexicalDecl:
		v := tagged("LexicalDecl", e)
		v.ObjectSet("kind", jsonvalue.NewString(e.Kind.String()))
		v.ObjectSet("declarators", declaratorList(e.Declarators))
		return v
	case *ast.FunctionDecl:
		v := tagged("FunctionDecl", e)
		v.ObjectSet("name", node(e.Name))
		v.ObjectSet("params", nodeList(e.Params))
		v.ObjectSet("body", node(e.Body))
		return v

	default:
		v := jsonvalue.NewObject()
		v.ObjectSet("type", jsonvalue.NewString("Unknown"))
		return v
	}
}

func declaratorList(ds []*ast.Declarator) *jsonvalue.Value {
	arr := jsonvalue.NewArray()
	for _, d := range ds {
		dv := jsonvalue.NewObject()
		dv.ObjectSet("name", node(d.Name))
		if d.Init != nil {
			dv.ObjectSet("init", node(d.Init))
		} else {
			dv.ObjectSet("init", jsonvalue.NewNull())
		}
		arr.ArrayAppend(dv)
	}
	return arr
}

func literalKindName(k ast.LiteralKind) *jsonvalue.Value {
	switch k {
	case ast.LitBoolean:
		return jsonvalue.NewString("boolean")
	case ast.LitNumberInt:
		return jsonvalue.NewString("int")
	case ast.LitNumberFloat:
		return jsonvalue.NewString("float")
	case ast.LitString:
		return jsonvalue.NewString("string")
	case ast.LitNull:
		return jsonvalue.NewString("null")
	case ast.LitUndefined:
		return jsonvalue.NewString("undefined")
	default:
		return jsonvalue.NewString("?")
	}
}

// toYAMLValue converts a jsonvalue.Value tree into plain Go values
// go-yaml can encode, using yaml.MapSlice so object key order survives
// (plain maps would otherwise print sorted).
func toYAMLValue(v *jsonvalue.Value) interface{} {
	switch v.Kind() {
	case jsonvalue.KindUndefined, jsonvalue.KindNull:
		return nil
	case jsonvalue.KindBoolean:
		return v.BoolValue()
	case jsonvalue.KindInt64:
		return v.Int64Value()
	case jsonvalue.KindNumber:
		return v.NumberValue()
	case jsonvalue.KindString:
		return v.StringValue()
	case jsonvalue.KindArray:
		elems := v.ArrayElements()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			out[i] = toYAMLValue(e)
		}
		return out
	case jsonvalue.KindObject:
		keys := v.ObjectKeys()
		out := make(yaml.MapSlice, len(keys))
		for i, k := range keys {
			out[i] = yaml.MapItem{Key: k, Value: toYAMLValue(v.ObjectGet(k))}
		}
		return out
	default:
		return nil
	}
}
