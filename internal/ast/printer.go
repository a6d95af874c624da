package ast

import (
	"fmt"
	"strings"
)

// Print returns a tree-like string representation of the AST for debugging
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Program:
		sb.WriteString(prefix + "Program\n")
		for _, cls := range n.Classes {
			printNode(sb, cls, indent+1)
		}

	case *ClassDecl:
		if n.Super != "" {
			sb.WriteString(fmt.Sprintf("%sClass: %s extends %s\n", prefix, n.Name, n.Super))
		} else {
			sb.WriteString(fmt.Sprintf("%sClass: %s\n", prefix, n.Name))
		}
		if len(n.Fields) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Fields:\n", prefix))
			for _, f := range n.Fields {
				printNode(sb, f, indent+2)
			}
		}
		if len(n.Methods) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Methods:\n", prefix))
			for _, m := range n.Methods {
				printNode(sb, m, indent+2)
			}
		}

	case *MethodDecl:
		modifiers := ""
		if n.IsMain {
			modifiers = " (static)"
		}
		sb.WriteString(fmt.Sprintf("%sMethod: %s%s\n", prefix, n.Name, modifiers))
		if len(n.Params) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Params:\n", prefix))
			for _, p := range n.Params {
				printNode(sb, p, indent+2)
			}
		} else {
			sb.WriteString(fmt.Sprintf("%s  Params: none\n", prefix))
		}
		if n.ReturnType != nil {
			sb.WriteString(fmt.Sprintf("%s  Returns: %s\n", prefix, n.ReturnType))
		}
		if n.Body != nil {
			sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
			printNode(sb, n.Body, indent+2)
		}

	case *Param:
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", prefix, n.Name, n.Type))

	case *VarDecl:
		sb.WriteString(fmt.Sprintf("%sVarDecl: %s\n", prefix, n.Type))
		for _, d := range n.Declarators {
			printNode(sb, d, indent+1)
		}

	case *Declarator:
		sb.WriteString(fmt.Sprintf("%s%s\n", prefix, n.Name))
		if n.Init != nil {
			printNode(sb, n.Init, indent+1)
		}

	case *Block:
		sb.WriteString(prefix + "Block\n")
		for _, stmt := range n.Statements {
			printNode(sb, stmt, indent+1)
		}

	case *ExprStmt:
		sb.WriteString(fmt.Sprintf("%sExprStmt\n", prefix))
		printNode(sb, n.Expr, indent+1)

	case *IfStmt:
		sb.WriteString(fmt.Sprintf("%sIfStmt\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Then:\n", prefix))
		printNode(sb, n.Then, indent+2)
		if n.Else != nil {
			sb.WriteString(fmt.Sprintf("%s  Else:\n", prefix))
			printNode(sb, n.Else, indent+2)
		}

	case *WhileStmt:
		sb.WriteString(fmt.Sprintf("%sWhileStmt\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
		printNode(sb, n.Body, indent+2)

	case *ForStmt:
		sb.WriteString(fmt.Sprintf("%sForStmt\n", prefix))
		if n.Init != nil {
			sb.WriteString(fmt.Sprintf("%s  Init:\n", prefix))
			printNode(sb, n.Init, indent+2)
		}
		if n.Condition != nil {
			sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
			printNode(sb, n.Condition, indent+2)
		}
		if n.Post != nil {
			sb.WriteString(fmt.Sprintf("%s  Post:\n", prefix))
			printNode(sb, n.Post, indent+2)
		}
		sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
		printNode(sb, n.Body, indent+2)

	case *AssertStmt:
		sb.WriteString(fmt.Sprintf("%sAssertStmt\n", prefix))
		printNode(sb, n.Condition, indent+1)

	case *PrintStmt:
		sb.WriteString(fmt.Sprintf("%sPrintStmt\n", prefix))
		for _, arg := range n.Args {
			printNode(sb, arg, indent+1)
		}

	case *BreakStmt:
		sb.WriteString(fmt.Sprintf("%sBreakStmt\n", prefix))

	case *ReturnStmt:
		sb.WriteString(fmt.Sprintf("%sReturnStmt\n", prefix))
		if n.Value != nil {
			sb.WriteString(fmt.Sprintf("%s  Value:\n", prefix))
			printNode(sb, n.Value, indent+2)
		}

	case *AssignExpr:
		sb.WriteString(fmt.Sprintf("%sAssignExpr\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Target:\n", prefix))
		printNode(sb, n.Target, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Value:\n", prefix))
		printNode(sb, n.Value, indent+2)

	case *BinaryExpr:
		sb.WriteString(fmt.Sprintf("%sBinaryExpr: %s\n", prefix, n.Op.Symbol()))
		sb.WriteString(fmt.Sprintf("%s  Left:\n", prefix))
		printNode(sb, n.Left, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Right:\n", prefix))
		printNode(sb, n.Right, indent+2)

	case *UnaryExpr:
		sb.WriteString(fmt.Sprintf("%sUnaryExpr: %s\n", prefix, n.Op.Symbol()))
		sb.WriteString(fmt.Sprintf("%s  Operand:\n", prefix))
		printNode(sb, n.Operand, indent+2)

	case *MethodCallExpr:
		sb.WriteString(fmt.Sprintf("%sMethodCallExpr: %s\n", prefix, n.Method))
		sb.WriteString(fmt.Sprintf("%s  Object:\n", prefix))
		printNode(sb, n.Object, indent+2)
		if len(n.Args) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Args:\n", prefix))
			for _, arg := range n.Args {
				printNode(sb, arg, indent+2)
			}
		} else {
			sb.WriteString(fmt.Sprintf("%s  Args: none\n", prefix))
		}

	case *FieldAccessExpr:
		sb.WriteString(fmt.Sprintf("%sFieldAccessExpr: %s\n", prefix, n.Field))
		sb.WriteString(fmt.Sprintf("%s  Object:\n", prefix))
		printNode(sb, n.Object, indent+2)

	case *LengthExpr:
		sb.WriteString(fmt.Sprintf("%sLengthExpr\n", prefix))
		printNode(sb, n.Object, indent+1)

	case *IndexExpr:
		sb.WriteString(fmt.Sprintf("%sIndexExpr\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Array:\n", prefix))
		printNode(sb, n.Array, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Index:\n", prefix))
		printNode(sb, n.Index, indent+2)

	case *Identifier:
		sb.WriteString(fmt.Sprintf("%sIdentifier: %s\n", prefix, n.Name))

	case *ThisExpr:
		sb.WriteString(fmt.Sprintf("%sThisExpr\n", prefix))

	case *IntLit:
		sb.WriteString(fmt.Sprintf("%sIntLit: %s\n", prefix, n.Raw))

	case *CharLit:
		sb.WriteString(fmt.Sprintf("%sCharLit: %s\n", prefix, n.Raw))

	case *StringLit:
		sb.WriteString(fmt.Sprintf("%sStringLit: %s\n", prefix, n.Raw))

	case *BoolLit:
		sb.WriteString(fmt.Sprintf("%sBoolLit: %t\n", prefix, n.Value))

	case *NewArrayExpr:
		sb.WriteString(fmt.Sprintf("%sNewArrayExpr: %s\n", prefix, n.Elem))
		printNode(sb, n.Size, indent+1)

	case *NewObjectExpr:
		sb.WriteString(fmt.Sprintf("%sNewObjectExpr: %s\n", prefix, n.Class))

	case *ArrayLit:
		sb.WriteString(fmt.Sprintf("%sArrayLit\n", prefix))
		for _, el := range n.Elements {
			printNode(sb, el, indent+1)
		}

	default:
		sb.WriteString(fmt.Sprintf("%sUnknown node type: %T\n", prefix, node))
	}
}
