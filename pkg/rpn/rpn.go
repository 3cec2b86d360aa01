// Package rpn implements the shunting-yard compiler (C2): it converts an
// infix token sequence produced by pkg/token into Reverse Polish
// Notation, validating parenthesis balance along the way.
package rpn

import (
	"github.com/chazu/lignin/pkg/cellerr"
	"github.com/chazu/lignin/pkg/token"
)

// Compile converts infix into RPN using the shunting-yard algorithm of
// §4.2. cellID is used only to attribute a MismatchedParens error.
func Compile(cellID int32, infix []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(infix))
	var stack []token.Token

	for _, t := range infix {
		switch {
		case !t.IsOp():
			out = append(out, t)

		case t.Op() == token.OpLeftParen:
			stack = append(stack, t)

		case t.Op() == token.OpRightParen:
			popped := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.IsOp() && top.Op() == token.OpLeftParen {
					popped = true
					break
				}
				out = append(out, top)
			}
			if !popped {
				return nil, cellerr.Parens(cellID)
			}

		default:
			// Binary/unary operator: union, intersection, or complement.
			op := t.Op()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.IsOp() || isParen(top.Op()) {
					break
				}
				topOp := top.Op()
				if shouldPop(op, topOp) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsOp() && isParen(top.Op()) {
			return nil, cellerr.Parens(cellID)
		}
		out = append(out, top)
	}

	return out, nil
}

func isParen(op token.Op) bool {
	return op == token.OpLeftParen || op == token.OpRightParen
}

// shouldPop reports whether the operator on top of the stack should be
// popped to output before pushing op, per the mixed-associativity rule:
// complement is right-associative (pop only when the top has strictly
// higher precedence than op), everything else is left-associative (pop
// when the top has higher-or-equal precedence). Because operator codes are ordered
// union < intersection < complement, this reduces to direct numeric
// comparison.
func shouldPop(op, top token.Op) bool {
	if op == token.OpComplement {
		return op < top
	}
	return op <= top
}

// Simple reports whether rpn contains neither OpUnion nor OpComplement,
// i.e. is eligible for the fast intersection-only evaluation path.
func Simple(rpn []token.Token) bool {
	for _, t := range rpn {
		if t.IsOp() {
			op := t.Op()
			if op == token.OpUnion || op == token.OpComplement {
				return false
			}
		}
	}
	return true
}
