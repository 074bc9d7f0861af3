package parser

import "github.com/wicklang/wick/lexer"

// Operator precedence constants, lowest to highest. Higher number binds
// tighter. This is the eight-level table the core language grammar
// needs; it is a deliberately small subset of the precedence ladder a
// fuller expression language would carry (assignment, logical
// or/and, bitwise or/xor/and, shift, range, member access are all
// absent because the language has no such operators).
const (
	LOWEST      = iota + 1
	EQUALS      // ==, !=
	LESSGREATER // >, <
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -x, !x
	CALL        // myFunction(x)
	INDEX       // myArray[x]
)

// precedences maps infix operator tokens to their binding power.
// Tokens absent from this table default to LOWEST, which is how
// parseExpression knows to stop consuming infix operators.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

func peekPrecedence(tok lexer.TokenType) int {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST
}
