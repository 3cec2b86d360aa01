// Package token implements the region-specification tokenizer (C1): it
// converts region text into an ordered sequence of signed-integer tokens,
// inserting implicit intersection operators where the grammar's
// juxtaposition convention requires one.
package token

import (
	"unicode"

	"github.com/chazu/lignin/pkg/cellerr"
)

// Op is an operator token. Operator values are strictly greater than any
// signed half-space reference below 2^30, and are ordered so that a direct
// numeric comparison between two operator values reproduces the
// precedence relation complement > intersection > union, with
// parentheses outside the precedence lattice entirely.
type Op int32

const (
	// OpUnion through OpRightParen start at 2^30, so no half-space
	// token whose value is below 2^30 can collide with them; a positive
	// reference of 2^30 or more reads as an operator.
	OpUnion Op = 1<<30 + iota
	OpIntersection
	OpComplement
	OpLeftParen
	OpRightParen
)

// Token is a single element of a tokenized region specification. Exactly
// one of IsOp or the signed HalfSpace value is meaningful: operator
// tokens hold their Op value (read with Op), half-space tokens hold the
// signed surface reference (read with Raw).
type Token int32

// HalfSpace returns a half-space token for the given signed surface
// reference. k must be non-zero; positive means the positive sense,
// negative the negative sense.
func HalfSpace(k int32) Token { return Token(k) }

// FromOp returns the Token for operator op.
func FromOp(op Op) Token { return Token(op) }

// IsOp reports whether t is an operator token.
func (t Token) IsOp() bool { return int32(t) >= int32(OpUnion) }

// Op returns the operator this token represents. Only valid if IsOp.
func (t Token) Op() Op { return Op(t) }

// Raw returns the signed half-space reference this token represents.
// Only valid if !IsOp.
func (t Token) Raw() int32 { return int32(t) }

// leftCompatible reports whether t may appear immediately to the left of
// an implicit intersection: a half-space or a right parenthesis.
func leftCompatible(t Token) bool {
	return !t.IsOp() || t.Op() == OpRightParen
}

// rightCompatible reports whether t may appear immediately to the right
// of an implicit intersection: a half-space, a left parenthesis, or a
// complement.
func rightCompatible(t Token) bool {
	if !t.IsOp() {
		return true
	}
	op := t.Op()
	return op == OpLeftParen || op == OpComplement
}

// Tokenize converts a region specification string into a token sequence,
// performing the lexical pass of §4.1 followed by implicit-intersection
// insertion. Empty input yields an empty token list.
func Tokenize(spec string) ([]Token, error) {
	runes := []rune(spec)
	var lexed []Token

	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case unicode.IsSpace(ch):
			i++

		case ch == '(':
			lexed = append(lexed, FromOp(OpLeftParen))
			i++

		case ch == ')':
			lexed = append(lexed, FromOp(OpRightParen))
			i++

		case ch == '|':
			lexed = append(lexed, FromOp(OpUnion))
			i++

		case ch == '~':
			lexed = append(lexed, FromOp(OpComplement))
			i++

		case ch == '+' || ch == '-' || unicode.IsDigit(ch):
			start := i
			i++
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			n, err := parseSignedInt(string(runes[start:i]))
			if err != nil {
				return nil, err
			}
			lexed = append(lexed, HalfSpace(n))

		default:
			return nil, cellerr.InvalidChar(ch)
		}
	}

	return insertIntersections(lexed), nil
}

// parseSignedInt parses an optionally-signed decimal integer produced by
// the maximal-digit-run scan above.
func parseSignedInt(s string) (int32, error) {
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i == len(s) {
		// A bare sign with no digits after it: the sign itself is the
		// offending character.
		return 0, cellerr.InvalidChar(rune(s[0]))
	}
	var n int32
	for ; i < len(s); i++ {
		n = n*10 + int32(s[i]-'0')
	}
	if n == 0 {
		// A literal "0" is not a valid half-space reference (surface ids
		// are non-zero).
		return 0, cellerr.InvalidChar('0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// insertIntersections walks the lexed tokens and inserts an
// OpIntersection between every adjacent pair (a, b) where a is
// left-compatible and b is right-compatible, making the "juxtaposition
// means intersection" convention explicit.
func insertIntersections(lexed []Token) []Token {
	if len(lexed) < 2 {
		return lexed
	}
	out := make([]Token, 0, len(lexed)*2)
	out = append(out, lexed[0])
	for i := 1; i < len(lexed); i++ {
		if leftCompatible(lexed[i-1]) && rightCompatible(lexed[i]) {
			out = append(out, FromOp(OpIntersection))
		}
		out = append(out, lexed[i])
	}
	return out
}
