package token_test

import (
	"testing"

	"github.com/chazu/lignin/pkg/cellerr"
	"github.com/chazu/lignin/pkg/token"
)

func TestTokenizeHalfSpaces(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []token.Token
	}{
		{"single positive", "1", []token.Token{token.HalfSpace(1)}},
		{"single negative", "-3", []token.Token{token.HalfSpace(-3)}},
		{"explicit plus", "+5", []token.Token{token.HalfSpace(5)}},
		{
			"implicit intersection between two half-spaces",
			"1 -2",
			[]token.Token{token.HalfSpace(1), token.FromOp(token.OpIntersection), token.HalfSpace(-2)},
		},
		{
			"union is explicit, no inserted intersection",
			"1 | 2",
			[]token.Token{token.HalfSpace(1), token.FromOp(token.OpUnion), token.HalfSpace(2)},
		},
		{
			"complement then half-space needs no intersection before it",
			"~1",
			[]token.Token{token.FromOp(token.OpComplement), token.HalfSpace(1)},
		},
		{
			"half-space juxtaposed with complement gets an intersection",
			"1 ~2",
			[]token.Token{token.HalfSpace(1), token.FromOp(token.OpIntersection), token.FromOp(token.OpComplement), token.HalfSpace(2)},
		},
		{
			"parens juxtaposed with half-space",
			"(1) 2",
			[]token.Token{
				token.FromOp(token.OpLeftParen), token.HalfSpace(1), token.FromOp(token.OpRightParen),
				token.FromOp(token.OpIntersection), token.HalfSpace(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.Tokenize(tt.spec)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tt.spec, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.spec, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.spec, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	_, err := token.Tokenize("1 & 2")
	if err == nil {
		t.Fatal("expected an error for an invalid character")
	}
	cerr, ok := err.(*cellerr.Error)
	if !ok {
		t.Fatalf("expected *cellerr.Error, got %T", err)
	}
	if cerr.Kind != cellerr.InvalidCharacter {
		t.Errorf("Kind = %v, want InvalidCharacter", cerr.Kind)
	}
}

func TestTokenizeZeroIsInvalid(t *testing.T) {
	_, err := token.Tokenize("0")
	if err == nil {
		t.Fatal("expected an error for a literal 0 half-space reference")
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := token.Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize(\"\") returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestOperatorOrdering(t *testing.T) {
	// Half-space tokens must never collide with operator codes, and the
	// operators must be ordered union < intersection < complement <
	// left paren < right paren, per the encoding invariant.
	if token.OpUnion >= token.OpIntersection ||
		token.OpIntersection >= token.OpComplement ||
		token.OpComplement >= token.OpLeftParen ||
		token.OpLeftParen >= token.OpRightParen {
		t.Fatal("operator ordering invariant violated")
	}
	big := token.HalfSpace(1 << 29)
	if big.IsOp() {
		t.Error("a large half-space reference must not be misread as an operator")
	}
}
