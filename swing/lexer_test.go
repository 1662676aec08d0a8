package swing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type lexeme struct {
	Kind  TokenKind
	Value any
}

func lexemes(tokens []Token) []lexeme {
	out := make([]lexeme, len(tokens))
	for i, tok := range tokens {
		out[i] = lexeme{Kind: tok.Kind, Value: tok.Value}
	}
	return out
}

func mustScan(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Scan(input, "<test>")
	if err != nil {
		t.Fatalf("scan %q failed: %v", input, err)
	}
	return tokens
}

func scanError(t *testing.T, input string, opts ScanOptions) ([]Token, *Error) {
	t.Helper()
	tokens, err := ScanWithOptions(input, "<test>", opts)
	if err == nil {
		t.Fatalf("expected scan error for %q", input)
	}
	var swingErr *Error
	if !errors.As(err, &swingErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	return tokens, swingErr
}

func TestScanOperators(t *testing.T) {
	got := lexemes(mustScan(t, "1 + 2.5 * (x - 3) / 4 == 5 != 6 > 7 < 8 >= 9 <= 10 = y"))
	want := []lexeme{
		{TokenInt, int64(1)},
		{TokenPlus, nil},
		{TokenFloat, 2.5},
		{TokenMul, nil},
		{TokenLParen, nil},
		{TokenIdentifier, "x"},
		{TokenMinus, nil},
		{TokenInt, int64(3)},
		{TokenRParen, nil},
		{TokenDiv, nil},
		{TokenInt, int64(4)},
		{TokenEqEq, nil},
		{TokenInt, int64(5)},
		{TokenNotEq, nil},
		{TokenInt, int64(6)},
		{TokenGt, nil},
		{TokenInt, int64(7)},
		{TokenLt, nil},
		{TokenInt, int64(8)},
		{TokenGte, nil},
		{TokenInt, int64(9)},
		{TokenLte, nil},
		{TokenInt, int64(10)},
		{TokenEq, nil},
		{TokenIdentifier, "y"},
		{TokenEOF, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	got := lexemes(mustScan(t, "yehai aur ya na agar phir nahito nahito_agar jabtak score_2 Yehai"))
	want := []lexeme{
		{TokenKeyword, "yehai"},
		{TokenKeyword, "aur"},
		{TokenKeyword, "ya"},
		{TokenKeyword, "na"},
		{TokenKeyword, "agar"},
		{TokenKeyword, "phir"},
		{TokenKeyword, "nahito"},
		{TokenKeyword, "nahito_agar"},
		{TokenKeyword, "jabtak"},
		{TokenIdentifier, "score_2"},
		{TokenIdentifier, "Yehai"},
		{TokenEOF, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEmptyInputYieldsEOF(t *testing.T) {
	tokens := mustScan(t, "")
	if len(tokens) != 1 || tokens[0].Kind != TokenEOF {
		t.Fatalf("expected lone EOF, got %v", tokens)
	}
}

func TestScanTracksSpans(t *testing.T) {
	tokens := mustScan(t, "ab >= 12.5")
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	cases := []struct {
		startCol, endCol int
	}{
		{0, 2},
		{3, 5},
		{6, 10},
		{10, 11},
	}
	for i, tc := range cases {
		tok := tokens[i]
		if tok.Start.Column != tc.startCol || tok.End.Column != tc.endCol {
			t.Fatalf("token %d (%s): span %d..%d, want %d..%d", i, tok, tok.Start.Column, tok.End.Column, tc.startCol, tc.endCol)
		}
		if tok.Start.Source != "<test>" || tok.Start.Text != "ab >= 12.5" {
			t.Fatalf("token %d lost its source: %#v", i, tok.Start)
		}
	}
}

func TestScanSpansAreSnapshots(t *testing.T) {
	tokens := mustScan(t, "1 + 2")
	first := tokens[0]
	tokens[1].Start.Advance()
	if first.End.Index != 1 || tokens[0].End.Index != 1 {
		t.Fatalf("token spans alias each other: %#v", tokens[0])
	}
	if tokens[2].Start.Index != 4 {
		t.Fatalf("unexpected start of third token: %d", tokens[2].Start.Index)
	}
}

func TestScanSlashTIsSkipped(t *testing.T) {
	got := lexemes(mustScan(t, "8 /t 2"))
	want := []lexeme{{TokenInt, int64(8)}, {TokenInt, int64(2)}, {TokenEOF, nil}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}

	got = lexemes(mustScan(t, "6/2"))
	want = []lexeme{{TokenInt, int64(6)}, {TokenDiv, nil}, {TokenInt, int64(2)}, {TokenEOF, nil}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTabRequiresOption(t *testing.T) {
	_, err := scanError(t, "1\t+ 2", ScanOptions{})
	if err.Kind != IllegalCharacter {
		t.Fatalf("expected illegal character for tab, got %v", err.Kind)
	}

	tokens, scanErr := ScanWithOptions("1\t+ 2", "<test>", ScanOptions{SkipTabs: true})
	if scanErr != nil {
		t.Fatalf("scan with tabs failed: %v", scanErr)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", tokens)
	}
}

func TestScanSecondDotEndsNumber(t *testing.T) {
	tokens, err := scanError(t, "1.2.3", ScanOptions{})
	if err.Kind != IllegalCharacter || err.Start.Index != 3 {
		t.Fatalf("expected illegal '.' at 3, got %v at %d", err.Kind, err.Start.Index)
	}
	if diff := cmp.Diff([]lexeme{{TokenFloat, 1.2}}, lexemes(tokens)); diff != "" {
		t.Fatalf("partial tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanIllegalCharacter(t *testing.T) {
	tokens, err := scanError(t, "2 + @", ScanOptions{})
	if err.Kind != IllegalCharacter {
		t.Fatalf("expected illegal character, got %v", err.Kind)
	}
	if err.Start.Index != 4 || err.End.Index != 5 {
		t.Fatalf("unexpected span %d..%d", err.Start.Index, err.End.Index)
	}
	if err.Details != "'@'" {
		t.Fatalf("unexpected details %q", err.Details)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected the scanned prefix to be returned, got %v", tokens)
	}
}

func TestScanBangWithoutEquals(t *testing.T) {
	_, err := scanError(t, "1 ! 2", ScanOptions{})
	if err.Kind != ExpectedCharacter {
		t.Fatalf("expected expected-character error, got %v", err.Kind)
	}
	if err.Start.Index != 2 || err.End.Index != 3 {
		t.Fatalf("unexpected span %d..%d", err.Start.Index, err.End.Index)
	}

	_, err = scanError(t, "1 !", ScanOptions{})
	if err.Kind != ExpectedCharacter {
		t.Fatalf("expected expected-character error at end of input, got %v", err.Kind)
	}
}

func TestScanIntegerOutOfRange(t *testing.T) {
	_, err := scanError(t, "99999999999999999999", ScanOptions{})
	if err.Kind != InvalidSyntax {
		t.Fatalf("expected invalid syntax, got %v", err.Kind)
	}
}

func TestScanMinimumIntegerLiteralOutOfRange(t *testing.T) {
	tokens, err := scanError(t, "-9223372036854775808", ScanOptions{})
	if err.Kind != InvalidSyntax || err.Details != "integer literal out of range: 9223372036854775808" {
		t.Fatalf("unexpected error %v", err)
	}
	if err.Start.Column != 1 || err.End.Column != 20 {
		t.Fatalf("span %d..%d, want 1..20", err.Start.Column, err.End.Column)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenMinus {
		t.Fatalf("expected the sign token before the failure, got %v", tokens)
	}
}
