// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckBalanced(t *testing.T) {
	r := require.New(t)
	for _, text := range []string{
		"",
		"no delimiters at all",
		"{}",
		"{\n}",
		"{a}{b}",
		"([]{()})",
		"a { b: f(c[0]); }\n.d { }\n",
	} {
		r.Empty(Check(text, DefaultPairs()), "text %q", text)
	}
}

func TestCheckExtraCloser(t *testing.T) {
	r := require.New(t)
	findings := Check("}", DefaultPairs())
	r.Equal([]Finding{{
		Kind: ExtraCloser,
		Char: "}",
		Pos:  Position{Offset: 0, Line: 1, Col: 1},
	}}, findings)
	r.Equal("ERROR: Extra '}' at line 1, col 1", findings[0].String())
}

func TestCheckUnclosedOpener(t *testing.T) {
	r := require.New(t)
	findings := Check("{", DefaultPairs())
	r.Equal([]Finding{{
		Kind: UnclosedOpener,
		Char: "{",
		Pos:  Position{Offset: 0, Line: 1, Col: 1},
	}}, findings)
	r.Equal("ERROR: Unclosed '{' from line 1", findings[0].Format(false))
	r.Equal("ERROR: Unclosed '{' from line 1, col 1", findings[0].Format(true))
}

func TestCheckMismatchedCloser(t *testing.T) {
	r := require.New(t)
	findings := Check("(]", DefaultPairs())
	r.Equal([]Finding{{
		Kind:      MismatchedCloser,
		Char:      "]",
		Pos:       Position{Offset: 1, Line: 1, Col: 2},
		Opener:    "(",
		OpenerPos: Position{Offset: 0, Line: 1, Col: 1},
	}}, findings)
	r.Equal("ERROR: Mismatched ']' at line 1, expected closing for '(' from line 1", findings[0].Format(false))
	r.Equal("ERROR: Mismatched ']' at line 1, col 2, expected closing for '(' from line 1, col 1", findings[0].Format(true))
}

func TestCheckMismatchCascades(t *testing.T) {
	r := require.New(t)
	// the stray '(' is popped by '}' and the outer '{' by ')'.
	findings := Check("{(}\n)", DefaultPairs())
	r.Len(findings, 2)
	r.Equal(MismatchedCloser, findings[0].Kind)
	r.Equal("(", findings[0].Opener)
	r.Equal(MismatchedCloser, findings[1].Kind)
	r.Equal("{", findings[1].Opener)
	r.Equal(2, findings[1].Pos.Line)
}

func TestCheckOrder(t *testing.T) {
	r := require.New(t)
	text := "}\n{ [\n(]\n"
	findings := Check(text, DefaultPairs())
	var kinds []Kind
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	r.Equal([]Kind{ExtraCloser, MismatchedCloser, UnclosedOpener, UnclosedOpener}, kinds)
	// unclosed openers are reported outermost first.
	r.Equal("{", findings[2].Char)
	r.Equal(Position{Offset: 2, Line: 2, Col: 1}, findings[2].Pos)
	r.Equal("[", findings[3].Char)
	r.Equal(Position{Offset: 4, Line: 2, Col: 3}, findings[3].Pos)
}

func TestCheckIdempotent(t *testing.T) {
	r := require.New(t)
	text := "a { (b] } ) [\n"
	r.Equal(Check(text, DefaultPairs()), Check(text, DefaultPairs()))
}

func TestCheckCustomPairs(t *testing.T) {
	r := require.New(t)
	pairs, err := ParsePairs([]string{"<>"})
	r.NoError(err)
	r.Empty(Check("{<a>(", pairs))
	findings := Check("<<>", pairs)
	r.Len(findings, 1)
	r.Equal(UnclosedOpener, findings[0].Kind)
	r.Equal("<", findings[0].Char)
}

func TestCheckerDoFile(t *testing.T) {
	r := require.New(t)
	text := "{\n"
	info := &CheckInfo{Name: "x", Text: text, Index: NewLineIndex(text)}
	r.Equal(Check(text, DefaultPairs()), newBalanceChecker(DefaultPairs()).DoFile(info))
}
