// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	r := require.New(t)
	pairs, err := ParsePairs([]string{"{}", "()", "[]"})
	r.NoError(err)
	r.Equal(DefaultPairs(), pairs)
	r.Equal("(),[],{}", pairs.String())
	r.Equal([]rune{'(', '[', '{'}, pairs.Openers())

	pairs, err = ParsePairs([]string{"«»"})
	r.NoError(err)
	r.Equal(Pairs{'«': '»'}, pairs)
}

func TestParsePairsErrors(t *testing.T) {
	for _, defs := range [][]string{
		nil,
		{"{"},
		{"{}}"},
		{"||"},
		{"{}", "}{"},
		{"{}", "{)"},
	} {
		_, err := ParsePairs(defs)
		require.Error(t, err, "defs %q", defs)
	}
}
