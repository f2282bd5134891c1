// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Pairs maps every tracked opener to its closer.
type Pairs map[rune]rune

// DefaultPairs returns {}, () and [].
func DefaultPairs() Pairs {
	return Pairs{'{': '}', '(': ')', '[': ']'}
}

// ParsePairs builds Pairs from two-rune strings like "{}" or "<>".
func ParsePairs(defs []string) (Pairs, error) {
	if len(defs) == 0 {
		return nil, errors.New("no delimiter pairs given")
	}
	result := make(Pairs, len(defs))
	seen := make(map[rune]struct{})
	for _, def := range defs {
		if utf8.RuneCountInString(def) != 2 {
			return nil, errors.Errorf("bad pair %q: want exactly two characters", def)
		}
		opener, size := utf8.DecodeRuneInString(def)
		closer, _ := utf8.DecodeRuneInString(def[size:])
		if opener == closer {
			return nil, errors.Errorf("bad pair %q: opener and closer must differ", def)
		}
		for _, r := range []rune{opener, closer} {
			if _, found := seen[r]; found {
				return nil, errors.Errorf("bad pair %q: %q is already used", def, r)
			}
			seen[r] = struct{}{}
		}
		result[opener] = closer
	}
	return result, nil
}

func (p Pairs) isOpener(r rune) bool {
	_, found := p[r]
	return found
}

// closers returns the reverse mapping, closer -> opener.
func (p Pairs) closers() map[rune]rune {
	result := make(map[rune]rune, len(p))
	for opener, closer := range p {
		result[closer] = opener
	}
	return result
}

// Openers returns the openers in ascending order.
func (p Pairs) Openers() []rune {
	result := make([]rune, 0, len(p))
	for opener := range p {
		result = append(result, opener)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (p Pairs) String() string {
	var parts []string
	for _, opener := range p.Openers() {
		parts = append(parts, string([]rune{opener, p[opener]}))
	}
	return strings.Join(parts, ",")
}
