// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"slices"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

// frame is an opener waiting for its closer.
type frame struct {
	char   rune
	offset int
}

type balanceChecker struct {
	pairs   Pairs
	closers map[rune]rune
}

func newBalanceChecker(pairs Pairs) *balanceChecker {
	return &balanceChecker{pairs: pairs, closers: pairs.closers()}
}

func (bc *balanceChecker) DoFile(info *CheckInfo) []Finding {
	return bc.check(info.Text, info.Index)
}

// check scans text once keeping a stack of unclosed openers.
// On a mismatch the top frame is popped anyway, so a single bad closer
// may produce more findings further on.
func (bc *balanceChecker) check(text string, idx *LineIndex) []Finding {
	var result []Finding
	stack := arraystack.New[frame]()
	for offset, r := range text {
		if bc.pairs.isOpener(r) {
			stack.Push(frame{char: r, offset: offset})
			continue
		}
		if _, isCloser := bc.closers[r]; !isCloser {
			continue
		}
		top, ok := stack.Pop()
		if !ok {
			result = append(result, Finding{
				Kind: ExtraCloser,
				Char: string(r),
				Pos:  idx.Position(offset),
			})
			continue
		}
		if bc.pairs[top.char] != r {
			result = append(result, Finding{
				Kind:      MismatchedCloser,
				Char:      string(r),
				Pos:       idx.Position(offset),
				Opener:    string(top.char),
				OpenerPos: idx.Position(top.offset),
			})
		}
	}
	// Values are innermost first, report outermost first.
	pending := stack.Values()
	slices.Reverse(pending)
	for _, fr := range pending {
		result = append(result, Finding{
			Kind: UnclosedOpener,
			Char: string(fr.char),
			Pos:  idx.Position(fr.offset),
		})
	}
	return result
}

// Check reports every unmatched or mismatched delimiter of text in scan order.
func Check(text string, pairs Pairs) []Finding {
	return newBalanceChecker(pairs).check(text, NewLineIndex(text))
}
