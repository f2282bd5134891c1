// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

// depthChecker follows the nesting level line by line, ignoring which
// pair a delimiter belongs to.
type depthChecker struct {
	pairs   Pairs
	closers map[rune]rune
}

func newDepthChecker(pairs Pairs) *depthChecker {
	return &depthChecker{pairs: pairs, closers: pairs.closers()}
}

func (dc *depthChecker) DoFile(info *CheckInfo) []Finding {
	return dc.check(info.Text, info.Index)
}

func (dc *depthChecker) check(text string, idx *LineIndex) []Finding {
	level := 0
	lineStart := 0
	for offset, r := range text {
		switch {
		case dc.pairs.isOpener(r):
			level++
		case dc.isCloser(r):
			level--
		}
		// the level is only checked at line ends.
		if r == '\n' {
			if level < 0 {
				return []Finding{{Kind: NegativeDepth, Pos: idx.Position(lineStart)}}
			}
			lineStart = offset + 1
		}
	}
	if level < 0 {
		return []Finding{{Kind: NegativeDepth, Pos: idx.Position(lineStart)}}
	}
	if level != 0 {
		return []Finding{{Kind: UnbalancedDepth, Pos: idx.Position(len(text)), Depth: level}}
	}
	return nil
}

func (dc *depthChecker) isCloser(r rune) bool {
	_, found := dc.closers[r]
	return found
}

// TraceDepth reports the first line where the nesting level goes below zero,
// or a non-zero final level.
func TraceDepth(text string, pairs Pairs) []Finding {
	return newDepthChecker(pairs).check(text, NewLineIndex(text))
}
