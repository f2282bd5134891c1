// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"strconv"
	"unicode/utf8"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Position is a location in a text.
type Position struct {
	Offset int `json:"offset"` // byte offset, 0-based
	Line   int `json:"line"`   // 1-based
	Col    int `json:"col"`    // characters from the line start, 1-based
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// LineIndex converts byte offsets into line/column positions.
// It is built once per text, lookups take O(log n) in the number of lines.
type LineIndex struct {
	text string
	// newline offset -> number of the line that starts after it.
	newlines *redblacktree.Tree[int, int]
}

func NewLineIndex(text string) *LineIndex {
	newlines := redblacktree.New[int, int]()
	line := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			line++
			newlines.Put(i, line)
		}
	}
	return &LineIndex{text: text, newlines: newlines}
}

// Position returns the location of offset. Out of range offsets are clamped.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.text) {
		offset = len(li.text)
	}
	line, lineStart := 1, 0
	// only newlines strictly before offset count.
	if node, found := li.newlines.Floor(offset - 1); found {
		line, lineStart = node.Value, node.Key+1
	}
	return Position{
		Offset: offset,
		Line:   line,
		Col:    utf8.RuneCountInString(li.text[lineStart:offset]) + 1,
	}
}

// Lines returns the number of lines in the text.
func (li *LineIndex) Lines() int {
	return li.newlines.Size() + 1
}
