// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import "fmt"

// PairCount holds the totals of one delimiter pair.
type PairCount struct {
	Opener string `json:"opener"`
	Closer string `json:"closer"`
	Open   int    `json:"open"`
	Close  int    `json:"close"`
}

func (pc PairCount) Balanced() bool {
	return pc.Open == pc.Close
}

func (pc PairCount) String() string {
	return fmt.Sprintf("Open '%s': %d, Close '%s': %d", pc.Opener, pc.Open, pc.Closer, pc.Close)
}

// Count returns opener and closer totals for every pair, ordered by opener.
func Count(text string, pairs Pairs) []PairCount {
	opens := make(map[rune]int)
	closes := make(map[rune]int)
	closers := pairs.closers()
	for _, r := range text {
		if pairs.isOpener(r) {
			opens[r]++
		} else if opener, found := closers[r]; found {
			closes[opener]++
		}
	}
	var result []PairCount
	for _, opener := range pairs.Openers() {
		result = append(result, PairCount{
			Opener: string(opener),
			Closer: string(pairs[opener]),
			Open:   opens[opener],
			Close:  closes[opener],
		})
	}
	return result
}
