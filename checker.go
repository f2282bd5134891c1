// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"github.com/pkg/errors"
)

const (
	CheckerBalance = "balance"
	CheckerDepth   = "depth"
)

type CheckInfo struct {
	Name  string
	Text  string
	Index *LineIndex
}

type Checker interface {
	DoFile(info *CheckInfo) []Finding
}

func makeCheckers(names []string, pairs Pairs) ([]Checker, error) {
	if len(names) == 0 {
		names = []string{CheckerBalance}
	}
	var result []Checker
	for _, name := range names {
		ch, err := makeChecker(name, pairs)
		if err != nil {
			return nil, err
		}
		result = append(result, ch)
	}
	return result, nil
}

func makeChecker(name string, pairs Pairs) (Checker, error) {
	switch name {
	case CheckerBalance:
		return newBalanceChecker(pairs), nil
	case CheckerDepth:
		return newDepthChecker(pairs), nil
	default:
		return nil, errors.Errorf("unknown checker %q", name)
	}
}
