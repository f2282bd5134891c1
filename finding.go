// Copyright 2026 Aleksandr Demakin. All rights reserved.

package balance

import (
	"fmt"
)

const (
	ExtraCloser Kind = iota
	MismatchedCloser
	UnclosedOpener
	NegativeDepth
	UnbalancedDepth
)

// Kind is the type of a balance defect.
type Kind int

func (k Kind) String() string {
	switch k {
	case ExtraCloser:
		return "extra"
	case MismatchedCloser:
		return "mismatched"
	case UnclosedOpener:
		return "unclosed"
	case NegativeDepth:
		return "negative-depth"
	case UnbalancedDepth:
		return "unbalanced-depth"
	default:
		return "unknown"
	}
}

// MarshalText makes Kind readable in json reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Finding describes one defect found in a text.
// Opener and OpenerPos are set for MismatchedCloser only.
// Depth is set for UnbalancedDepth only.
type Finding struct {
	Kind      Kind     `json:"kind"`
	Char      string   `json:"char,omitempty"`
	Pos       Position `json:"pos"`
	Opener    string   `json:"opener,omitempty"`
	OpenerPos Position `json:"opener_pos"`
	Depth     int      `json:"depth,omitempty"`
}

func (f Finding) String() string {
	return f.Format(true)
}

// Format renders the finding as a single diagnostic line.
func (f Finding) Format(columns bool) string {
	switch f.Kind {
	case ExtraCloser:
		return fmt.Sprintf("ERROR: Extra '%s' at line %d, col %d", f.Char, f.Pos.Line, f.Pos.Col)
	case MismatchedCloser:
		if columns {
			return fmt.Sprintf("ERROR: Mismatched '%s' at line %d, col %d, expected closing for '%s' from line %d, col %d",
				f.Char, f.Pos.Line, f.Pos.Col, f.Opener, f.OpenerPos.Line, f.OpenerPos.Col)
		}
		return fmt.Sprintf("ERROR: Mismatched '%s' at line %d, expected closing for '%s' from line %d",
			f.Char, f.Pos.Line, f.Opener, f.OpenerPos.Line)
	case UnclosedOpener:
		if columns {
			return fmt.Sprintf("ERROR: Unclosed '%s' from line %d, col %d", f.Char, f.Pos.Line, f.Pos.Col)
		}
		return fmt.Sprintf("ERROR: Unclosed '%s' from line %d", f.Char, f.Pos.Line)
	case NegativeDepth:
		return fmt.Sprintf("ERROR: Level dropped below 0 at line %d", f.Pos.Line)
	case UnbalancedDepth:
		return fmt.Sprintf("ERROR: Final level %d, mismatched delimiters detected", f.Depth)
	default:
		return fmt.Sprintf("ERROR: unknown finding at line %d", f.Pos.Line)
	}
}
