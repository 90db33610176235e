package model

import "fmt"

// DetectionMode selects the scope R-values are compared in.
type DetectionMode string

const (
	// ModeTransaction compares R-values within one transaction's scripts.
	ModeTransaction DetectionMode = "transaction"
	// ModeAddress compares R-values across all transactions of an address.
	ModeAddress DetectionMode = "address"
)

// ParseDetectionMode maps a configuration value to a DetectionMode.
func ParseDetectionMode(s string) (DetectionMode, error) {
	switch DetectionMode(s) {
	case "", ModeTransaction:
		return ModeTransaction, nil
	case ModeAddress:
		return ModeAddress, nil
	default:
		return "", fmt.Errorf("unknown detection mode %q", s)
	}
}

// DuplicateGroup is an R-value seen at two or more positions of one transaction.
type DuplicateGroup struct {
	RValue    string
	Positions []int
}

// Occurrence locates one use of an R-value.
type Occurrence struct {
	TxHash   string
	Position int
}

// ReuseFinding is an R-value with every place it was used.
type ReuseFinding struct {
	RValue      string
	Occurrences []Occurrence
}

// Positions returns the occurrence positions in order.
func (f ReuseFinding) Positions() []int {
	positions := make([]int, 0, len(f.Occurrences))
	for _, o := range f.Occurrences {
		positions = append(positions, o.Position)
	}
	return positions
}

// Report collects the findings of one address scan.
type Report struct {
	Address  string
	Mode     DetectionMode
	Findings []ReuseFinding
}

// Empty reports whether nothing was found.
func (r Report) Empty() bool {
	return len(r.Findings) == 0
}
