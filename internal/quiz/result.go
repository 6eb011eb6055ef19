package quiz

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidResultTable is returned when a ResultTable fails validation.
var ErrInvalidResultTable = errors.New("invalid result table")

// ResultTier maps a closed score range to a classification message.
type ResultTier struct {
	Min     int
	Max     int
	Message string
}

// Contains reports whether score falls within the tier's range.
func (t ResultTier) Contains(score int) bool {
	return score >= t.Min && score <= t.Max
}

// ResultTable classifies a final score into a message.
type ResultTable []ResultTier

// DefaultResultTable returns the table for the ten-question Porsche bank.
func DefaultResultTable() ResultTable {
	return ResultTable{
		{Min: 0, Max: 2, Message: "Nice try!"},
		{Min: 3, Max: 5, Message: "Great job!"},
		{Min: 6, Max: 8, Message: "Well done!"},
		{Min: 9, Max: 10, Message: "Perfect!"},
	}
}

// Classify returns the message for score, or "" when no tier contains it.
func (t ResultTable) Classify(score int) string {
	for _, tier := range t {
		if tier.Contains(score) {
			return tier.Message
		}
	}
	return ""
}

// Covers reports whether every score in [0, n] has a tier.
func (t ResultTable) Covers(n int) bool {
	for score := 0; score <= n; score++ {
		if t.Classify(score) == "" {
			return false
		}
	}
	return true
}

// Validate checks bounds and rejects overlapping tiers.
func (t ResultTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidResultTable)
	}

	var errs []string
	for i, tier := range t {
		prefix := fmt.Sprintf("tier %d", i+1)
		if tier.Min < 0 {
			errs = append(errs, fmt.Sprintf("%s: min must be >= 0, got %d", prefix, tier.Min))
		}
		if tier.Min > tier.Max {
			errs = append(errs, fmt.Sprintf("%s: min %d is greater than max %d", prefix, tier.Min, tier.Max))
		}
		if strings.TrimSpace(tier.Message) == "" {
			errs = append(errs, prefix+": empty message")
		}
	}

	sorted := make(ResultTable, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Min <= prev.Max {
			errs = append(errs, fmt.Sprintf("tiers %d-%d and %d-%d overlap", prev.Min, prev.Max, cur.Min, cur.Max))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidResultTable, strings.Join(errs, "\n  "))
	}
	return nil
}
