package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidAmount is returned when an amount string cannot be parsed
// or does not parse to a positive number.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount parses a decimal amount that may be plain ("1234.56") or
// locale-formatted with thousands separators ("1.234,56", "1,234.56").
// The result must be strictly positive.
func Amount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma > lastDot:
		// Comma is the decimal separator, dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot > lastComma:
		// Dot is the decimal separator, commas are thousands separators.
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %v", ErrInvalidAmount, v)
	}
	return v, nil
}

// Day truncates t to a plain calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month in UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Tags lowercases, trims and deduplicates tags, dropping empty entries.
// Order of first occurrence is preserved.
func Tags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// JoinTags renders a normalized tag list into its stored form.
func JoinTags(tags []string) string {
	return strings.Join(Tags(tags), ",")
}

// SplitTags parses the stored form back into a list.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
