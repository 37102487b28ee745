// Package pipeline implements the derived-view engine shared by every
// list-bearing view: a raw collection plus the user's filter and sort choices
// in, the exact sequence to render out. Every run is a pure, synchronous
// function of its inputs; failures degrade to identity behavior so the render
// path never aborts.
package pipeline

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// CategoryAll is the sentinel filter label that disables category filtering.
const CategoryAll = "All"

// UnparsedValue is the sort key assigned to range strings whose leading number
// cannot be parsed. It is larger than any valid value so malformed entries
// sort last instead of aborting the sort.
const UnparsedValue = math.MaxInt32

// KeywordTable maps a display label to the raw keywords that define category
// membership.
type KeywordTable map[string][]string

// Comparator reports the order of a and b: negative if a sorts first,
// positive if b does, zero for equal keys.
type Comparator[T any] func(a, b T) int

// ComparatorTable maps a sort key to its comparator.
type ComparatorTable[T any] map[string]Comparator[T]

// Filter returns the maximal subset of items whose cuisine or any tag
// contains, case-insensitively, at least one of the given keywords. Relative
// order is preserved. The CategoryAll label and an empty keyword set both
// return the input unchanged; no match returns an empty, non-nil slice.
func Filter[T any](items []T, category string, keywords []string, cuisineOf func(T) string, tagsOf func(T) []string) []T {
	if category == CategoryAll || len(keywords) == 0 {
		return items
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAny(item, lowered, cuisineOf, tagsOf) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesAny[T any](item T, keywords []string, cuisineOf func(T) string, tagsOf func(T) []string) bool {
	cuisine := strings.ToLower(cuisineOf(item))
	for _, kw := range keywords {
		if strings.Contains(cuisine, kw) {
			return true
		}
		for _, tag := range tagsOf(item) {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}

// SortBy returns a new slice ordered by the comparator registered for key.
// The input is never mutated. An unknown key returns a copy in original
// order; ties keep their original relative order (stable sort).
func SortBy[T any](items []T, key string, table ComparatorTable[T]) []T {
	out := slices.Clone(items)
	cmp, ok := table[key]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// GenericKeywords derives the keyword set for a label with no explicit table
// entry: the label stripped of every non-letter rune, lowercased. A label
// with no letters yields no keywords (and therefore no filtering).
func GenericKeywords(label string) []string {
	var b strings.Builder
	for _, r := range label {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return nil
	}
	return []string{b.String()}
}

// LeadingInt parses the integer prefix of a range string such as "25-30 min".
// Malformed input, including a prefix too long to fit an int, returns
// UnparsedValue rather than an error.
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return UnparsedValue
	}
	return n
}
