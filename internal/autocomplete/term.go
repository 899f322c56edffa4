package autocomplete

import (
	"fmt"
	"strings"
)

// Term is a suggestion: the indexed text plus its ranking weight.
// Terms are always handed out by value.
type Term struct {
	Text   string
	Weight int64
}

// String returns the weight, a tab, and the text.
func (t Term) String() string {
	return fmt.Sprintf("%d\t%s", t.Weight, t.Text)
}

// compareTerms orders by descending weight, then case-insensitive text,
// then raw text so the order is total.
func compareTerms(a, b Term) int {
	switch {
	case a.Weight > b.Weight:
		return -1
	case a.Weight < b.Weight:
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text)); c != 0 {
		return c
	}
	return strings.Compare(a.Text, b.Text)
}
