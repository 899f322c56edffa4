package autocomplete

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidCharacter is returned by Normalize for letters or digits that
// have no place in the index alphabet (a-z, 0-9, space) even after folding.
var ErrInvalidCharacter = errors.New("invalid character")

// latinFold spells out Latin letters that canonical decomposition leaves
// whole.
var latinFold = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
)

// Normalize turns display text into an index key.
//
// The text is lowercased and accent-folded ("Amélie" becomes "amelie",
// "Straße" becomes "strasse"). ASCII letters and digits are kept, runs of
// whitespace collapse to one space, and punctuation or symbols are
// dropped, so "Titanic (1997)" becomes "titanic 1997". Invalid UTF-8 is
// an ErrInvalidCharacter.
func Normalize(s string) (string, error) {
	return normalize(s, false)
}

// normalizePrefix is Normalize for typed prefixes: trailing whitespace
// after a kept character survives as one space, so "star " does not match
// "stardust".
func normalizePrefix(s string) (string, error) {
	return normalize(s, true)
}

func normalize(s string, keepTrailingSpace bool) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrInvalidCharacter, s)
	}

	// transform.Chain is stateful, so build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, latinFold.Replace(strings.ToLower(s)))
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}

	var b strings.Builder
	b.Grow(len(folded) + 1)
	pendingSpace := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		case r == utf8.RuneError, unicode.IsLetter(r), unicode.IsDigit(r):
			return "", fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, r, s)
		}
	}

	last, _ := utf8.DecodeLastRuneInString(folded)
	if keepTrailingSpace && b.Len() > 0 && unicode.IsSpace(last) {
		b.WriteByte(' ')
	}
	return b.String(), nil
}

// alphabetSize covers space, 0-9 and a-z.
const alphabetSize = 37

// slot maps a normalized key byte to its child index, or -1.
func slot(c byte) int {
	switch {
	case c == ' ':
		return 0
	case c >= '0' && c <= '9':
		return 1 + int(c-'0')
	case c >= 'a' && c <= 'z':
		return 11 + int(c-'a')
	}
	return -1
}
