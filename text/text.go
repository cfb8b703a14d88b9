// Package text provides string helpers that index by Unicode codepoint instead of byte.
// Positions are 1-based. Bytes that are not valid UTF-8 count as one U+FFFD codepoint each.
package text

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/huandu/xstrings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Character classes exported to scripts.
const (
	ASCIILowercase = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIILetters   = ASCIILowercase + ASCIIUppercase
	Digits         = "0123456789"
)

// DefaultTabSize is the tab width ExpandTabs uses when none is given.
const DefaultTabSize = 8

// ErrIndexOutOfBounds is returned when a position or range lies outside the string.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

var upper = cases.Upper(language.Und)

// Len returns the number of codepoints in s.
func Len(s string) int {
	return xstrings.Len(s)
}

// Slice returns the codepoints of s in [i, j). The range must satisfy 1 <= i <= j <= Len(s)+1.
func Slice(s string, i, j int) (string, error) {
	if i < 1 || j < i || j > Len(s)+1 {
		return "", ErrIndexOutOfBounds
	}
	return xstrings.Slice(s, i-1, j-1), nil
}

// Index returns the i-th codepoint of s as a string.
func Index(s string, i int) (string, error) {
	if i < 1 {
		return "", ErrIndexOutOfBounds
	}
	n := 0
	for _, r := range s {
		n++
		if n == i {
			return string(r), nil
		}
	}
	return "", ErrIndexOutOfBounds
}

// Center pads s on both sides with the first codepoint of fill until it is width codepoints
// wide. When the padding is odd the extra codepoint goes on the right. An empty fill pads
// with spaces. Strings already at least width wide are returned as is.
func Center(s string, width int, fill string) string {
	n := Len(s)
	if width <= n {
		return s
	}
	pad := " "
	if fill != "" {
		r, _ := utf8.DecodeRuneInString(fill)
		pad = string(r)
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, right)
}

// Count returns the number of non-overlapping occurrences of sub in s.
// An empty sub matches at every insertion point, Len(s)+1 times.
func Count(s, sub string) int {
	return strings.Count(s, sub)
}

// Find returns the 1-based codepoint position of the first occurrence of sub in s,
// or 0 when there is none. An empty sub is found at 1.
func Find(s, sub string) int {
	if sub == "" {
		return 1
	}
	i := strings.Index(s, sub)
	if i < 0 {
		return 0
	}
	return utf8.RuneCountInString(s[:i]) + 1
}

// ExpandTabs replaces each tab with spaces up to the next column that is a multiple of
// tabSize. The column count restarts after every newline. A tabSize of zero or less
// removes tabs.
func ExpandTabs(s string, tabSize int) string {
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			if tabSize <= 0 {
				continue
			}
			spaces := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// Capitalize upper-cases the first codepoint of s using full Unicode case mapping, which
// may expand it into several codepoints, and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return upper.String(string(r)) + s[size:]
}

// Contains reports whether sub is within s.
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// IsASCII reports whether every byte of s is ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Max returns the codepoint of s with the highest value, or "\x00" for an empty string.
func Max(s string) string {
	var m rune
	for _, r := range s {
		if r > m {
			m = r
		}
	}
	return string(m)
}

// Min returns the codepoint of s with the lowest value, or "\x00" for an empty string.
func Min(s string) string {
	if s == "" {
		return "\x00"
	}
	m := rune(utf8.MaxRune)
	for _, r := range s {
		if r < m {
			m = r
		}
	}
	return string(m)
}

// Rep returns s repeated n times; n of zero or less yields "".
func Rep(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// Reverse returns s with its codepoints in reverse order.
func Reverse(s string) string {
	return xstrings.Reverse(s)
}
