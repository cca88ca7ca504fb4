package colormap

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the lookup key for a color map name.
//
// The name is brought to Unicode NFKC, every space separator (NBSP, thin,
// ideographic and similar) becomes an ASCII space, whitespace runs collapse
// to one space, the result is trimmed and finally case-folded. Display names
// such as "Ice → Cyan → White" and "ice  →  cyan → white" share one key.
func Normalize(name string) string {
	s := norm.NFKC.String(name)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) || r == '\u200b' {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(b.String())
}

