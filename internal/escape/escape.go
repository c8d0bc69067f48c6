// Package escape neutralizes HTML metacharacters in user supplied text before
// it is stored.
//
// Only five characters are rewritten:
//
//	<  &lt;
//	>  &gt;
//	"  &quot;
//	'  &#x27;
//	&  &amp;
//
// Escaping is not idempotent. Running it twice turns "&lt;" into "&amp;lt;".
package escape

import "strings"

// String returns s with the five HTML metacharacters replaced by entities.
// Every other rune is copied unchanged.
func String(s string) string {
	if strings.IndexAny(s, `<>"'&`) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Nullable escapes the value behind s. A nil pointer is returned as nil.
func Nullable(s *string) *string {
	if s == nil {
		return nil
	}
	escaped := String(*s)
	return &escaped
}
