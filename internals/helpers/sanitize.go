package helper

import "strings"

// entities produced by SanitizeForHTML; an ampersand that already starts one of
// them is left alone so sanitising twice is a no-op.
var knownEntities = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#x2f;", "&#39;"}

// SanitizeForHTML escapes text for use in HTML element content or quoted
// attributes.
func SanitizeForHTML(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '/':
			b.WriteString("&#x2f;")
		case '\'':
			b.WriteString("&#39;")
		case '&':
			if startsWithEntity(s[i:]) {
				b.WriteByte(ch)
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func startsWithEntity(s string) bool {
	for _, e := range knownEntities {
		if strings.HasPrefix(s, e) {
			return true
		}
	}
	return false
}
