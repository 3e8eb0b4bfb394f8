package internal

import "strings"

// Split splits text on delim, treating parenthesized spans as opaque: the
// delimiter only splits at parenthesis depth 0. Depth is floored at zero so
// a stray closing parenthesis cannot hide later delimiters. Empty segments
// between adjacent delimiters are kept; an empty trailing buffer is dropped.
func Split(text string, delim byte) []string {
	var parts []string
	var sb strings.Builder
	depth := 0

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == CharOpenParen:
			depth++
			sb.WriteByte(ch)
		case ch == CharCloseParen:
			if depth > 0 {
				depth--
			}
			sb.WriteByte(ch)
		case ch == delim && depth == 0:
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(ch)
		}
	}

	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	return parts
}
