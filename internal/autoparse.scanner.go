package internal

import "strings"

// ParsedTag is a recognized tag occurrence: the raw un-split path, an
// optional post-processor identifier, and the raw flag suppressing
// sanitization.
type ParsedTag struct {
	Path string
	Post string
	Raw  bool
}

// ResolveBuffer scans text left to right once and replaces every recognized
// tag with its rendered substitution. Non-matching text, including malformed
// tag candidates, passes through verbatim; a candidate that breaks the
// pattern is a silent non-match, never an error.
func (r *Resolver) ResolveBuffer(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	i := 0
	for i < len(text) {
		ch := text[i]
		if ch != TagOpenChar {
			sb.WriteByte(ch)
			i++
			continue
		}

		tag, end, ok := r.scanTag(text, i)
		if !ok {
			sb.WriteByte(ch)
			i++
			continue
		}

		sb.WriteString(r.resolveTag(tag))
		i = end
	}

	return sb.String()
}

// scanTag attempts to recognize a tag starting at the opening delimiter.
// The body is limited to path characters (letters, digits, _, -, :,
// parentheses, quotes, commas, dots, whitespace), must keep its parentheses
// balanced, may end with the raw marker, and must close with />. Returns the
// parsed tag and the index just past the closing delimiter.
func (r *Resolver) scanTag(text string, start int) (ParsedTag, int, bool) {
	bodyStart := start + 1
	depth := 0
	i := bodyStart

	for i < len(text) && i-bodyStart < r.config.MaxTagLength && isBodyByte(text[i]) {
		switch text[i] {
		case CharOpenParen:
			depth++
		case CharCloseParen:
			if depth == 0 {
				return ParsedTag{}, 0, false
			}
			depth--
		}
		i++
	}

	body := text[bodyStart:i]

	raw := false
	if i < len(text) && text[i] == RawMarkerChar {
		raw = true
		i++
	}

	if depth != 0 || !strings.HasPrefix(text[i:], TagCloseSeq) {
		return ParsedTag{}, 0, false
	}

	path, post := splitPostProcessor(body)
	path = strings.TrimSpace(path)
	if path == "" {
		return ParsedTag{}, 0, false
	}

	return ParsedTag{Path: path, Post: post, Raw: raw}, i + len(TagCloseSeq), true
}

// splitPostProcessor detaches a trailing ::identifier suffix from a tag
// body. Only the last :: occurring at parenthesis depth 0 and followed by a
// plain identifier counts; otherwise the whole body is the path.
func splitPostProcessor(body string) (path string, post string) {
	depth := 0
	cut := -1
	for i := 0; i+1 < len(body); i++ {
		switch body[i] {
		case CharOpenParen:
			depth++
		case CharCloseParen:
			if depth > 0 {
				depth--
			}
		case CharColon:
			if depth == 0 && body[i+1] == CharColon && isIdentifier(body[i+2:]) {
				cut = i
			}
		}
	}

	if cut < 0 {
		return body, ""
	}
	return body[:cut], body[cut+len(PostProcSep):]
}

// isBodyByte reports whether ch may appear inside a tag body.
func isBodyByte(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case CharUnderscore, CharHyphen, CharColon, CharDot,
		CharOpenParen, CharCloseParen,
		CharSingleQuote, CharDoubleQuote, CharComma,
		CharSpace, CharTab, CharNewline, CharCarriageRet:
		return true
	}
	return false
}
