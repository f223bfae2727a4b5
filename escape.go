package md2doc

import "bytes"

// isSpace reports whether b is ASCII whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// escapeHTMLTitle writes v into buf for use inside <title>. Leading
// whitespace is dropped, angle brackets become entities, and every other
// whitespace byte becomes a single space. Ampersands and quotes are left
// alone on purpose: downstream consumers depend on the exact bytes.
// See DESIGN.md before changing it.
func escapeHTMLTitle(buf *bytes.Buffer, v string) {
	i := 0
	for i < len(v) && isSpace(v[i]) {
		i++
	}
	for ; i < len(v); i++ {
		switch {
		case v[i] == '<':
			buf.WriteString("&lt;")
		case v[i] == '>':
			buf.WriteString("&gt;")
		case isSpace(v[i]):
			buf.WriteByte(' ')
		default:
			buf.WriteByte(v[i])
		}
	}
}

// escapeRoff writes v into buf as roff-safe text. Leading whitespace is
// dropped. In block context the text occupies its own line: a leading
// dot gets a zero-width \& guard so roff does not read the line as a
// control request, and a trailing newline terminates it. In inline
// context double quotes are escaped instead, since the text is embedded
// in another control line's quoted argument.
func escapeRoff(buf *bytes.Buffer, v string, block bool) {
	i := 0
	for i < len(v) && isSpace(v[i]) {
		i++
	}
	if block && i < len(v) && v[i] == '.' {
		buf.WriteString("\\&")
	}
	for ; i < len(v); i++ {
		switch {
		case v[i] == '\\':
			buf.WriteString("\\e")
		case !block && v[i] == '"':
			buf.WriteString("\\(dq")
		case isSpace(v[i]):
			buf.WriteByte(' ')
		default:
			buf.WriteByte(v[i])
		}
	}
	if block {
		buf.WriteByte('\n')
	}
}
