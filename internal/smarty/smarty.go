// Package smarty performs typographic substitution over already-rendered
// output: straight quotes become curly quotes, double and triple hyphens
// become dashes, and triple dots become an ellipsis. The pass is
// format-aware: the HTML variant leaves tag interiors and preformatted
// content alone, the roff variant leaves control lines and escape
// sequences alone.
package smarty

import (
	"bytes"
	"strings"
)

// dialect holds the replacement strings for one output family.
type dialect struct {
	ldquo, rdquo string
	lsquo, rsquo string
	ndash, mdash string
	hellip       string
	openAfter    string // bytes after which a quote opens
	quotEntity   bool   // also recognize &quot; as a double quote
}

var (
	htmlDialect = dialect{
		ldquo: "&#8220;", rdquo: "&#8221;",
		lsquo: "&#8216;", rsquo: "&#8217;",
		ndash: "&#8211;", mdash: "&#8212;",
		hellip:    "&#8230;",
		openAfter: " \t\n([{->",
		// HTML renderers emit text quotes as entities.
		quotEntity: true,
	}
	roffDialect = dialect{
		ldquo: `\(lq`, rdquo: `\(rq`,
		lsquo: `\(oq`, rsquo: `\(cq`,
		ndash: `\(en`, mdash: `\(em`,
		hellip:    `\[u2026]`,
		openAfter: " \t\n([{-",
	}
)

// opensQuote reports whether a quote following prev starts a quotation.
// A zero prev means start of input.
func (d *dialect) opensQuote(prev byte) bool {
	return prev == 0 || strings.IndexByte(d.openAfter, prev) >= 0
}

// emit writes the substitution for the byte at b[i] and returns how many
// source bytes it consumed.
func (d *dialect) emit(out *bytes.Buffer, b []byte, i int, prev byte) int {
	switch b[i] {
	case '"':
		if d.opensQuote(prev) {
			out.WriteString(d.ldquo)
		} else {
			out.WriteString(d.rdquo)
		}
		return 1
	case '\'':
		if d.opensQuote(prev) {
			out.WriteString(d.lsquo)
		} else {
			out.WriteString(d.rsquo)
		}
		return 1
	case '&':
		if d.quotEntity && bytes.HasPrefix(b[i:], []byte("&quot;")) {
			if d.opensQuote(prev) {
				out.WriteString(d.ldquo)
			} else {
				out.WriteString(d.rdquo)
			}
			return len("&quot;")
		}
	case '-':
		if bytes.HasPrefix(b[i:], []byte("---")) {
			out.WriteString(d.mdash)
			return 3
		}
		if bytes.HasPrefix(b[i:], []byte("--")) {
			out.WriteString(d.ndash)
			return 2
		}
	case '.':
		if bytes.HasPrefix(b[i:], []byte("...")) {
			out.WriteString(d.hellip)
			return 3
		}
	}
	out.WriteByte(b[i])
	return 1
}

// HTML substitutes typographic punctuation in rendered HTML bytes.
func HTML(b []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(b) + len(b)/8)

	verbatim := 0
	prev := byte(0)
	for i := 0; i < len(b); {
		if bytes.HasPrefix(b[i:], []byte("<!--")) {
			// Comments end at -->, not at the first >, and may
			// contain either delimiter byte in between.
			end := bytes.Index(b[i:], []byte("-->"))
			if end < 0 {
				out.Write(b[i:])
				break
			}
			out.Write(b[i : i+end+3])
			i += end + 3
			prev = '>'
			continue
		}
		if b[i] == '<' {
			end := bytes.IndexByte(b[i:], '>')
			if end < 0 {
				out.Write(b[i:])
				break
			}
			tag := b[i : i+end+1]
			out.Write(tag)
			name, closing := tagName(tag)
			if isVerbatimTag(name) {
				if closing {
					if verbatim > 0 {
						verbatim--
					}
				} else {
					verbatim++
				}
			}
			i += end + 1
			prev = '>'
			continue
		}
		if verbatim > 0 {
			out.WriteByte(b[i])
			prev = b[i]
			i++
			continue
		}
		c := b[i]
		i += htmlDialect.emit(&out, b, i, prev)
		prev = c
	}
	return out.Bytes()
}

// Roff substitutes typographic punctuation in rendered roff bytes.
// Control lines (starting with . or ') and backslash escapes pass
// through untouched so macros and font changes survive.
func Roff(b []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(b) + len(b)/8)

	atLineStart := true
	prev := byte(0)
	for i := 0; i < len(b); {
		if atLineStart && (b[i] == '.' || b[i] == '\'') {
			end := bytes.IndexByte(b[i:], '\n')
			if end < 0 {
				out.Write(b[i:])
				break
			}
			out.Write(b[i : i+end+1])
			i += end + 1
			prev = '\n'
			continue
		}
		if b[i] == '\\' && i+1 < len(b) {
			out.Write(b[i : i+2])
			prev = b[i+1]
			i += 2
			atLineStart = false
			continue
		}
		c := b[i]
		i += roffDialect.emit(&out, b, i, prev)
		prev = c
		atLineStart = c == '\n'
	}
	return out.Bytes()
}

// tagName extracts the element name from a raw tag and whether the tag
// is a closing one.
func tagName(tag []byte) ([]byte, bool) {
	inner := tag[1 : len(tag)-1]
	closing := false
	if len(inner) > 0 && inner[0] == '/' {
		closing = true
		inner = inner[1:]
	}
	end := 0
	for end < len(inner) && isAlnum(inner[end]) {
		end++
	}
	return inner[:end], closing
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isVerbatimTag(name []byte) bool {
	for _, t := range []string{"pre", "code", "script", "style", "kbd", "samp"} {
		if len(name) == len(t) && bytes.EqualFold(name, []byte(t)) {
			return true
		}
	}
	return false
}
