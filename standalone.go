package md2doc

import (
	"bytes"
	"fmt"
)

// defaultTitle is used when metadata carries no title entry.
const defaultTitle = "Untitled article"

// htmlPreamble is the fixed shell emitted before the HTML title.
const htmlPreamble = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>`

// StandaloneOpen builds the preamble that turns a rendered body fragment
// into a complete document: an HTML shell, -ms title macros, or a man(7)
// .TH line, depending on o.Type.
//
// Metadata is resolved in a single pass over meta in stored order. Each
// matching key unconditionally overwrites its slot, so the last
// occurrence wins; for the date slot both "date" and "rcsdate" assign
// it, and a later entry overwrites an earlier one even when its
// normalization fails. If no date survives the scan, the current local
// date is substituted.
func (c *Converter) StandaloneOpen(o *Options, meta []Meta) []byte {
	title := defaultTitle
	var (
		author, date         string
		haveAuthor, haveDate bool
	)

	for _, m := range meta {
		switch m.Key {
		case "title":
			title = m.Value
		case "author":
			author, haveAuthor = m.Value, true
		case "rcsdate":
			date, haveDate = c.normalizeRCSDate(m.Value)
		case "date":
			date, haveDate = c.normalizeDate(m.Value)
		}
	}

	if !haveDate {
		date = c.cfg.now().Format("2006-01-02")
	}

	var buf bytes.Buffer
	switch o.outputType() {
	case TypeHTML:
		buf.WriteString(htmlPreamble)
		escapeHTMLTitle(&buf, title)
		buf.WriteString("</title>\n</head>\n<body>\n")
	case TypeNroff:
		fmt.Fprintf(&buf, ".DA %s\n.TL\n", date)
		escapeRoff(&buf, title, true)
		if haveAuthor {
			buf.WriteString(".AU\n")
			escapeRoff(&buf, author, true)
		}
	case TypeMan:
		buf.WriteString(".TH \"")
		escapeRoff(&buf, title, false)
		fmt.Fprintf(&buf, "\" 7 %s\n", date)
	}
	return buf.Bytes()
}

// StandaloneClose builds the matching postamble for StandaloneOpen.
// Only HTML output needs one; both roff formats close with nothing.
func (c *Converter) StandaloneClose(o *Options) []byte {
	if o.outputType() == TypeHTML {
		return []byte("</body>\n</html>\n")
	}
	return nil
}
