package roff

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
)

func (r *roffRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	r.text(w, n.Segment.Value(source))
	switch {
	case n.HardLineBreak():
		r.macro(w, ".br")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
		r.atNewline = true
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderString(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.text(w, node.(*ast.String).Value)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderCodeSpan(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.raw(w, `\f(CW`)
	} else {
		r.raw(w, `\fP`)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderEmphasis(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	font := `\fI`
	if node.(*ast.Emphasis).Level >= 2 {
		font = `\fB`
	}
	if entering {
		r.raw(w, font)
	} else {
		r.raw(w, `\fP`)
	}
	return ast.WalkContinue, nil
}

// renderLink emits the link text followed by the destination in angle
// marks, the customary form for typeset pages.
func (r *roffRenderer) renderLink(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		n := node.(*ast.Link)
		r.raw(w, ` \(la`)
		r.text(w, n.Destination)
		r.raw(w, `\(ra`)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.AutoLink)
		r.raw(w, `\(la`)
		r.text(w, n.URL(source))
		r.raw(w, `\(ra`)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderImage(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		n := node.(*ast.Image)
		r.raw(w, ` \(la`)
		r.text(w, n.Destination)
		r.raw(w, `\(ra`)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderRawHTML(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}

func (r *roffRenderer) renderTable(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*east.Table)
		r.macro(w, ".TS")
		r.raw(w, "allbox;\n")
		r.raw(w, tableFormat(n.Alignments))
	} else {
		r.macro(w, ".TE")
	}
	return ast.WalkContinue, nil
}

// tableFormat builds the tbl format section: one centered line for the
// header row and one aligned line, terminated by a dot, for the rest.
func tableFormat(alignments []east.Alignment) string {
	header := make([]string, len(alignments))
	body := make([]string, len(alignments))
	for i, a := range alignments {
		header[i] = "c"
		switch a {
		case east.AlignRight:
			body[i] = "r"
		case east.AlignCenter:
			body[i] = "c"
		default:
			body[i] = "l"
		}
	}
	return strings.Join(header, " ") + "\n" + strings.Join(body, " ") + ".\n"
}

func (r *roffRenderer) renderTableHeader(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderTableRow(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderTableCell(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering && node.NextSibling() != nil {
		_ = w.WriteByte('\t')
		r.atNewline = false
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderStrikethrough(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	// roff has no strikethrough; keep the text.
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderTaskCheckBox(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		if node.(*east.TaskCheckBox).IsChecked {
			r.raw(w, "[x] ")
		} else {
			r.raw(w, "[ ] ")
		}
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderFootnoteLink(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.raw(w, fmt.Sprintf("[%d]", node.(*east.FootnoteLink).Index))
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderFootnoteBacklink(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}

func (r *roffRenderer) renderFootnote(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.macro(w, fmt.Sprintf(".IP %d. 4", node.(*east.Footnote).Index))
	} else {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderFootnoteList(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		if r.cfg.Man {
			r.macro(w, ".SH NOTES")
		} else {
			r.macro(w, ".SH")
			r.raw(w, "Notes\n")
		}
	} else {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderDefinitionList(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderDefinitionTerm(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		if r.cfg.Man {
			r.macro(w, ".TP")
		} else {
			r.newline(w)
			r.raw(w, `\fB`)
		}
	} else {
		if !r.cfg.Man {
			r.raw(w, `\fP`)
		}
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderDefinitionDescription(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if r.cfg.Man {
		if !entering {
			r.newline(w)
		}
		return ast.WalkContinue, nil
	}
	if entering {
		r.macro(w, ".RS")
	} else {
		r.macro(w, ".RE")
	}
	return ast.WalkContinue, nil
}
