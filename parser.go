package md2doc

import (
	"bytes"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2doc/internal/metadata"
	"github.com/alnah/go-md2doc/internal/roff"
)

// documentParser is the contract between the orchestrator and the
// markdown engine: one call consumes raw input and produces a rendered
// body plus the ordered metadata sequence. Implementations must hold no
// state shared across instances.
type documentParser interface {
	Render(data []byte) (body []byte, meta []Meta, err error)
}

// Precompiled regex patterns for performance.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// goldmarkParser implements documentParser on goldmark, with the
// renderer variant selected from the output type.
type goldmarkParser struct {
	md         goldmark.Markdown
	feats      Feature
	maxNesting int
	roffSafe   bool
}

// newGoldmarkParser builds a parser configured for one conversion call.
func newGoldmarkParser(o *Options) documentParser {
	var exts []goldmark.Extender
	feats := o.features()
	if feats&FeatureTables != 0 {
		exts = append(exts, extension.GFM)
	}
	if feats&FeatureFootnotes != 0 {
		exts = append(exts, extension.Footnote)
	}
	if feats&FeatureDefinitionLists != 0 {
		exts = append(exts, extension.DefinitionList)
	}

	var md goldmark.Markdown
	if o.outputType() == TypeHTML {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
		var ropts []renderer.Option
		flags := o.flags()
		if flags&FlagHardWraps != 0 {
			ropts = append(ropts, html.WithHardWraps())
		}
		if flags&FlagXHTML != 0 {
			ropts = append(ropts, html.WithXHTML())
		}
		if flags&FlagUnsafe != 0 {
			ropts = append(ropts, html.WithUnsafe())
		}
		md = goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRendererOptions(ropts...),
		)
	} else {
		md = goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRenderer(roff.NewRenderer(roff.Config{
				Man: o.outputType() == TypeMan,
			})),
		)
	}

	return &goldmarkParser{
		md:         md,
		feats:      feats,
		maxNesting: o.maxNesting(),
		roffSafe:   o.roffSafe(),
	}
}

// Render parses data and renders it with the configured renderer,
// returning the body and any front matter metadata in document order.
func (p *goldmarkParser) Render(data []byte) ([]byte, []Meta, error) {
	data = crlfOrCR.ReplaceAll(data, []byte("\n"))
	if p.roffSafe {
		data = stripControlBytes(data)
	}

	var meta []Meta
	if p.feats&FeatureMetadata != 0 {
		entries, rest := metadata.Extract(data)
		meta = toMeta(entries)
		data = rest
	}

	doc := p.md.Parser().Parse(text.NewReader(data))
	clampNesting(doc, p.maxNesting)

	var buf bytes.Buffer
	if err := p.md.Renderer().Render(&buf, data, doc); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), meta, nil
}

// toMeta converts extracted front matter entries to the public type.
func toMeta(entries []metadata.Entry) []Meta {
	if entries == nil {
		return nil
	}
	meta := make([]Meta, len(entries))
	for i, e := range entries {
		meta[i] = Meta{Key: e.Key, Value: e.Value}
	}
	return meta
}

// stripControlBytes removes control characters that roff cannot
// represent, keeping tabs and newlines.
func stripControlBytes(data []byte) []byte {
	if !bytes.ContainsFunc(data, isRoffHostile) {
		return data
	}
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if !isRoffHostile(rune(b)) {
			out = append(out, b)
		}
	}
	return out
}

func isRoffHostile(r rune) bool {
	return r < 0x20 && r != '\n' && r != '\t'
}

// clampNesting drops block nodes nested deeper than limit, bounding the
// structural depth the renderer has to handle.
func clampNesting(n ast.Node, limit int) {
	clampAt(n, 0, limit)
}

func clampAt(n ast.Node, depth, limit int) {
	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		if depth+1 > limit && c.Type() == ast.TypeBlock {
			n.RemoveChild(n, c)
		} else {
			clampAt(c, depth+1, limit)
		}
		c = next
	}
}
