// Package md2doc converts Markdown documents to HTML, roff -ms, or
// man(7) output.
//
// # Quick Start
//
// Create a converter and render:
//
//	conv := md2doc.NewConverter()
//	body, meta, err := conv.RenderBuffer(&md2doc.Options{
//	    Type:     md2doc.TypeHTML,
//	    Features: md2doc.FeatureTables | md2doc.FeatureMetadata,
//	}, input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A nil *Options is valid and means HTML output with no extensions. The
// returned body is a document fragment; wrap it into a complete document
// with StandaloneOpen and StandaloneClose:
//
//	out := conv.StandaloneOpen(opts, meta)
//	out = append(out, body...)
//	out = append(out, conv.StandaloneClose(opts)...)
//
// # Conversion Pipeline
//
// Each RenderBuffer call follows these stages:
//
//  1. Line-ending normalization (and control-byte stripping for roff)
//  2. YAML front matter extraction into ordered metadata (FeatureMetadata)
//  3. Markdown parsing via Goldmark with the configured extensions
//  4. Rendering: Goldmark HTML with syntax highlighting, or roff macros
//  5. Typographic substitution over the rendered bytes (FlagSmarty)
//
// Metadata keys "title", "author", "date", and "rcsdate" drive the
// standalone preamble; all other keys pass through to the caller.
// Conversions are independent: a single Converter is safe for
// concurrent use from multiple goroutines.
package md2doc
