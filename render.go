package md2doc

import (
	"fmt"
	"io"
)

// RenderBuffer converts markdown bytes into a rendered body plus the
// document's ordered metadata. The body is the renderer's output, or,
// when FlagSmarty is set, the typographic substitution pass's output,
// never both. The caller owns the returned slices.
func (c *Converter) RenderBuffer(o *Options, data []byte) ([]byte, []Meta, error) {
	p := c.newParser(o)

	body, meta, err := p.Render(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	// Reprocess the rendered output with typographic substitutions.
	if o != nil && o.Flags&FlagSmarty != 0 {
		if o.Type == TypeHTML {
			body = c.smarty.SubstituteHTML(body)
		} else {
			body = c.smarty.SubstituteRoff(body)
		}
	}

	return body, meta, nil
}

// RenderFile drains r fully and converts the result with RenderBuffer.
// There is no length limit and no internal timeout; callers needing
// cancellation must close the underlying reader. A read error produces
// no output at all.
func (c *Converter) RenderFile(o *Options, r io.Reader) ([]byte, []Meta, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return c.RenderBuffer(o, data)
}
