package md2doc

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2doc/internal/smarty"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ documentParser = (*goldmarkParser)(nil)
	_ typographer    = (*smartyPass)(nil)
)

// typographer is the contract for the typographic substitution pass:
// already-rendered bytes in, substituted bytes out, per output family.
type typographer interface {
	SubstituteHTML(b []byte) []byte
	SubstituteRoff(b []byte) []byte
}

// smartyPass implements typographer on the internal/smarty scanners.
type smartyPass struct{}

func (smartyPass) SubstituteHTML(b []byte) []byte { return smarty.HTML(b) }
func (smartyPass) SubstituteRoff(b []byte) []byte { return smarty.Roff(b) }

// Converter orchestrates the markdown-to-document pipeline. Create with
// NewConverter, then call RenderBuffer or RenderFile per conversion.
// Each call builds and tears down its own parser and renderer, so a
// single Converter is safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	newParser func(o *Options) documentParser
	smarty    typographer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLogger, WithNow).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "md2doc"}),
			now:    time.Now,
		},
		newParser: newGoldmarkParser,
		smarty:    smartyPass{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
