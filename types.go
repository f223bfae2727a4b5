package md2doc

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// OutputType selects the document format a conversion produces.
type OutputType int

// Output formats.
const (
	TypeHTML  OutputType = iota // HTML5 document
	TypeNroff                   // roff with -ms (technical document) macros
	TypeMan                     // roff with man(7) macros
)

// String returns the conventional short name for the output type.
func (t OutputType) String() string {
	switch t {
	case TypeHTML:
		return "html"
	case TypeNroff:
		return "nroff"
	case TypeMan:
		return "man"
	}
	return fmt.Sprintf("OutputType(%d)", int(t))
}

// Flag is a bitset controlling renderer and post-processing behavior.
type Flag uint32

const (
	// FlagSmarty enables the typographic substitution pass over rendered
	// output (straight quotes, double hyphens, triple dots).
	FlagSmarty Flag = 1 << iota
	// FlagHardWraps renders single newlines as line breaks (HTML only).
	FlagHardWraps
	// FlagXHTML emits self-closing tags (HTML only).
	FlagXHTML
	// FlagUnsafe passes raw HTML blocks through unfiltered (HTML only).
	FlagUnsafe
)

// Feature is a bitset controlling which markdown extensions the parser
// recognizes beyond CommonMark.
type Feature uint32

const (
	// FeatureTables enables GFM tables, strikethrough, autolinks, and
	// task lists.
	FeatureTables Feature = 1 << iota
	// FeatureFootnotes enables [^1] footnotes.
	FeatureFootnotes
	// FeatureDefinitionLists enables PHP-Markdown-style definition lists.
	FeatureDefinitionLists
	// FeatureMetadata enables YAML front matter extraction.
	FeatureMetadata
)

// DefaultMaxNesting bounds block nesting depth during parsing.
const DefaultMaxNesting = 16

// Options configures one conversion call. A nil *Options is valid and
// means all defaults: TypeHTML, no features, no flags, DefaultMaxNesting.
// Options values are read-only inputs and are never mutated.
type Options struct {
	Type       OutputType
	Flags      Flag
	Features   Feature
	MaxNesting int // 0 means DefaultMaxNesting
}

// outputType returns the effective output type, HTML when o is nil.
func (o *Options) outputType() OutputType {
	if o == nil {
		return TypeHTML
	}
	return o.Type
}

// features returns the effective feature bitset, 0 when o is nil.
func (o *Options) features() Feature {
	if o == nil {
		return 0
	}
	return o.Features
}

// flags returns the effective output-flag bitset, 0 when o is nil.
func (o *Options) flags() Flag {
	if o == nil {
		return 0
	}
	return o.Flags
}

// maxNesting returns the effective nesting limit.
func (o *Options) maxNesting() int {
	if o == nil || o.MaxNesting <= 0 {
		return DefaultMaxNesting
	}
	return o.MaxNesting
}

// roffSafe reports whether the parser should pre-normalize characters
// that roff output cannot represent. True exactly when options are
// present and the output type is not HTML.
func (o *Options) roffSafe() bool {
	return o != nil && o.Type != TypeHTML
}

// Meta is one metadata key/value pair in document-appearance order.
// Duplicate keys are legal; consumers resolving a key scan linearly and
// let the last occurrence win.
type Meta struct {
	Key   string
	Value string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger sets the logger used for non-fatal diagnostics such as
// malformed metadata dates.
// Panics if l is nil (programmer error, similar to time.NewTicker).
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("md2doc: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithNow sets the clock used for the current-date fallback in
// StandaloneOpen. Intended for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}
