package md2doc

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadInput  = errors.New("reading input failed")
	ErrConversion = errors.New("markdown conversion failed")
)

// ErrCode identifies a parser-reported document violation. The codes and
// their wording are a compatibility surface; detection itself happens in
// the parser.
type ErrCode int

const (
	// ErrSpaceBeforeLink flags whitespace between link text and target.
	ErrSpaceBeforeLink ErrCode = iota
	// ErrBadMetadataChar flags an invalid character in a metadata key.
	ErrBadMetadataChar

	errCodeMax
)

// errStrs is immutable after initialization; concurrent reads need no
// synchronization.
var errStrs = [errCodeMax]string{
	ErrSpaceBeforeLink: "space before link (CommonMark violation)",
	ErrBadMetadataChar: "bad character in metadata key (MultiMarkdown violation)",
}

// String returns the human-readable message for a parser error code.
// Out-of-range codes yield "unknown error" rather than panicking.
func (e ErrCode) String() string {
	if e < 0 || e >= errCodeMax {
		return "unknown error"
	}
	return errStrs[e]
}
