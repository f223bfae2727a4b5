// Package metadata extracts YAML front matter as an ordered sequence of
// key/value entries. It works at the YAML AST level rather than through
// map decoding because document order and duplicate keys must survive:
// downstream resolution is last-occurrence-wins over a linear scan, and
// the relative order of entries changes the result.
package metadata

import (
	"bytes"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize caps the front matter block to prevent memory exhaustion
// (default 1MB). Oversized blocks are treated as document content.
var MaxInputSize = 1 << 20

// Entry is one front matter key/value pair in document order.
type Entry struct {
	Key   string
	Value string
}

var delim = []byte("---\n")

// Extract splits data into front matter entries and the remaining
// document. Input must already use LF line endings. When data carries
// no well-formed front matter block the whole input is returned as
// content with no entries; malformed YAML inside the fences is treated
// the same way rather than failing the conversion.
func Extract(data []byte) ([]Entry, []byte) {
	block, rest, ok := split(data)
	if !ok || len(block) > MaxInputSize {
		return nil, data
	}
	if len(block) == 0 {
		return nil, rest
	}

	entries, ok := parseBlock(block)
	if !ok {
		return nil, data
	}
	return entries, rest
}

// split isolates the fenced block. The opening fence must be the very
// first line; the closing fence is the next line consisting of "---".
func split(data []byte) (block, rest []byte, ok bool) {
	if !bytes.HasPrefix(data, delim) {
		return nil, nil, false
	}
	body := data[len(delim):]

	if bytes.HasPrefix(body, []byte("---\n")) {
		return nil, body[4:], true
	}
	end := bytes.Index(body, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(body, []byte("\n---")) {
			return body[:len(body)-4], nil, true
		}
		return nil, nil, false
	}
	return body[:end], body[end+5:], true
}

// parseBlock parses the fenced block entry by entry. Each top-level
// entry becomes its own one-pair document: parsing the whole block at
// once would reject duplicate mapping keys, which are legal here and
// which the last-occurrence-wins resolution depends on.
func parseBlock(block []byte) ([]Entry, bool) {
	var entries []Entry
	for _, chunk := range topLevelChunks(block) {
		f, err := parser.ParseBytes(chunk, 0)
		if err != nil {
			return nil, false
		}
		if len(f.Docs) == 0 || f.Docs[0].Body == nil {
			// Comment-only chunk.
			continue
		}
		pairs := mappingPairs(f.Docs[0].Body)
		if pairs == nil {
			return nil, false
		}
		for _, p := range pairs {
			entries = append(entries, Entry{
				Key:   nodeText(p.Key),
				Value: nodeText(p.Value),
			})
		}
	}
	return entries, true
}

// topLevelChunks groups the block's lines into one chunk per top-level
// entry: a chunk starts at each line whose first byte is not whitespace,
// and indented or blank continuation lines stay with the entry above.
func topLevelChunks(block []byte) [][]byte {
	var chunks [][]byte
	var cur []byte
	for _, line := range bytes.SplitAfter(block, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if cur != nil && line[0] != ' ' && line[0] != '\t' && line[0] != '\n' {
			chunks = append(chunks, cur)
			cur = nil
		}
		cur = append(cur, line...)
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// mappingPairs returns the key/value nodes of a top-level mapping, or
// nil when the document body is not a mapping.
func mappingPairs(body ast.Node) []*ast.MappingValueNode {
	switch n := body.(type) {
	case *ast.MappingNode:
		return n.Values
	case *ast.MappingValueNode:
		// A single-pair document parses as one mapping value.
		return []*ast.MappingValueNode{n}
	default:
		return nil
	}
}

// nodeText renders a scalar node as plain text. Strings come back
// unquoted; anything non-scalar falls back to its YAML source form.
func nodeText(n ast.Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case *ast.StringNode:
		return v.Value
	case *ast.NullNode:
		return ""
	case *ast.LiteralNode:
		return v.Value.Value
	default:
		if tk := n.GetToken(); tk != nil && isScalar(n) {
			return tk.Value
		}
		return n.String()
	}
}

func isScalar(n ast.Node) bool {
	switch n.(type) {
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return true
	}
	return false
}
