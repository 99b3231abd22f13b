package internal

import (
	"regexp"
	"strings"
)

// SegmentKind tells prose from fenced code
type SegmentKind string

const (
	SegmentText SegmentKind = "text"
	SegmentCode SegmentKind = "code"
)

// Segment is one renderable piece of an assistant reply. Raw holds the exact
// source text so that joining all segments reproduces the input.
type Segment struct {
	Kind     SegmentKind `json:"kind"`
	Raw      string      `json:"-"`
	Text     string      `json:"text,omitempty"`
	Code     string      `json:"code,omitempty"`
	Language string      `json:"language,omitempty"`
}

// CodeBlock represents a fenced code block in a message
type CodeBlock struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string `json:"content" yaml:"content"`
}

// opening fence, optional language tag, newline, lazily matched body, closing fence
var fencePattern = regexp.MustCompile("(?s)```([A-Za-z0-9_+#.\\-]*)[ \\t]*\\r?\\n(.*?)```")

// ParseSegments splits text into alternating prose and code segments in
// source order. Unterminated fences stay prose. Text without fences yields
// a single text segment; empty text yields none.
func ParseSegments(text string) []Segment {
	if text == "" {
		return nil
	}

	matches := fencePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Raw: text, Text: text}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			prose := text[last:start]
			segments = append(segments, Segment{Kind: SegmentText, Raw: prose, Text: prose})
		}
		lang := text[m[2]:m[3]]
		body := strings.TrimSuffix(strings.TrimSuffix(text[m[4]:m[5]], "\n"), "\r")
		segments = append(segments, Segment{
			Kind:     SegmentCode,
			Raw:      text[start:end],
			Code:     body,
			Language: lang,
		})
		last = end
	}
	if last < len(text) {
		prose := text[last:]
		segments = append(segments, Segment{Kind: SegmentText, Raw: prose, Text: prose})
	}

	return segments
}

// JoinSegments reassembles the source text of segments
func JoinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Raw)
	}
	return b.String()
}

// ExtractCodeBlocks returns only the fenced code blocks of text
func ExtractCodeBlocks(text string) []CodeBlock {
	var blocks []CodeBlock
	for _, s := range ParseSegments(text) {
		if s.Kind == SegmentCode {
			blocks = append(blocks, CodeBlock{Language: s.Language, Content: s.Code})
		}
	}
	return blocks
}

// HasCode reports whether text contains at least one complete fenced block
func HasCode(text string) bool {
	return fencePattern.MatchString(text)
}
