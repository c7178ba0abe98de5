package pipeline

import (
	"regexp"
	"strings"
)

// Shape is the kind of JSON payload expected in a response
type Shape int

const (
	ShapeArray Shape = iota
	ShapeObject
)

func (s Shape) delimiters() (string, string) {
	if s == ShapeArray {
		return "[", "]"
	}
	return "{", "}"
}

// minPayloadLength rejects candidates too short to hold a usable payload
const minPayloadLength = 10

var (
	fenceRe = regexp.MustCompile("```[A-Za-z0-9_+-]*")
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// CleanResponse removes reasoning blocks, code fence markers and blank lines.
func CleanResponse(raw string) string {
	text := thinkRe.ReplaceAllString(raw, "")
	text = fenceRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, strings.TrimRight(line, "\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// ExtractPayload isolates the outermost array or object in raw.
// It takes everything from the first opening delimiter to the last closing one,
// so prose around the payload is tolerated but interleaved fragments are not.
func ExtractPayload(raw string, shape Shape) (string, error) {
	text := CleanResponse(raw)
	openDelim, closeDelim := shape.delimiters()

	start := strings.Index(text, openDelim)
	end := strings.LastIndex(text, closeDelim)
	if start == -1 || end == -1 {
		return "", stageErrorf(ExtractionFailed, "no %s...%s payload found", openDelim, closeDelim)
	}
	if start >= end {
		return "", stageErrorf(ExtractionFailed, "payload delimiters out of order (open at %d, close at %d)", start, end)
	}

	payload := text[start : end+1]
	if len(payload) < minPayloadLength {
		return "", stageErrorf(ExtractionFailed, "payload too short (%d chars)", len(payload))
	}
	return payload, nil
}
