// Package parser reads pipe-delimited flashcard files.
//
// The format is loose: fields are separated by '|', and a physical line with
// no separator continues the field that precedes it, so an answer may span
// several lines. The first two fields of a file are a header and are skipped.
package parser

import (
	"strings"

	"csv-flashcards/internal/models"
)

const (
	Separator = '|'

	// headerFields is the number of leading fields that never form a card
	headerFields = 2
)

// Report describes how a file was tokenized
type Report struct {
	Lines             int
	ContinuationLines int
	Segments          int
	HeaderSegments    int
	DroppedSegments   int
	BlankCards        int
}

// Parse turns raw file text into cards in file order. Malformed input is
// recovered on a best-effort basis and never produces an error.
func Parse(raw string) []models.Card {
	cards, _ := ParseWithReport(raw)
	return cards
}

// ParseWithReport is Parse plus tokenizer counters for diagnostics
func ParseWithReport(raw string) ([]models.Card, Report) {
	var report Report

	joined := joinLines(raw, &report)
	segments := splitFields(joined)
	report.Segments = len(segments)
	report.HeaderSegments = min(headerFields, len(segments))

	cards := make([]models.Card, 0, max(0, (len(segments)-headerFields)/2))
	i := headerFields
	for ; i+1 < len(segments); i += 2 {
		card := models.Card{
			Question: trimField(segments[i]),
			Answer:   strings.ReplaceAll(trimField(segments[i+1]), `"`, ""),
		}
		if card.IsBlank() {
			report.BlankCards++
			continue
		}
		cards = append(cards, card)
	}
	if i < len(segments) {
		report.DroppedSegments = len(segments) - i
	}

	return cards, report
}

// trimField strips ASCII control characters and spaces from both ends.
// Unicode spaces such as U+00A0 are content and stay.
func trimField(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// joinLines rebuilds logical records. A line holding a separator starts a new
// field run and is prefixed with one; a line without is a continuation of the
// previous field and is prefixed with a newline. The prefix of the very first
// line is dropped.
func joinLines(raw string, report *Report) string {
	lines := splitLines(raw)
	report.Lines = len(lines)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw) + 1)
	for _, line := range lines {
		if strings.IndexByte(line, Separator) >= 0 {
			b.WriteByte(Separator)
		} else {
			b.WriteByte('\n')
			report.ContinuationLines++
		}
		b.WriteString(line)
	}

	return b.String()[1:]
}

// splitLines splits on \n, \r\n and \r. A terminator at end of input does not
// produce a trailing empty line.
func splitLines(raw string) []string {
	var lines []string
	for len(raw) > 0 {
		idx := strings.IndexAny(raw, "\r\n")
		if idx < 0 {
			lines = append(lines, raw)
			break
		}
		lines = append(lines, raw[:idx])
		if raw[idx] == '\r' && idx+1 < len(raw) && raw[idx+1] == '\n' {
			idx++
		}
		raw = raw[idx+1:]
	}
	return lines
}

// splitFields splits on the separator and drops trailing empty fields
func splitFields(joined string) []string {
	if joined == "" {
		return nil
	}
	segments := strings.Split(joined, string(Separator))
	end := len(segments)
	for end > 0 && segments[end-1] == "" {
		end--
	}
	return segments[:end]
}
