package parser_test

import (
	"testing"

	"csv-flashcards/internal/models"
	"csv-flashcards/internal/parser"

	"github.com/stretchr/testify/assert"
)

func TestParse_SingleLine(t *testing.T) {
	cards := parser.Parse(`h1|h2|Q1|"A1"|Q2|A2`)

	assert.Equal(t, []models.Card{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}, cards)
}

func TestParse_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "no separators", raw: "no separators here"},
		{name: "several lines without separators", raw: "one\ntwo\nthree\n"},
		{name: "header only", raw: "question|answer\n"},
		{name: "only newlines", raw: "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, parser.Parse(tt.raw))
		})
	}
}

func TestParse_MultiLineAnswer(t *testing.T) {
	raw := "h1|h2\nQ1|first line\nsecond line\nQ2|A2\n"

	cards := parser.Parse(raw)

	assert.Equal(t, []models.Card{
		{Question: "Q1", Answer: "first line\nsecond line"},
		{Question: "Q2", Answer: "A2"},
	}, cards)
}

func TestParse_OneRecordPerLineSkipsFirstRecord(t *testing.T) {
	// The two-field header offset consumes the whole first line.
	raw := "Q0|A0\nQ1|A1\nQ2|A2"

	cards := parser.Parse(raw)

	assert.Equal(t, []models.Card{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}, cards)
}

func TestParse_LeadingLineWithoutSeparator(t *testing.T) {
	raw := "title\nh1|h2|Q|A"

	cards, report := parser.ParseWithReport(raw)

	assert.Equal(t, []models.Card{{Question: "h2", Answer: "Q"}}, cards)
	assert.Equal(t, 1, report.DroppedSegments)
	assert.Equal(t, 1, report.ContinuationLines)
}

func TestParse_TrimsAndStripsQuotes(t *testing.T) {
	raw := `h|h|  "What is Go?"  |  "A ""language"" from Google"  `

	cards := parser.Parse(raw)

	assert.Equal(t, []models.Card{
		{Question: `"What is Go?"`, Answer: "A language from Google"},
	}, cards)
}

func TestParse_TrimsControlCharactersOnly(t *testing.T) {
	cards := parser.Parse("h|h|\t\x01Q\x1f |\u00a0A\u00a0\x00")

	assert.Equal(t, []models.Card{{Question: "Q", Answer: "\u00a0A\u00a0"}}, cards)
}

func TestParse_NonBreakingSpaceIsNotBlank(t *testing.T) {
	cards := parser.Parse("h|h|\u00a0|\u2003")

	assert.Equal(t, []models.Card{{Question: "\u00a0", Answer: "\u2003"}}, cards)
}

func TestParse_DropsUnpairedTrailingSegment(t *testing.T) {
	cards, report := parser.ParseWithReport("h|h|Q1|A1|Q2")

	assert.Equal(t, []models.Card{{Question: "Q1", Answer: "A1"}}, cards)
	assert.Equal(t, 5, report.Segments)
	assert.Equal(t, 2, report.HeaderSegments)
	assert.Equal(t, 1, report.DroppedSegments)
}

func TestParse_TrailingSeparatorsIgnored(t *testing.T) {
	cards := parser.Parse("h|h|Q1|A1|||")

	assert.Equal(t, []models.Card{{Question: "Q1", Answer: "A1"}}, cards)
}

func TestParse_DropsBlankCards(t *testing.T) {
	cards, report := parser.ParseWithReport("h|h| | |Q|A")

	assert.Equal(t, []models.Card{{Question: "Q", Answer: "A"}}, cards)
	assert.Equal(t, 1, report.BlankCards)
}

func TestParse_KeepsHalfEmptyCards(t *testing.T) {
	cards := parser.Parse(`h|h|Q|""`)

	assert.Equal(t, []models.Card{{Question: "Q", Answer: ""}}, cards)
}

func TestParse_LineEndings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "LF", raw: "h|h\nQ|line one\nline two\n"},
		{name: "CRLF", raw: "h|h\r\nQ|line one\r\nline two\r\n"},
		{name: "CR", raw: "h|h\rQ|line one\rline two\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := parser.Parse(tt.raw)
			assert.Equal(t, []models.Card{{Question: "Q", Answer: "line one\nline two"}}, cards)
		})
	}
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	raw := "q|a\n"
	want := make([]models.Card, 0, 26)
	for i := 0; i < 26; i++ {
		q := string(rune('A' + i))
		a := string(rune('a' + i))
		raw += q + "|" + a + "\n"
		want = append(want, models.Card{Question: q, Answer: a})
	}

	assert.Equal(t, want, parser.Parse(raw))
}

func TestParseWithReport_Counters(t *testing.T) {
	raw := "h1|h2\nQ1|A1 part\ncontinued\n\nQ2|A2\n"

	cards, report := parser.ParseWithReport(raw)

	assert.Len(t, cards, 2)
	assert.Equal(t, 5, report.Lines)
	assert.Equal(t, 2, report.ContinuationLines)
	assert.Equal(t, 6, report.Segments)
	assert.Equal(t, 0, report.DroppedSegments)
	assert.Equal(t, "A1 part\ncontinued", cards[0].Answer)
}
