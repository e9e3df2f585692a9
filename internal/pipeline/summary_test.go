package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swsemantic/swcorpus/internal/corpus"
)

func sampleResult() *Result {
	return &Result{
		Pairs: []corpus.Pair{
			{Instruction: "a", Code: "c1"},
			{Instruction: "b", Code: "c2"},
			{Instruction: "c", Code: "c3"},
		},
		Counts: []GeneratorCount{
			{Name: "sketch", Pairs: 2},
			{Name: "gdt", Pairs: 1},
		},
	}
}

func TestSummaryJSONRoundTrips(t *testing.T) {
	b, err := SummaryJSON(sampleResult())
	require.NoError(t, err)

	var doc struct {
		Total      int              `json:"total"`
		Generators []GeneratorCount `json:"generators"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, 3, doc.Total)
	require.Len(t, doc.Generators, 2)
	assert.Equal(t, "sketch", doc.Generators[0].Name)
}

func TestSummaryJSONNil(t *testing.T) {
	_, err := SummaryJSON(nil)
	assert.Error(t, err)
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(sampleResult())
	assert.Contains(t, md, "**Total pairs:** 3")
	assert.Contains(t, md, "| sketch | 2 |")
	assert.Contains(t, md, "| gdt | 1 |")
	// Run order is preserved in the table.
	assert.Less(t, strings.Index(md, "| sketch |"), strings.Index(md, "| gdt |"))
}

func TestDuplicates(t *testing.T) {
	pairs := []corpus.Pair{
		{Instruction: "same", Code: "a"},
		{Instruction: "unique", Code: "b"},
		{Instruction: "same", Code: "c"},
		{Instruction: "thrice", Code: "d"},
		{Instruction: "thrice", Code: "e"},
		{Instruction: "thrice", Code: "f"},
	}
	got := Duplicates(pairs)
	require.Len(t, got, 2)
	assert.Equal(t, Duplicate{Instruction: "thrice", Count: 3}, got[0])
	assert.Equal(t, Duplicate{Instruction: "same", Count: 2}, got[1])
}

func TestDuplicatesNone(t *testing.T) {
	pairs := []corpus.Pair{{Instruction: "a", Code: "x"}, {Instruction: "b", Code: "y"}}
	assert.Empty(t, Duplicates(pairs))
}
