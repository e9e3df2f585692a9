package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/swsemantic/swcorpus/internal/corpus"
)

// SummaryJSON produces a pretty-printed JSON representation of the
// per-generator counts. The output round-trips through json.Unmarshal.
func SummaryJSON(res *Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("pipeline: nil result")
	}
	doc := struct {
		Total      int              `json:"total"`
		Generators []GeneratorCount `json:"generators"`
	}{Total: res.Total(), Generators: res.Counts}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("pipeline: json marshal: %w", err)
	}
	return b, nil
}

// SummaryMarkdown produces a Markdown table of per-generator counts,
// suitable for terminal output. Every registered generator appears in
// the output, in run order.
func SummaryMarkdown(res *Result) string {
	if res == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Corpus Summary\n\n")
	fmt.Fprintf(&sb, "**Total pairs:** %d\n\n", res.Total())
	sb.WriteString("| Generator | Pairs |\n")
	sb.WriteString("|---|---|\n")
	for _, c := range res.Counts {
		fmt.Fprintf(&sb, "| %s | %d |\n", c.Name, c.Pairs)
	}
	return sb.String()
}

// Duplicate records an instruction that appears in more than one pair.
type Duplicate struct {
	Instruction string
	Count       int
}

// Duplicates reports instructions shared by multiple pairs, most
// frequent first, ties broken by instruction text. Duplicates across
// generators are legal in the corpus; this is diagnostic output only.
func Duplicates(pairs []corpus.Pair) []Duplicate {
	counts := make(map[string]int, len(pairs))
	for _, p := range pairs {
		counts[p.Instruction]++
	}
	var out []Duplicate
	for instr, n := range counts {
		if n > 1 {
			out = append(out, Duplicate{Instruction: instr, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Instruction < out[j].Instruction
	})
	return out
}
