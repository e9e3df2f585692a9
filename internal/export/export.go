// Package export serializes an assembled corpus into training-ready file
// formats. Pairs are written in the order given; export never reorders,
// deduplicates, or drops.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/swsemantic/swcorpus/internal/corpus"
)

// AlpacaRecord is one instruction-tuning example in the Alpaca layout.
// Input is always empty: each instruction is self-contained.
type AlpacaRecord struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

func toAlpaca(pairs []corpus.Pair) []AlpacaRecord {
	recs := make([]AlpacaRecord, len(pairs))
	for i, p := range pairs {
		recs[i] = AlpacaRecord{Instruction: p.Instruction, Output: p.Code}
	}
	return recs
}

// WriteAlpaca writes the pairs as a pretty-printed Alpaca JSON array.
func WriteAlpaca(w io.Writer, pairs []corpus.Pair) error {
	b, err := json.MarshalIndent(toAlpaca(pairs), "", "  ")
	if err != nil {
		return fmt.Errorf("export: alpaca marshal: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("export: alpaca write: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("export: alpaca write: %w", err)
	}
	return nil
}

// WriteJSONL writes one compact Alpaca record per line.
func WriteJSONL(w io.Writer, pairs []corpus.Pair) error {
	enc := json.NewEncoder(w)
	for i, rec := range toAlpaca(pairs) {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("export: jsonl record %d: %w", i, err)
		}
	}
	return nil
}
