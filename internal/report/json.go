package report

import (
	"encoding/json"
	"io"

	"github.com/osuushi/polybench/internal/harness"
)

type document struct {
	Run     string           `json:"run"`
	Results []harness.Result `json:"results"`
}

func JSON(w io.Writer, run string, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Run: run, Results: results})
}
