// Package report renders harness results for people: a text table, JSON for
// other tools, and PNG charts.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polybench/internal/harness"
)

const rowFormat = "  %-10s %10s %12s %10s %14s %10s %14s %12s %14s"

// Write one table per phase, in the order phases first appear in results. In
// each (phase, count) group, the strategy with the lowest mean is highlighted.
func Text(w io.Writer, run string, results []harness.Result, colored bool) error {
	au := aurora.NewAurora(colored)

	if _, err := fmt.Fprintf(w, "%s %s\n", au.Bold("run"), au.Cyan(run)); err != nil {
		return err
	}

	for _, phase := range phasesOf(results) {
		if _, err := fmt.Fprintf(w, "\n%s\n", au.Bold(phase.String())); err != nil {
			return err
		}
		header := fmt.Sprintf(rowFormat, "strategy", "count", "shapes", "iters",
			"mean", "ns/shape", "p99", "allocs/op", "shapes/s")
		if _, err := fmt.Fprintln(w, au.Faint(header)); err != nil {
			return err
		}

		fastest := fastestByCount(results, phase)
		for _, r := range results {
			if r.Phase != phase {
				continue
			}
			row := fmt.Sprintf(rowFormat,
				r.Strategy,
				humanize.Comma(int64(r.Count)),
				humanize.Comma(int64(r.Shapes)),
				humanize.Comma(int64(r.Iterations)),
				duration(r.MeanNs),
				humanize.FormatFloat("#,###.##", r.NsPerShape()),
				duration(float64(r.P99Ns)),
				humanize.FormatFloat("#,###.#", r.AllocsPerOp),
				humanize.SIWithDigits(r.ShapesPerSecond, 2, ""),
			)
			var line interface{} = row
			if fastest[r.Count] == r.Strategy {
				line = au.Green(row)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Report the per-strategy totals from a check.
func Check(w io.Writer, names []string, totals []float64, colored bool) error {
	au := aurora.NewAurora(colored)
	for i, name := range names {
		if i >= len(totals) {
			break
		}
		mark := au.Green("ok")
		if i > 0 && !harness.Agree(totals[0], totals[i]) {
			mark = au.Yellow(fmt.Sprintf("%+g", totals[i]-totals[0]))
		}
		if _, err := fmt.Fprintf(w, "  %-10s %.12g %s\n", name, totals[i], mark); err != nil {
			return err
		}
	}
	return nil
}

func phasesOf(results []harness.Result) []harness.Phase {
	var phases []harness.Phase
	seen := make(map[harness.Phase]bool)
	for _, r := range results {
		if !seen[r.Phase] {
			seen[r.Phase] = true
			phases = append(phases, r.Phase)
		}
	}
	return phases
}

// Name of the fastest strategy at each count, for one phase.
func fastestByCount(results []harness.Result, phase harness.Phase) map[int]string {
	best := make(map[int]harness.Result)
	for _, r := range results {
		if r.Phase != phase {
			continue
		}
		if current, ok := best[r.Count]; !ok || r.MeanNs < current.MeanNs {
			best[r.Count] = r
		}
	}
	names := make(map[int]string, len(best))
	for count, r := range best {
		names[count] = r.Strategy
	}
	return names
}

func duration(ns float64) string {
	return humanize.SIWithDigits(ns/1e9, 2, "s")
}
