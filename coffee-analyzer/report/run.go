package report

import (
	"fmt"
	"io"
	"os"
)

// Run loads the table, prints the analysis to w and writes the chart
// workbooks. Nothing is created on disk unless the table loads.
func Run(opts Options, w io.Writer) (*Report, error) {
	fmt.Fprintln(w, "Loading data...")
	transactions, err := Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(transactions, opts)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	printer := NewPrinter(w)
	printer.Print(report, opts.TopN)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- GENERATING VISUALIZATIONS ---")
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", opts.OutputDir, err)
	}
	for _, chart := range Charts(report) {
		path, err := chart.Write(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		log.Debugf("Chart %q: %d points", chart.Title, len(chart.Points))
		fmt.Fprintf(w, "Saved: %s\n", path)
	}

	fmt.Fprintf(w, "\nAnalysis Complete. Visualizations saved in '%s/' folder.\n", opts.OutputDir)
	return report, nil
}
