package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Uthara1292/small-business-analysis/aggregator/common"
	dr "github.com/Uthara1292/small-business-analysis/aggregator/common/dataRetainer"

	"github.com/spf13/cast"
)

// PrintRetained writes one retained result as an aligned table headed by
// its name.
func PrintRetained(w io.Writer, retained dr.RetainedData) error {
	columns := append([]string{}, retained.KeyColumns...)
	for _, agg := range retained.Aggregations {
		columns = append(columns, agg.Func+common.AggFuncColSeparator+agg.Col)
	}

	fmt.Fprintf(w, "# %s\n", retained.Name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range retained.Data {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = cast.ToString(value)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
