package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

const missingPreview = "NaN"

// Preview prints a confirmation line and the first n rows as an aligned table.
func Preview(w io.Writer, path string, ds *domain.Dataset, n int) error {
	if _, err := fmt.Fprintf(w, "Dataset generated: %s\n", path); err != nil {
		return err
	}
	if n > len(ds.Records) {
		n = len(ds.Records)
	}
	if n <= 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(domain.Columns, "\t"))
	row := make([]string, len(domain.Columns))
	for i := 0; i < n; i++ {
		formatRecord(&ds.Records[i], row)
		for j, cell := range row {
			if cell == "" {
				row[j] = missingPreview
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", i, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
