package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return systemError(fmt.Errorf("marshal JSON: %w", err))
	}
	return nil
}

// writeTable prints rows under header, aligned by column, with trailing
// whitespace trimmed from each line.
func writeTable(w io.Writer, header []string, rows [][]string) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// writeFormulaTable prints the standard formula listing.
func writeFormulaTable(w io.Writer, formulas []types.Formula, empty string) {
	if len(formulas) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	rows := make([][]string, len(formulas))
	for i, f := range formulas {
		rows[i] = []string{f.ID, f.Name, f.Category, string(f.Difficulty)}
	}
	writeTable(w, []string{"ID", "NAME", "CATEGORY", "DIFFICULTY"}, rows)
	fmt.Fprintf(w, "Total: %d formula(s)\n", len(formulas))
}
