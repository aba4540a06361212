package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/views"
)

var (
	tblFormat string
	tblLimit  int
	tblOutput string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the cleaned data table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		v := views.RenderTable(t)
		switch tblFormat {
		case "markdown", "md":
			return writeOutput(cmd, tblOutput, []byte(v.Markdown(tblLimit)))
		case "json":
			if tblLimit > 0 && tblLimit < len(v.Rows) {
				v.Rows = v.Rows[:tblLimit]
			}
			return writeJSON(cmd, tblOutput, v)
		default:
			return fmt.Errorf("unsupported --format: %s (use markdown or json)", tblFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVar(&tblFormat, "format", "markdown", "output format: markdown|json")
	tableCmd.Flags().IntVar(&tblLimit, "limit", 20, "maximum rows to print (0 = all)")
	tableCmd.Flags().StringVarP(&tblOutput, "output", "o", "", "write to file instead of stdout")
}
