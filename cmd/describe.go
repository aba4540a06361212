package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/analysis"
)

var (
	descSampleRows int
	descTopValues  int
	descOutput     string
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Profile the cleaned dataset as Markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		opt := analysis.DefaultOptions()
		if cmd.Flags().Changed("sample-rows") {
			opt.SampleRows = descSampleRows
		}
		if descTopValues > 0 {
			opt.TopValues = descTopValues
		}
		return writeOutput(cmd, descOutput, []byte(analysis.Summarize(t, opt).Markdown()))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().IntVar(&descSampleRows, "sample-rows", 5, "number of sample rows to include")
	describeCmd.Flags().IntVar(&descTopValues, "top", 0, "top values listed per categorical column (default 8)")
	describeCmd.Flags().StringVarP(&descOutput, "output", "o", "", "write the report to file instead of stdout")
}
