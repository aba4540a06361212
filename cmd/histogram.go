package cmd

import (
	"github.com/spf13/cobra"
)

var (
	histMinScore int
	histOutput   string
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Render the score histogram stacked by variety",
	Long:  "Render the distribution of total_cup_points for records scoring at least --min-score, one stacked series per variety.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		h, err := renderer().ScoreHistogram(t, histMinScore)
		if err != nil {
			return err
		}
		return writeJSON(cmd, histOutput, h)
	},
}

func init() {
	rootCmd.AddCommand(histogramCmd)
	histogramCmd.Flags().IntVar(&histMinScore, "min-score", 0, "minimum total_cup_points to include (0-100)")
	histogramCmd.Flags().StringVarP(&histOutput, "output", "o", "", "write JSON to file instead of stdout")
}
