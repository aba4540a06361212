package cmd

import (
	"github.com/spf13/cobra"
)

var (
	scCat1   string
	scCat2   string
	scOutput string
)

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Render two quality categories against each other, colored by variety",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		p := cfg.Preferences()
		cat1, cat2 := p.Category1, p.Category2
		if cmd.Flags().Changed("cat1") {
			cat1 = scCat1
		}
		if cmd.Flags().Changed("cat2") {
			cat2 = scCat2
		}
		s, err := renderer().CategoryScatter(t, cat1, cat2)
		if err != nil {
			return err
		}
		return writeJSON(cmd, scOutput, s)
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)
	scatterCmd.Flags().StringVar(&scCat1, "cat1", "", "x-axis category (default from config: aroma)")
	scatterCmd.Flags().StringVar(&scCat2, "cat2", "", "y-axis category (default from config: sweetness)")
	scatterCmd.Flags().StringVarP(&scOutput, "output", "o", "", "write JSON to file instead of stdout")
}
