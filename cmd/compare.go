package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/views"
)

var (
	cmpCountry1  string
	cmpCountry2  string
	cmpNormalize bool
	cmpOutput    string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the score distribution of two countries",
	Long: `Overlay the total_cup_points distribution of two countries of origin in 30 bins.
Without --country1/--country2 the configured defaults are used, falling back to the
first two countries in the data when a default is not present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		cs := views.Controls(t, cfg.Preferences())
		c1, c2, normalize := cs.Country1, cs.Country2, cs.Normalize
		if cmd.Flags().Changed("country1") {
			c1 = cmpCountry1
		}
		if cmd.Flags().Changed("country2") {
			c2 = cmpCountry2
		}
		if cmd.Flags().Changed("normalize") {
			normalize = cmpNormalize
		}
		h, err := renderer().CountryHistogram(t, c1, c2, normalize)
		if err != nil {
			return err
		}
		return writeJSON(cmd, cmpOutput, h)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&cmpCountry1, "country1", "", "first country of origin")
	compareCmd.Flags().StringVar(&cmpCountry2, "country2", "", "second country of origin")
	compareCmd.Flags().BoolVar(&cmpNormalize, "normalize", true, "show each country as a percentage of its own samples")
	compareCmd.Flags().StringVarP(&cmpOutput, "output", "o", "", "write JSON to file instead of stdout")
}
