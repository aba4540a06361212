package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/views"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the legal control choices and their defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		return writeJSON(cmd, "", views.Controls(t, cfg.Preferences()))
	},
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
