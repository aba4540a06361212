package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/dataset"
	"github.com/KaramelBytes/beanview/internal/utils"
	"github.com/KaramelBytes/beanview/internal/views"
)

// loadTable reads and cleans the configured data source.
func loadTable(cmd *cobra.Command) (*dataset.Table, error) {
	if cfg.DataPath == "" {
		return nil, fmt.Errorf("no dataset: pass --data <file> or run 'beanview config set data_path <file>'")
	}
	path, err := utils.ExpandHome(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	opt, err := cfg.LoadOptions()
	if err != nil {
		return nil, err
	}
	opt.Logger = logger
	t, err := dataset.Load(cmd.Context(), path, opt)
	if err != nil {
		return nil, err
	}
	for _, w := range t.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s\n", w)
	}
	return t, nil
}

func renderer() *views.Renderer {
	return views.NewRenderer(cfg.ViewOptions())
}

// writeOutput prints data to stdout, or writes it to path when path is set.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := utils.SafeWriteFile(path, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}

// writeJSON renders v as indented JSON through writeOutput.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	b, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	return writeOutput(cmd, path, b)
}
