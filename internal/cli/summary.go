package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourname/healthtracker/internal/metrics"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Build the dashboard from an exported health log",
		Long:  "Reads a JSON export (health, exercises, sleep, water, mood, meals, goals) from --file, or stdin when --file is -, and prints the dashboard.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := opts.reference()
			if err != nil {
				return err
			}
			in, err := readExport(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			d := metrics.BuildDashboard(in, now)
			return opts.write(cmd.OutOrStdout(), d, func() string { return renderDashboard(d) })
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON export, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readExport(path string, stdin io.Reader) (metrics.DashboardInput, error) {
	var in metrics.DashboardInput
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return in, err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("decode %s: %w", path, err)
	}
	return in, nil
}
