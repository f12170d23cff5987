// Package cli holds the healthctl commands. They run the metrics package
// directly over flags or a JSON export, without a server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	now    string
	pretty bool
	format string
}

// NewRootCmd builds the healthctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "Health metrics from the command line",
		Long:          "Estimate calories, score sleep and summarize an exported health log.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.now, "now", "", "Reference time (RFC3339), defaults to the current time")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", true, "Indent JSON output")
	root.PersistentFlags().StringVarP(&opts.format, "format", "o", "json", "Output format: json or text")

	root.AddCommand(
		newCaloriesCmd(opts),
		newActivitiesCmd(opts),
		newSleepCmd(opts),
		newSummaryCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

func (o *options) reference() (time.Time, error) {
	if o.now == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return t, nil
}

// write prints v as JSON, or as text() when --format=text and the command
// has a text form.
func (o *options) write(w io.Writer, v any, text func() string) error {
	switch o.format {
	case "json":
		return o.writeJSON(w, v)
	case "text":
		if text == nil {
			return o.writeJSON(w, v)
		}
		_, err := fmt.Fprintln(w, text())
		return err
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}

func (o *options) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
