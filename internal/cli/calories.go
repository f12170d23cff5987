package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/healthtracker/internal/metrics"
)

func newCaloriesCmd(opts *options) *cobra.Command {
	var (
		activity string
		minutes  string
		weight   float64
	)
	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Estimate calories burned for an activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := metrics.LookupMET(activity)
			if err != nil {
				return err
			}
			d, err := metrics.ParseDuration(minutes)
			if err != nil {
				return err
			}
			kcal, err := metrics.CaloriesForMET(a.MET, d, weight)
			if err != nil {
				return err
			}
			out := map[string]any{
				"activity": a.Name,
				"met":      a.MET,
				"minutes":  d,
				"weight":   weight,
				"calories": kcal,
			}
			return opts.write(cmd.OutOrStdout(), out, func() string {
				return section("Calories", [][2]string{
					{"Activity", a.Name},
					{"MET", num(a.MET)},
					{"Minutes", num(d)},
					{"Weight (kg)", num(weight)},
					{"Burned (kcal)", fmt.Sprint(kcal)},
				})
			})
		},
	}
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "Activity name from the MET table")
	cmd.Flags().StringVarP(&minutes, "minutes", "m", "", "Duration in minutes")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 70, "Body weight in kg")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newActivitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List known activities and their MET values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			acts := metrics.Activities()
			return opts.write(cmd.OutOrStdout(), acts, func() string { return renderActivities(acts) })
		},
	}
}
