package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <city>",
	Short: "Show the weather in a city and the mood it suggests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		recommender, err := newRecommender(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		suggestion, err := recommender.SuggestedMoodFor(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), suggestion)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Weather in %s: %s (%s), %.1f°C\n", args[0],
			suggestion.Weather.Description, suggestion.Weather.Conditions, suggestion.Weather.Temperature)
		fmt.Fprintf(w, "Suggested mood: %s\n", suggestion.SuggestedMood)
		return nil
	},
}

func init() {
	weatherCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(weatherCmd)
}
