package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/justestif/go-tracktune/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a song for the weather in a city",
	Long: `Recommend fetches the current weather for --city and recommends a song.
Without --mood the mood is derived from the weather; with --mood the song
matches your mood and the output says whether it fits the weather.`,
	Example: `  tracktune recommend --city London
  tracktune recommend --city Paris --mood romantic --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		userMood, _ := cmd.Flags().GetString("mood")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		recommender, err := newRecommender(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		result, err := recommender.Recommend(cmd.Context(), city, userMood)
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		printRecommendation(cmd.OutOrStdout(), city, result)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("city", "", "city to look up (required)")
	recommendCmd.Flags().String("mood", "", "your current mood (optional)")
	recommendCmd.Flags().Bool("json", false, "output the result as JSON")
	_ = recommendCmd.MarkFlagRequired("city")

	rootCmd.AddCommand(recommendCmd)
}

// printRecommendation writes a human-readable recommendation.
func printRecommendation(w io.Writer, city string, r *recommend.Result) {
	fmt.Fprintf(w, "Weather in %s: %s, %.1f°C\n", city, r.Weather.Description, r.Weather.Temperature)

	switch {
	case r.MoodMatchesWeather == nil:
		fmt.Fprintf(w, "Mood: %s (from the weather)\n", r.Mood)
	case *r.MoodMatchesWeather:
		fmt.Fprintf(w, "Mood: %s (matches the weather)\n", r.Mood)
	default:
		fmt.Fprintf(w, "Mood: %s (doesn't quite match the weather)\n", r.Mood)
	}

	song := r.SongRecommendation
	if !song.Found() {
		fmt.Fprintf(w, "Song: %s\n", song.Error)
		return
	}
	fmt.Fprintf(w, "Song: %s by %s\n", song.Title, song.Artist)
	if song.URL != "" {
		fmt.Fprintf(w, "      %s\n", song.URL)
	}
	if song.Note != "" {
		fmt.Fprintf(w, "Note: %s\n", song.Note)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
