package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
)

type suggestOptions struct {
	itemsPath  string
	occasion   string
	temp       float64
	condition  string
	seed       uint64
	maxResults int
}

type suggestOutput struct {
	Occasion    string                    `json:"occasion"`
	Weather     *stylist.WeatherSnapshot  `json:"weather,omitempty"`
	Suggestions []stylist.OutfitCandidate `json:"suggestions"`
}

func newSuggestCmd() *cobra.Command {
	opts := &suggestOptions{}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank outfits from a wardrobe JSON file",
		Long:  "Reads a JSON array of wardrobe items and prints ranked outfit suggestions for an occasion, optionally constrained by temperature.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuggest(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.itemsPath, "items", "i", "", "Path to wardrobe items JSON file (required)")
	cmd.Flags().StringVar(&opts.occasion, "occasion", "casual", "Occasion to dress for")
	cmd.Flags().Float64Var(&opts.temp, "temp", 0, "Current temperature in °F")
	cmd.Flags().StringVar(&opts.condition, "condition", "clear", "Weather condition label, used with --temp")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible shoe and accessory picks")
	cmd.Flags().IntVar(&opts.maxResults, "max", stylist.DefaultMaxResults, "Maximum number of suggestions")
	if err := cmd.MarkFlagRequired("items"); err != nil {
		panic(fmt.Sprintf("failed to mark items flag as required: %v", err))
	}
	return cmd
}

func runSuggest(cmd *cobra.Command, opts *suggestOptions) error {
	raw, err := os.ReadFile(opts.itemsPath)
	if err != nil {
		return fmt.Errorf("failed to read items file %s: %w", opts.itemsPath, err)
	}
	var items []stylist.WardrobeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("failed to unmarshal items JSON: %w", err)
	}

	var weather *stylist.WeatherSnapshot
	if cmd.Flags().Changed("temp") {
		weather = &stylist.WeatherSnapshot{Temperature: opts.temp, Condition: opts.condition}
	}
	random := stylist.DefaultRandomSource()
	if cmd.Flags().Changed("seed") {
		random = stylist.SeededRandomSource(opts.seed)
	}

	recommender := stylist.NewRecommender(stylist.Config{MaxResults: opts.maxResults}, random)
	out := suggestOutput{
		Occasion:    opts.occasion,
		Weather:     weather,
		Suggestions: recommender.Generate(items, opts.occasion, weather),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
