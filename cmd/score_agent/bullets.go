package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/suggestions"
)

var bulletsCommand = &cobra.Command{
	Use:   "bullets",
	Short: "Generate templated resume bullets for a keyword list",
	Long:  `Generates resume bullet suggestions from job keywords using experience-level verb and impact templates.`,
	RunE:  runBulletsCmd,
}

var (
	bulletsKeywords []string
	bulletsLevel    string
)

func init() {
	bulletsCommand.Flags().StringSliceVarP(&bulletsKeywords, "keywords", "k", nil, "Keywords to build bullets around (comma-separated)")
	bulletsCommand.Flags().StringVarP(&bulletsLevel, "level", "l", "mid", "Experience level: entry, mid, or senior")
	_ = bulletsCommand.MarkFlagRequired("keywords")

	rootCmd.AddCommand(bulletsCommand)
}

func runBulletsCmd(_ *cobra.Command, _ []string) error {
	if len(bulletsKeywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}

	bullets := suggestions.Generate(bulletsKeywords, bulletsLevel, nil)
	for _, bullet := range bullets {
		fmt.Printf("- %s\n", bullet)
	}
	return nil
}
