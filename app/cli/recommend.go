package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"storefront/business/recommendation"
	"storefront/domain"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank products for an input document",
	Long:  "Reads a recommendation input document (products, view events, order counts and context) and prints the ranked products as JSON. Use - to read from stdin.",
	RunE:  runRecommend,
}

var (
	recommendInput  string
	recommendPretty bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendInput, "input", "i", "", "Path to input JSON document, or - for stdin (required)")
	recommendCmd.Flags().BoolVar(&recommendPretty, "pretty", false, "Indent the JSON output")
	if err := recommendCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	var (
		content []byte
		err     error
	)
	if recommendInput == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(recommendInput)
	}
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", recommendInput, err)
	}

	in, err := recommendation.DecodeInput(content)
	if err != nil {
		return err
	}

	res := recommendation.NewEngine(recommendation.DefaultConfig()).Recommend(in)
	out := domain.RecommendationResult{Products: res.Products, ColdStart: res.ColdStart}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if recommendPretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
