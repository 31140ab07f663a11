// Package main provides a CLI that requests a betting recommendation from a
// running matchpulse server and prints the result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchpulse/internal/client"
	"github.com/yourusername/matchpulse/internal/models"
)

var (
	serverURL string
	fixtureID string
	over25    float64
	goalHT    float64
	btts      float64
	modelList []string
	allModels bool
)

func init() {
	rootCmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "Base URL of the matchpulse server")
	rootCmd.Flags().StringVarP(&fixtureID, "fixture", "f", "1002", "Fixture ID to analyze")
	rootCmd.Flags().Float64Var(&over25, "over25", 0, "Decimal odds for Over 2.5 goals (0 = no price)")
	rootCmd.Flags().Float64Var(&goalHT, "goal-ht", 0, "Decimal odds for a first-half goal (0 = no price)")
	rootCmd.Flags().Float64Var(&btts, "btts", 0, "Decimal odds for both teams to score (0 = no price)")
	rootCmd.Flags().StringSliceVar(&modelList, "models", nil, "Model labels to report (default: canonical list)")
	rootCmd.Flags().BoolVar(&allModels, "all-models", true, "Report the full canonical model list")
}

var rootCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Request a betting recommendation for a fixture",
	Long: `Fetches the live snapshot for a fixture from a running matchpulse
server, posts a recommendation request with the supplied bookmaker odds and
prints the engine result as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(client.DefaultConfig(serverURL), log.New(os.Stderr, "client: ", log.LstdFlags))

	stats, err := c.LiveStats(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("failed to fetch live stats: %w", err)
	}

	req := models.RecommendationRequest{
		Stats:          stats,
		Odds:           oddsFromFlags(),
		ModelsSelected: modelList,
		AllModels:      &allModels,
	}

	result, err := c.Recommend(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendation: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// oddsFromFlags maps flag values onto the optional odds fields; a zero flag
// means the market has no price
func oddsFromFlags() models.OddsInput {
	odds := models.OddsInput{}
	if over25 > 0 {
		odds.Over25 = &over25
	}
	if goalHT > 0 {
		odds.Over05HT = &goalHT
	}
	if btts > 0 {
		odds.BTTS = &btts
	}
	return odds
}
