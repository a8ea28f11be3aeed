package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/equity"
	"github.com/lox/holdem-engine/internal/randutil"
)

type CLI struct {
	Hand       string `arg:"" help:"Hero hole cards (e.g., 'AH KD')" required:"true"`
	Board      string `short:"b" help:"Community board cards (e.g., 'QS JS 10H')"`
	Opponents  int    `short:"o" default:"1" help:"Number of opponents"`
	Iterations int    `short:"i" default:"10000" help:"Number of Monte Carlo iterations"`
	Workers    int    `short:"w" default:"4" help:"Parallel simulation workers"`
	Seed       int64  `help:"Random seed for reproducible results (0 for random)"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	rng := randutil.New(cli.Seed)

	hole, err := parseHand(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(normalize(cli.Board))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > 5 {
			fmt.Fprintf(os.Stderr, "Board cannot have more than 5 cards\n")
			ctx.Exit(1)
		}
	}

	if err := validateNoDuplicates(hole, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	startTime := time.Now()
	win, err := equity.EstimateParallel(context.Background(), hole, board, cli.Opponents, cli.Iterations, cli.Workers, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(startTime)

	displayResults(hole, board, cli.Opponents, win, cli.Iterations, duration)
}

func parseHand(s string) ([]deck.Card, error) {
	hand, err := deck.ParseCards(normalize(s))
	if err != nil {
		return nil, err
	}
	if len(hand) != 2 {
		return nil, fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hand))
	}
	return hand, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

func validateNoDuplicates(hole, board []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, card := range append(append([]deck.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	return nil
}

func displayResults(hole, board []deck.Card, opponents int, win float64, iterations int, duration time.Duration) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("opponents"),
		headerStyle.Render("win"))

	fmt.Fprintf(w, "%s\t%d\t%s\n",
		handStyle.Render(formatCards(hole)),
		opponents,
		winStyle.Render(fmt.Sprintf("%.1f%%", win*100)))

	w.Flush()

	fmt.Printf("\n%s\n", dimStyle.Render(
		fmt.Sprintf("%d iterations in %v", iterations, duration.Truncate(time.Millisecond))))
}

func formatCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
