package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/statistics"
)

type CLI struct {
	Config  string `short:"c" default:"simulate.hcl" help:"HCL configuration file"`
	Hands   int    `default:"0" help:"Number of hands to simulate (overrides config)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random, overrides config)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	if cli.Hands > 0 {
		cfg.Session.Hands = cli.Hands
	}
	if cli.Seed != 0 {
		cfg.Session.Seed = cli.Seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config", "error", err)
	}

	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = time.Now().UnixNano()
	}
	rng := randutil.New(cfg.Session.Seed)

	fmt.Printf("Starting simulation: %d hands, %d bots (seed: %d)\n",
		cfg.Session.Hands, len(cfg.Bots), cfg.Session.Seed)

	table := game.NewTable(rng, logger, game.Config{
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StartingStack: cfg.Table.StartingStack,
		Strict:        cfg.Table.StrictRules,
	})

	eng := engine.New(table, rng, logger,
		engine.WithDelays(engine.Delays{}),
		engine.WithTrackedSeat(0))

	hero := table.AddPlayer("hero", "Hero", true)
	eng.SetAgent(hero.Seat, &engine.PolicyAgent{
		Policy: bot.New(rng, logger),
	})

	for i, bc := range cfg.Bots {
		p := table.AddPlayer(fmt.Sprintf("bot-%d", i+1), bc.Name, true)
		eng.SetAgent(p.Seat, &engine.PolicyAgent{
			Policy: bot.New(rng, logger, bot.WithSamples(bc.Samples)),
		})
	}

	startTime := time.Now()
	if err := eng.RunSession(context.Background(), cfg.Session.Hands); err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}
	duration := time.Since(startTime)

	printResults(eng.Session(), hero, duration)
	ctx.Exit(0)
}

func printResults(session *statistics.Session, hero *game.Player, duration time.Duration) {
	mean := session.Mean()
	median := session.Median()
	stdDev := session.StdDev()
	stdErr := session.StdError()
	low, high := session.ConfidenceInterval95()
	p05 := session.Percentile(0.05)
	p25 := session.Percentile(0.25)
	p75 := session.Percentile(0.75)
	p95 := session.Percentile(0.95)

	handsPerSec := float64(session.Hands()) / duration.Seconds()

	fmt.Printf("\n=== FINAL RESULTS ===\n")
	fmt.Printf("Hands played: %d\n", session.Hands())
	fmt.Printf("Total time: %v\n", duration.Round(time.Millisecond))
	fmt.Printf("Performance: %.1f hands/sec\n", handsPerSec)

	fmt.Printf("\n=== STATISTICAL RESULTS ===\n")
	fmt.Printf("Mean: %.2f chips/hand\n", mean)
	fmt.Printf("Median: %.2f chips/hand\n", median)
	fmt.Printf("Std Dev: %.2f chips\n", stdDev)
	fmt.Printf("Std Error: %.2f chips\n", stdErr)
	fmt.Printf("95%% CI: [%.2f, %.2f] chips/hand\n", low, high)
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n", p05, p25, p75, p95)

	showdown, uncontested := session.ShowdownWins()
	fmt.Printf("\n=== PROFIT SOURCE ANALYSIS ===\n")
	fmt.Printf("Winning hands: %d showdown, %d fold equity\n", showdown, uncontested)

	vpip, pfr := statistics.Rates(hero.Stats)
	fmt.Printf("\n=== HERO STYLE ===\n")
	fmt.Printf("VPIP: %.1f%%\n", vpip*100)
	fmt.Printf("PFR: %.1f%%\n", pfr*100)
	fmt.Printf("Net profit: %+d chips\n", hero.Stats.TotalProfit)
}
