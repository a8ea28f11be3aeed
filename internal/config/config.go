// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete simulation configuration
type Config struct {
	Table   TableSettings   `hcl:"table,block"`
	Bots    []BotSettings   `hcl:"bot,block"`
	Session SessionSettings `hcl:"session,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	SmallBlind    int  `hcl:"small_blind,optional"`
	BigBlind      int  `hcl:"big_blind,optional"`
	StartingStack int  `hcl:"starting_stack,optional"`
	StrictRules   bool `hcl:"strict_rules,optional"`
}

// BotSettings configures one bot seat
type BotSettings struct {
	Name    string `hcl:"name,label"`
	Samples int    `hcl:"samples,optional"`
}

// SessionSettings controls how many hands to play and determinism
type SessionSettings struct {
	Hands int   `hcl:"hands,optional"`
	Seed  int64 `hcl:"seed,optional"`
}

// Default returns the default simulation configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			SmallBlind:    10,
			BigBlind:      20,
			StartingStack: 1000,
		},
		Bots: []BotSettings{
			{Name: "Bot Alpha", Samples: 300},
			{Name: "Bot Bravo", Samples: 300},
			{Name: "Bot Charlie", Samples: 300},
		},
		Session: SessionSettings{
			Hands: 100,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = 10
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = config.Table.SmallBlind * 2
	}
	if config.Table.StartingStack == 0 {
		config.Table.StartingStack = config.Table.BigBlind * 50
	}
	if config.Session.Hands == 0 {
		config.Session.Hands = 100
	}
	if len(config.Bots) == 0 {
		config.Bots = Default().Bots
	}
	for i := range config.Bots {
		if config.Bots[i].Samples == 0 {
			config.Bots[i].Samples = 300
		}
	}

	return &config, nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if c.Table.StartingStack < c.Table.BigBlind {
		return fmt.Errorf("starting stack must cover at least one big blind")
	}
	if len(c.Bots) < 1 {
		return fmt.Errorf("at least one bot must be configured")
	}
	if len(c.Bots)+1 > 10 {
		return fmt.Errorf("too many seats: %d bots plus hero", len(c.Bots))
	}
	for _, bot := range c.Bots {
		if bot.Name == "" {
			return fmt.Errorf("bot name must not be empty")
		}
		if bot.Samples < 0 {
			return fmt.Errorf("bot %s: samples must not be negative", bot.Name)
		}
	}
	if c.Session.Hands <= 0 {
		return fmt.Errorf("session hands must be positive")
	}
	return nil
}
