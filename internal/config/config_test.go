package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulate.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  small_blind    = 25
  big_blind      = 50
  starting_stack = 5000
  strict_rules   = true
}

bot "Shark" {
  samples = 600
}

bot "Fish" {}

session {
  hands = 250
  seed  = 42
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 25, cfg.Table.SmallBlind)
	assert.Equal(t, 50, cfg.Table.BigBlind)
	assert.Equal(t, 5000, cfg.Table.StartingStack)
	assert.True(t, cfg.Table.StrictRules)

	require.Len(t, cfg.Bots, 2)
	assert.Equal(t, "Shark", cfg.Bots[0].Name)
	assert.Equal(t, 600, cfg.Bots[0].Samples)
	assert.Equal(t, "Fish", cfg.Bots[1].Name)
	assert.Equal(t, 300, cfg.Bots[1].Samples, "missing samples falls back to default")

	assert.Equal(t, 250, cfg.Session.Hands)
	assert.Equal(t, int64(42), cfg.Session.Seed)
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, `
table {
  small_blind = 5
}

session {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 10, cfg.Table.BigBlind, "big blind defaults to twice the small")
	assert.Equal(t, 500, cfg.Table.StartingStack, "stack defaults to 50 big blinds")
	assert.Equal(t, 100, cfg.Session.Hands)
	assert.NotEmpty(t, cfg.Bots, "bot seats default when none configured")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `table { small_blind = `)

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "small blind must be positive",
			mutate:  func(c *Config) { c.Table.SmallBlind = 0 },
			wantErr: true,
		},
		{
			name:    "big blind must exceed small blind",
			mutate:  func(c *Config) { c.Table.BigBlind = c.Table.SmallBlind },
			wantErr: true,
		},
		{
			name:    "stack must cover a big blind",
			mutate:  func(c *Config) { c.Table.StartingStack = 5 },
			wantErr: true,
		},
		{
			name:    "at least one bot",
			mutate:  func(c *Config) { c.Bots = nil },
			wantErr: true,
		},
		{
			name:    "bot names must be set",
			mutate:  func(c *Config) { c.Bots[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "negative samples rejected",
			mutate:  func(c *Config) { c.Bots[0].Samples = -1 },
			wantErr: true,
		},
		{
			name:    "hands must be positive",
			mutate:  func(c *Config) { c.Session.Hands = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
