// Package event runs a duplicate event: the same boards played at
// several tables, scored by comparison between tables.
package event

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ipvive/bridgerules/bridge"
)

// Config represents the complete event configuration.
type Config struct {
	Event  EventSettings `hcl:"event,block"`
	Tables []TableConfig `hcl:"table,block"`
}

// EventSettings contains event-level configuration.
type EventSettings struct {
	Scoring  string `hcl:"scoring,optional"`
	Boards   int    `hcl:"boards,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableConfig names one table and the players seated at it.
type TableConfig struct {
	Name  string `hcl:"name,label"`
	South string `hcl:"south,optional"`
	West  string `hcl:"west,optional"`
	North string `hcl:"north,optional"`
	East  string `hcl:"east,optional"`
}

// Players returns the table's player names indexed by seat.
func (t TableConfig) Players() [bridge.NumSeats]string {
	var players [bridge.NumSeats]string
	players[bridge.South] = t.South
	players[bridge.West] = t.West
	players[bridge.North] = t.North
	players[bridge.East] = t.East
	return players
}

// DefaultConfig returns the default event configuration: a two-table
// IMPs match over sixteen boards.
func DefaultConfig() *Config {
	return &Config{
		Event: EventSettings{
			Scoring:  bridge.IMPs.String(),
			Boards:   16,
			LogLevel: "info",
		},
		Tables: []TableConfig{
			{Name: "open"},
			{Name: "closed"},
		},
	}
}

// LoadConfig loads event configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
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

	applyDefaults(&config)
	return &config, nil
}

// ParseConfig decodes event configuration from in-memory HCL source.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Event.Scoring == "" {
		config.Event.Scoring = bridge.IMPs.String()
	}
	if config.Event.Boards == 0 {
		config.Event.Boards = 16
	}
	if config.Event.LogLevel == "" {
		config.Event.LogLevel = "info"
	}
	if len(config.Tables) == 0 {
		config.Tables = DefaultConfig().Tables
	}
}

// Validate validates the event configuration.
func (c *Config) Validate() error {
	if _, err := bridge.ParseScoring(c.Event.Scoring); err != nil {
		return fmt.Errorf("invalid scoring method %q", c.Event.Scoring)
	}
	if c.Event.Boards < 1 {
		return fmt.Errorf("invalid board count: %d", c.Event.Boards)
	}
	if len(c.Tables) < 2 {
		return fmt.Errorf("at least two tables must be configured")
	}
	seen := make(map[string]bool)
	for _, table := range c.Tables {
		if table.Name == "" {
			return fmt.Errorf("table with empty name")
		}
		if seen[table.Name] {
			return fmt.Errorf("duplicate table name %q", table.Name)
		}
		seen[table.Name] = true
	}
	return nil
}

// ScoringMethod returns the parsed scoring method.
func (c *Config) ScoringMethod() (bridge.Scoring, error) {
	return bridge.ParseScoring(c.Event.Scoring)
}
