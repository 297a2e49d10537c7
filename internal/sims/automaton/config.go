package automaton

import (
	"strconv"

	"celleste/internal/core"
	"celleste/internal/rule"
)

// Fill names the initial population applied by Reset.
const (
	FillRandom = "random"
	FillEmpty  = "empty"
	FillGlider = "glider"
)

// Config holds parameters for the generalized B/S automaton.
type Config struct {
	Width    int
	Height   int
	Notation string
	Edge     core.EdgePolicy
	Fill     string
}

// DefaultConfig returns the default configuration: Conway's rule on a
// wrapping 256x256 field seeded randomly.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Notation: rule.DefaultNotation,
		Edge:     core.EdgeWrap,
		Fill:     FillRandom,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Notation = v
	}
	if v, ok := cfg["edge"]; ok {
		if parsed, err := core.ParseEdgePolicy(v); err == nil {
			c.Edge = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch v {
		case FillRandom, FillEmpty, FillGlider:
			c.Fill = v
		}
	}
	return c
}
