package bzr

import "strconv"

// Config holds the reaction-diffusion parameters.
type Config struct {
	Width  int
	Height int
	DiffA  float32
	DiffB  float32
	DiffC  float32
	Feed   float32
	Kill   float32
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		DiffA:  1.0,
		DiffB:  0.5,
		DiffC:  0.3,
		Feed:   0.055,
		Kill:   0.062,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Height = parsed
		}
	}
	readFloat(cfg, "diff_a", &c.DiffA)
	readFloat(cfg, "diff_b", &c.DiffB)
	readFloat(cfg, "diff_c", &c.DiffC)
	readFloat(cfg, "feed", &c.Feed)
	readFloat(cfg, "kill", &c.Kill)
	return c
}

func readFloat(cfg map[string]string, key string, dst *float32) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			*dst = float32(parsed)
		}
	}
}
