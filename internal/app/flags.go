package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Set      Settings
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "installation", Scale: 12, TPS: 40, Seed: 5, HUDWidth: 240, Set: Settings{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "epochs per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.Var(c.Set, "set", "sim option as key=value, repeatable")
}

// Options returns the sim options, with the seed flag applied unless an
// explicit seed option was given.
func (c *Config) Options() map[string]string {
	out := map[string]string{"seed": fmt.Sprint(c.Seed)}
	for k, v := range c.Set {
		out[k] = v
	}
	return out
}

// Settings collects repeated key=value flags.
type Settings map[string]string

func (s Settings) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one or more comma separated key=value pairs.
func (s Settings) Set(v string) error {
	for _, pair := range strings.Split(v, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("option %q: want key=value", pair)
		}
		s[key] = strings.TrimSpace(value)
	}
	return nil
}
