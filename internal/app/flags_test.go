package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-sim", "hanabi", "-scale", "4", "-seed", "9",
		"-set", "w=64,h=32", "-set", "ignite_chance=0.5",
	}))
	assert.Equal(t, "hanabi", cfg.Sim)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, map[string]string{
		"seed":          "9",
		"w":             "64",
		"h":             "32",
		"ignite_chance": "0.5",
	}, cfg.Options())
	assert.Equal(t, "h=32,ignite_chance=0.5,w=64", cfg.Set.String())
}

func TestSetOptionOverridesSeedFlag(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Set.Set("seed=77"))
	assert.Equal(t, "77", cfg.Options()["seed"])
}

func TestSettingsRejectMalformedPairs(t *testing.T) {
	s := Settings{}
	assert.Error(t, s.Set("novalue"))
	assert.Error(t, s.Set("=3"))
	assert.NoError(t, s.Set(" warmup = 0 "))
	assert.Equal(t, "0", s["warmup"])
}
