package app

import (
	"flag"
	"fmt"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one raw pair. Validation happens in Map so every bad pair can
// be reported together.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the collected pairs. Later pairs win. Malformed entries are
// returned separately so callers can log them.
func (l KVList) Map() (map[string]string, []error) {
	if len(l) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(l))
	var errs []error
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			errs = append(errs, fmt.Errorf("override %q: want key=value", kv))
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, errs
}

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim       string
	TPS       int
	Seed      int64
	Width     int
	Height    int
	HUD       bool
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "newyear", TPS: 60, Width: 1280, Height: 720, HUD: true}
}

// Bind attaches the flags every host understands to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "preset to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for field resets (0 keeps the preset seed)")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// BindWindow attaches the window-only flags.
func (c *Config) BindWindow(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at start")
}
