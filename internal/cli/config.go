package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// Environment variables read by LoadEnvConfig.
const (
	EnvIlluminant   = "TRISTIM_ILLUMINANT"
	EnvPreviewWidth = "TRISTIM_PREVIEW_WIDTH"
	EnvNoColour     = "NO_COLOR"
)

// Config holds settings that can come from the environment. Command line
// flags override them.
type Config struct {
	// Illuminant is the working illuminant for XYZ input and output.
	Illuminant illuminant.Illuminant
	// PreviewWidth is the width of colour swatches in cells.
	PreviewWidth int
	// NoColour disables ANSI colour output.
	NoColour bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Illuminant:   illuminant.D65,
		PreviewWidth: 8,
	}
}

// LoadEnvConfig builds a Config from DefaultConfig and the environment.
func LoadEnvConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvIlluminant); v != "" {
		il, err := illuminant.Parse(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvIlluminant, err)
		}
		cfg.Illuminant = il
	}

	if v := os.Getenv(EnvPreviewWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s: expected a positive integer, got %q", EnvPreviewWidth, v)
		}
		cfg.PreviewWidth = n
	}

	if _, ok := os.LookupEnv(EnvNoColour); ok {
		cfg.NoColour = true
	}

	return cfg, nil
}

// illuminantFlag is a pflag.Value that only accepts registered illuminant
// names.
type illuminantFlag struct {
	value *illuminant.Illuminant
}

var _ pflag.Value = illuminantFlag{}

func newIlluminantFlag(p *illuminant.Illuminant, def illuminant.Illuminant) illuminantFlag {
	*p = def
	return illuminantFlag{value: p}
}

func (f illuminantFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.String()
}

func (f illuminantFlag) Set(s string) error {
	il, err := illuminant.Parse(s)
	if err != nil {
		return err
	}
	*f.value = il
	return nil
}

func (f illuminantFlag) Type() string {
	return "illuminant"
}
