package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/match"
	"github.com/katalvlaran/zigen/sieve"
)

var (
	// ErrNotOptional is returned when an accepted root is neither required
	// nor optional.
	ErrNotOptional = errors.New("config: accepted root is neither required nor optional")

	// ErrUnknownFeature is returned for a degenerator entry naming a
	// feature outside the catalog.
	ErrUnknownFeature = errors.New("config: unknown stroke feature")

	// ErrNegative is returned for a negative count.
	ErrNegative = errors.New("config: value cannot be negative")
)

// Degenerator is the YAML form of match.Degenerator.
type Degenerator struct {
	Feature map[string]string `yaml:"feature,omitempty"`
	NoCross bool              `yaml:"no_cross,omitempty"`
}

// Roots lists root names by role.
type Roots struct {
	Required []string `yaml:"required,omitempty"`
	Optional []string `yaml:"optional,omitempty"`
	Accepted []string `yaml:"accepted,omitempty"`
	Strong   []string `yaml:"strong,omitempty"`
	Weak     []string `yaml:"weak,omitempty"`
	Similar  []string `yaml:"similar,omitempty"`
}

// Config is an analysis configuration file.
type Config struct {
	Degenerator Degenerator    `yaml:"degenerator"`
	Sieves      []string       `yaml:"sieves"`
	Roots       Roots          `yaml:"roots"`
	StrokeRoots bool           `yaml:"stroke_roots"`
	Classes     map[string]int `yaml:"classes,omitempty"`
	Workers     int            `yaml:"workers"`
	NodeBudget  int            `yaml:"node_budget,omitempty"`
	CacheSize   *int           `yaml:"cache_size,omitempty"`
}

// Default returns the default sieve order and no root sets, which makes
// every library root required.
func Default() Config {
	return Config{Sieves: append([]string(nil), sieve.DefaultOrder...)}
}

// Decode reads a YAML configuration on top of Default and validates it.
// An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load decodes the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// normalize puts root names in NFC so they compare equal to library names.
func (c *Config) normalize() {
	for _, list := range []*[]string{
		&c.Roots.Required, &c.Roots.Optional, &c.Roots.Accepted,
		&c.Roots.Strong, &c.Roots.Weak, &c.Roots.Similar,
	} {
		for i, n := range *list {
			(*list)[i] = norm.NFC.String(n)
		}
	}
}

// Validate checks c against the built-in sieves.
func (c Config) Validate() error {
	return c.ValidateWith(sieve.Builtin())
}

// ValidateWith checks c against the sieves of reg.
func (c Config) ValidateWith(reg *sieve.Registry) error {
	if _, err := reg.Resolve(c.Sieves); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	inUse := sieve.NewSet(c.Roots.Required...)
	inUse.Add(c.Roots.Optional...)
	for _, n := range c.Roots.Accepted {
		if !inUse.Has(n) {
			return fmt.Errorf("%w: %q", ErrNotOptional, n)
		}
	}
	for a, b := range c.Degenerator.Feature {
		for _, f := range []string{a, b} {
			if !curve.ValidFeature(f) {
				return fmt.Errorf("%w: %q", ErrUnknownFeature, f)
			}
		}
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrNegative, c.Workers)
	case c.NodeBudget < 0:
		return fmt.Errorf("%w: node_budget %d", ErrNegative, c.NodeBudget)
	case c.CacheSize != nil && *c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size %d", ErrNegative, *c.CacheSize)
	}

	return nil
}

// Engine returns the decompose configuration described by c.
func (c Config) Engine() decompose.Config {
	return decompose.Config{
		Degenerator: match.Degenerator{
			FeatureEquivalence: c.Degenerator.Feature,
			DisallowCrossing:   c.Degenerator.NoCross,
		},
		Sieves:      c.Sieves,
		Required:    c.Roots.Required,
		Optional:    c.Roots.Optional,
		Accepted:    c.Roots.Accepted,
		Strong:      c.Roots.Strong,
		Weak:        c.Roots.Weak,
		Similar:     c.Roots.Similar,
		StrokeRoots: c.StrokeRoots,
		Classifier:  curve.Classifier{Override: c.Classes},
	}
}

// Options returns the engine options set by c.
func (c Config) Options() []decompose.Option {
	var opts []decompose.Option
	if c.NodeBudget > 0 {
		opts = append(opts, decompose.WithNodeBudget(c.NodeBudget))
	}
	if c.CacheSize != nil {
		opts = append(opts, decompose.WithCacheSize(*c.CacheSize))
	}

	return opts
}

// NewEngine builds an engine over lib configured by c.
func (c Config) NewEngine(lib *decompose.Library, extra ...decompose.Option) (*decompose.Engine, error) {
	return decompose.NewEngine(lib, c.Engine(), append(c.Options(), extra...)...)
}

// Encode writes c as YAML.
func Encode(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return enc.Close()
}
