// File: config.go
// Role: Config, loading, validation and conversion.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlid/inference"
	"github.com/katalvlaran/lvlid/render"
	"github.com/katalvlaran/lvlid/triangulation"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Engine  Engine  `yaml:"engine"`
	Logging Logging `yaml:"logging"`
	Render  Render  `yaml:"render"`
}

// Engine selects the triangulation.
type Engine struct {
	Heuristic string `yaml:"heuristic" validate:"required,oneof=min-weight min-fill min-degree"`
	Strategy  string `yaml:"strategy" validate:"required,oneof=elimination-tree maximal-cliques"`
	Spanning  string `yaml:"spanning" validate:"required,oneof=kruskal prim"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
}

// Render configures the dot command.
type Render struct {
	Format  string `yaml:"format" validate:"required,oneof=dot svg png"`
	RankDir string `yaml:"rankdir" validate:"required,oneof=TB LR BT RL"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine:  Engine{Heuristic: "min-weight", Strategy: "elimination-tree", Spanning: "kruskal"},
		Logging: Logging{Level: "warn", Format: "text"},
		Render:  Render{Format: "svg", RankDir: "TB"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// EngineOptions returns the inference options described by c.
func (c Config) EngineOptions(logger *slog.Logger) ([]inference.Option, error) {
	h, err := triangulation.ParseHeuristic(c.Engine.Heuristic)
	if err != nil {
		return nil, err
	}
	s, err := triangulation.ParseStrategy(c.Engine.Strategy)
	if err != nil {
		return nil, err
	}

	return []inference.Option{
		inference.WithHeuristic(h),
		inference.WithStrategy(s),
		inference.WithSpanning(c.Engine.Spanning),
		inference.WithLogger(logger),
	}, nil
}

// RenderFormat returns the configured render format.
func (c Config) RenderFormat() (render.Format, error) {
	return render.ParseFormat(c.Render.Format)
}

// Logger returns a logger writing to w at the configured level and format.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
