// Package config resolves runtime settings from a .env file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names
const (
	EnvSeed            = "ROOMCRAWL_SEED"
	EnvLogLevel        = "ROOMCRAWL_LOG_LEVEL"
	EnvMaxRoomAttempts = "ROOMCRAWL_MAX_ROOM_ATTEMPTS"
	EnvRenderer        = "ROOMCRAWL_RENDERER"
	EnvAssets          = "ROOMCRAWL_ASSETS"
	EnvTrace           = "ROOMCRAWL_TRACE"
	EnvOverview        = "ROOMCRAWL_OVERVIEW"
)

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// DefaultMaxRoomAttempts bounds how often a single room is regenerated
const DefaultMaxRoomAttempts = 8

// DotEnvFile is the optional file read before the environment
const DotEnvFile = ".env"

// Config holds the resolved settings
type Config struct {
	Seed            int64 // 0 means time-based
	LogLevel        logrus.Level
	MaxRoomAttempts int
	Renderer        string
	AssetDir        string // empty means synthesized bitmaps
	DumpPath        string // write a level map here and exit when set
	Trace           bool
	Overview        bool // tui only: print every room instead of the current frame
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		LogLevel:        logrus.InfoLevel,
		MaxRoomAttempts: DefaultMaxRoomAttempts,
		Renderer:        RendererEbiten,
	}
}

// LookupFunc reads one setting, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load reads DotEnvFile if present, then the process environment, then args
func Load(args []string) (Config, error) {
	return LoadFrom(DotEnvFile, os.LookupEnv, args, os.Stderr)
}

// LoadFrom resolves settings from the given .env path, lookup function and
// flag arguments. Values in the environment win over the .env file. Flag
// usage and errors are written to out.
func LoadFrom(dotEnvPath string, lookup LookupFunc, args []string, out io.Writer) (Config, error) {
	dotEnv, err := readDotEnv(dotEnvPath)
	if err != nil {
		return Config{}, err
	}

	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args, out); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vals, nil
}

func (c *Config) applyEnv(env LookupFunc) error {
	if v, ok := env(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := env(EnvLogLevel); ok {
		level, err := logrus.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = level
	}
	if v, ok := env(EnvMaxRoomAttempts); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxRoomAttempts, err)
		}
		c.MaxRoomAttempts = n
	}
	if v, ok := env(EnvRenderer); ok {
		c.Renderer = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := env(EnvAssets); ok {
		c.AssetDir = strings.TrimSpace(v)
	}
	if v, ok := env(EnvTrace); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTrace, err)
		}
		c.Trace = on
	}
	if v, ok := env(EnvOverview); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOverview, err)
		}
		c.Overview = on
	}
	return nil
}

func (c *Config) applyFlags(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("roomcrawl", flag.ContinueOnError)
	flags.SetOutput(out)

	level := flags.String("log-level", c.LogLevel.String(), "log level (trace, debug, info, warn, error)")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed for level generation (0 = time-based)")
	flags.IntVar(&c.MaxRoomAttempts, "attempts", c.MaxRoomAttempts, "generation attempts per room before the level build fails")
	flags.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend: ebiten or tui")
	flags.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory with tile bitmaps (default: synthesized)")
	flags.StringVar(&c.DumpPath, "dump", c.DumpPath, "write the generated level map to this file and exit")
	flags.BoolVar(&c.Trace, "trace", c.Trace, "export OpenTelemetry traces over OTLP/HTTP")
	flags.BoolVar(&c.Overview, "overview", c.Overview, "with -renderer tui, print the whole level instead of the current room")

	if err := flags.Parse(args); err != nil {
		return err
	}

	parsed, err := logrus.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	c.LogLevel = parsed
	return nil
}

// Validate checks that the settings are usable
func (c Config) Validate() error {
	if c.MaxRoomAttempts < 1 {
		return fmt.Errorf("max room attempts must be at least 1, got %d", c.MaxRoomAttempts)
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("unknown renderer %q (want %s or %s)", c.Renderer, RendererEbiten, RendererTUI)
	}
	if c.Overview && c.Renderer != RendererTUI {
		return fmt.Errorf("the level overview needs the %s renderer", RendererTUI)
	}
	return nil
}
