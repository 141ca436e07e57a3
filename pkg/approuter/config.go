package approuter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// Environment variables overriding the file configuration.
const (
	DebugOutputEnvVar = "APPROUTER_DEBUG_OUTPUT"
	LogLevelEnvVar    = "APPROUTER_LOG_LEVEL"
)

// Config is the file representation of Options.
//
//	debug_output = "log"
//	log_level = "info"
//	log_path = "logs/router.log"
//	manifest = "screens.toml"
//
//	[animation]
//	kind = "snapshot"
//	duration = "250ms"
//	scale = 1.1
//	opacity = 0.0
type Config struct {
	DebugOutput string          `toml:"debug_output"`
	LogLevel    string          `toml:"log_level"`
	LogPath     string          `toml:"log_path"`
	Manifest    string          `toml:"manifest"`
	Animation   AnimationConfig `toml:"animation"`
}

// AnimationConfig is the file representation of Animation.
type AnimationConfig struct {
	Kind     string  `toml:"kind"`
	Duration string  `toml:"duration"`
	Scale    float64 `toml:"scale"`
	Opacity  float64 `toml:"opacity"`
}

// Animation converts the configuration. An empty config yields DefaultAnimation.
func (c AnimationConfig) Animation() (Animation, error) {
	if c == (AnimationConfig{}) {
		return DefaultAnimation, nil
	}
	anim := Animation{
		Kind:     ParseAnimationKind(c.Kind),
		Duration: DefaultAnimationDuration,
		Scale:    c.Scale,
		Opacity:  c.Opacity,
	}
	if c.Duration != "" {
		d, err := time.ParseDuration(c.Duration)
		if err != nil {
			return Animation{}, fmt.Errorf("approuter: animation duration: %w", err)
		}
		anim.Duration = d
	}
	if anim.Kind == AnimationSnapshot && anim.Scale == 0 {
		anim.Scale = DefaultSnapshotScale
	}
	return anim, nil
}

// LoadConfig decodes a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("approuter: load config %s: %w", path, err)
	}
	return cfg, nil
}

// Options configures the process-wide Router created by Init.
type Options struct {
	WindowProvider WindowProvider // Display surface lookup (default: detached in-memory window)
	Animator       Animator       // Root replacement animator (default: ImmediateAnimator)
	Catalog        *Catalog       // Templates and resources (default: empty catalog)
	DebugOutput    DebugOutput    // Diagnostic sink (default: DebugLog)
	LogPath        string         // Full path for the log file including filename
	LogLevel       string         // Internal log level: "debug", "info", "warn", "error"
	Animation      *Animation     // Default animation for SetAsRootDefault (nil: DefaultAnimation)
}

// OptionsFromConfig turns a file configuration into Options, loading the catalog
// manifest if one is named.
func OptionsFromConfig(cfg Config) (Options, error) {
	anim, err := cfg.Animation.Animation()
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		LogPath:   cfg.LogPath,
		LogLevel:  cfg.LogLevel,
		Animation: &anim,
	}
	if cfg.DebugOutput != "" {
		opts.DebugOutput = ParseDebugOutput(cfg.DebugOutput)
	}
	if cfg.Manifest != "" {
		opts.Catalog = NewCatalog()
		if err := opts.Catalog.LoadManifest(cfg.Manifest); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// Init sets up logging and installs a Router built from options as the shared one.
// Environment variables override the debug output and log level.
func Init(options Options) *Router {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := slog.LevelInfo
	if options.LogLevel != "" {
		level = internal.ParseLevel(options.LogLevel)
	}
	if v := os.Getenv(LogLevelEnvVar); v != "" {
		level = internal.ParseLevel(v)
	}
	internal.SetInternalLogLevel(level)

	debug := options.DebugOutput
	if v := os.Getenv(DebugOutputEnvVar); v != "" {
		debug = ParseDebugOutput(v)
	}

	opts := []Option{WithAnimator(options.Animator), WithCatalog(options.Catalog)}
	if options.Animation != nil {
		opts = append(opts, WithDefaultAnimation(*options.Animation))
	}
	if options.WindowProvider != nil {
		opts = append(opts, WithWindowProvider(options.WindowProvider))
	}
	if debug != nil {
		opts = append(opts, WithDebugOutput(debug))
	}

	r := New(opts...)
	SetShared(r)
	internal.GetInternalLogger().Debug("router initialized", "debug_output", debug != nil, "animation", r.DefaultAnimation().Kind.String())
	return r
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum level of the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the application log level (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path of the log file. Call before Init.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends both loggers to w instead of stdout and the log file. Call before Init.
func SetLogOutput(w io.Writer) {
	internal.SetOutput(w)
}

// Close releases the log file.
func Close() {
	internal.CloseLogger()
}
