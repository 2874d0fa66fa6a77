// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jeranaias/slidertip/internal/slider"
	"github.com/jeranaias/slidertip/internal/transform"
	"github.com/jeranaias/slidertip/internal/util"
)

// CurrentVersion is the configuration format version written by Save.
const CurrentVersion = "1"

// Environment variables read by Load and ApplyEnvOverrides.
const (
	EnvConfig    = "SLIDERTIP_CONFIG"
	EnvLocale    = "SLIDERTIP_LOCALE"
	EnvPrecision = "SLIDERTIP_PRECISION"
)

// ErrSliderNotFound is returned by Slider for unknown names.
var ErrSliderNotFound = errors.New("slider not found")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete slidertip configuration.
type Config struct {
	Version string        `toml:"version" json:"version"`
	Display DisplayConfig `toml:"display" json:"display"`
	Watch   WatchConfig   `toml:"watch" json:"watch"`
	Sliders []slider.Spec `toml:"slider" json:"sliders"`
}

// DisplayConfig controls how values are printed.
type DisplayConfig struct {
	// Locale is a BCP 47 tag such as "en" or "de"; empty prints plain numbers
	Locale string `toml:"locale" json:"locale"`
	// Precision is the maximum number of decimals in locale output (0 = default 4)
	Precision int `toml:"precision" json:"precision"`
	// LabelWidth is the width of the slider name column in tables
	LabelWidth int `toml:"label_width" json:"label_width"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// IntervalMillis is the minimum time between two re-renders
	IntervalMillis int `toml:"interval_ms" json:"interval_ms"`
	// Burst is the number of re-renders allowed back to back
	Burst int `toml:"burst" json:"burst"`
}

// Default returns the built-in configuration: one slider of every kind,
// set up like the sampling pages that use them.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Display: DisplayConfig{
			Precision:  4,
			LabelWidth: 24,
		},
		Watch: WatchConfig{
			IntervalMillis: 250,
			Burst:          1,
		},
		Sliders: []slider.Spec{
			{ID: "samples", Name: "Number of Samples", Kind: slider.KindLog, Min: 10, Max: 10000, State: 100},
			{ID: "fib-samples", Name: "Fibonacci Samples", Kind: slider.KindFib, Min: 2, Max: 21, State: 34, Index: 9},
			{ID: "grid-samples", Name: "Grid Samples", Kind: slider.KindSquare, Min: 4, Max: 100, State: 16, Index: 4},
			{ID: "gauss-l", Name: "L", Kind: slider.KindFloat, Min: math.Log10(1.2), Max: 4.001, State: 2, Transform: transform.NameLogLinear, Template: "L={value}"},
			{ID: "phi", Name: "φ", Kind: slider.KindPi, Min: 0, Max: 2, State: 1},
			{ID: "kappa", Name: "κ (kappa)", Kind: slider.KindLinear, Min: 0, Max: 50, State: 10},
			{ID: "sigma-x", Name: "Sigma x (σₓ)", Kind: slider.KindFloat, Min: 0, Max: 5, State: 0.5},
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the slidertip configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".slidertip"), nil
}

// ConfigPathTOML returns the default TOML config path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the default JSON config path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Path returns the file Load reads: $SLIDERTIP_CONFIG, else the first
// existing default file, else the default TOML path.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the configuration following the documented precedence. A
// missing file is not an error; the defaults are returned instead.
func Load() (*Config, error) {
	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		} else if os.Getenv(EnvConfig) != "" {
			return nil, fmt.Errorf("%s points to %s: %w", EnvConfig, path, statErr)
		}
	}

	cfg := Default()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads, completes and validates the configuration at path.
// Files ending in .json are read as JSON, everything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	c.ApplyEnvOverrides()
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML decodes the TOML file at path into cfg. Unknown keys are reported
// on stderr but do not fail the load.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		fmt.Fprintf(os.Stderr, "Warning: ignoring unknown keys in %s: %s\n", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes the JSON file at path into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the path Load would read, choosing the format from the
// file extension.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes cfg to path as JSON or TOML depending on its extension.
func SaveToPath(cfg *Config, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path as TOML.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# slidertip configuration file\n")
	buf.WriteString("# Generated by slidertip - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes cfg to path as indented JSON.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS AND OVERRIDES
// =============================================================================

// SetDefaults fills unset fields. Sliders without an ID get a random one.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Display.Precision == 0 {
		c.Display.Precision = defaults.Display.Precision
	}
	if c.Display.LabelWidth == 0 {
		c.Display.LabelWidth = defaults.Display.LabelWidth
	}
	if c.Watch.IntervalMillis == 0 {
		c.Watch.IntervalMillis = defaults.Watch.IntervalMillis
	}
	if c.Watch.Burst == 0 {
		c.Watch.Burst = defaults.Watch.Burst
	}
	for i := range c.Sliders {
		if strings.TrimSpace(c.Sliders[i].ID) == "" {
			c.Sliders[i].ID = uuid.NewString()
		}
	}
}

// ApplyEnvOverrides applies SLIDERTIP_LOCALE and SLIDERTIP_PRECISION.
// An unparsable precision is reported on stderr and ignored.
func (c *Config) ApplyEnvOverrides() {
	if locale, ok := os.LookupEnv(EnvLocale); ok {
		c.Display.Locale = strings.TrimSpace(locale)
	}
	if precision := os.Getenv(EnvPrecision); precision != "" {
		p, err := strconv.Atoi(strings.TrimSpace(precision))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: not an integer\n", EnvPrecision, precision)
			return
		}
		c.Display.Precision = p
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError is a single configuration problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every problem found by Validate.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the whole configuration and returns ValidateErrors listing
// every problem, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Display.Locale != "" {
		if _, err := language.Parse(c.Display.Locale); err != nil {
			add("display.locale", "invalid locale %q", c.Display.Locale)
		}
	}
	if c.Display.Precision < 0 || c.Display.Precision > 15 {
		add("display.precision", "must be between 0 and 15, got %d", c.Display.Precision)
	}
	if c.Display.LabelWidth < 0 {
		add("display.label_width", "must not be negative")
	}
	if c.Watch.IntervalMillis < 0 {
		add("watch.interval_ms", "must not be negative")
	}
	if c.Watch.Burst < 0 {
		add("watch.burst", "must not be negative")
	}

	names := make(map[string]int)
	ids := make(map[string]int)
	for i, spec := range c.Sliders {
		field := fmt.Sprintf("slider[%d]", i)
		if err := spec.Validate(); err != nil {
			add(field, "%v", err)
		}
		key := strings.ToLower(strings.TrimSpace(spec.Name))
		if j, dup := names[key]; dup && key != "" {
			add(field+".name", "duplicate of slider[%d]", j)
		} else {
			names[key] = i
		}
		if spec.ID == "" {
			continue
		}
		if j, dup := ids[spec.ID]; dup {
			add(field+".id", "duplicate of slider[%d]", j)
		} else {
			ids[spec.ID] = i
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// =============================================================================
// SLIDER ACCESS
// =============================================================================

// Slider builds the slider whose name (case-insensitive) or ID matches key.
func (c *Config) Slider(key string) (*slider.Slider, error) {
	i, err := c.sliderIndex(key)
	if err != nil {
		return nil, err
	}
	return slider.New(c.Sliders[i])
}

// BuildSliders builds every configured slider in order.
func (c *Config) BuildSliders() ([]*slider.Slider, error) {
	out := make([]*slider.Slider, 0, len(c.Sliders))
	for _, spec := range c.Sliders {
		s, err := slider.New(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// UpdateSlider replaces the stored definition of the slider with the same
// ID as spec, or failing that the same name.
func (c *Config) UpdateSlider(spec slider.Spec) error {
	for i := range c.Sliders {
		if spec.ID != "" && c.Sliders[i].ID == spec.ID {
			c.Sliders[i] = spec
			return nil
		}
	}
	for i := range c.Sliders {
		if spec.Name != "" && strings.EqualFold(c.Sliders[i].Name, spec.Name) {
			c.Sliders[i] = spec
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrSliderNotFound, spec.Name)
}

func (c *Config) sliderIndex(key string) (int, error) {
	key = strings.TrimSpace(key)
	for i, spec := range c.Sliders {
		if spec.ID == key {
			return i, nil
		}
	}
	for i, spec := range c.Sliders {
		if strings.EqualFold(spec.Name, key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrSliderNotFound, key)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Sliders = append([]slider.Spec(nil), c.Sliders...)
	return &out
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("# failed to encode config: %v\n", err)
	}
	return buf.String()
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
// Load failures fall back to the defaults with a warning on stderr.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.SetDefaults()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the process-wide configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal replaces the process-wide configuration. Later Global calls
// return cfg without loading from disk.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the process-wide configuration so the next
// Global call loads it again.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
