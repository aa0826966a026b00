// Package config holds the run-time configuration assembled from CLI flags
// and an optional YAML run-config file. It does not itself construct any
// filter or boundary — see internal/wiring for that — it only validates and
// carries the values they are built from.
package config

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/nicowilhelm/routedb/internal/options"
)

// Config is the fully resolved configuration for one run, combining CLI
// flags with an optional loaded RunConfig.
type Config struct {
	// OutputDir is the positional argument: the directory the sink writes
	// routedb_v1.sqlite into.
	OutputDir string

	// Verbose enables debug-level logging.
	Verbose bool

	// LogFile is the path log output is written to, or "" for stderr.
	LogFile string

	// RecordTrafficDir, if non-empty, wraps the live HTTP boundary in a
	// RecordingBoundary writing captured traffic under this directory.
	RecordTrafficDir string

	// ReplayTrafficDir, if non-empty, replaces the HTTP boundary entirely
	// with a ReplayingBoundary reading from this directory. Mutually
	// exclusive with RecordTrafficDir.
	ReplayTrafficDir string

	// Run carries the optional YAML-file settings. Zero value if no
	// -c/--config flag was given.
	Run RunConfig
}

// RunConfig is the optional YAML run-config file's shape. Its absence is not
// an error: the hard-coded deny-lists in internal/source remain the baseline,
// and a loaded RunConfig only adds to them.
type RunConfig struct {
	// ExtraForbiddenSummitNames supplements source.ForbiddenSummitNames.
	ExtraForbiddenSummitNames []string `yaml:"extra_forbidden_summit_names"`

	// ExtraStaleEntityIDs supplements source.StaleEntityIDs.
	ExtraStaleEntityIDs []int `yaml:"extra_stale_entity_ids"`

	// HTTPTimeout overrides the live transport boundary's default client
	// timeout. Zero means "use the boundary's own default".
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// UserAgent overrides appmeta.UserAgent() for outgoing requests. Empty
	// means "use the default".
	UserAgent string `yaml:"user_agent"`
}

// rawRunConfig mirrors RunConfig but with HTTPTimeout as the string YAML
// naturally produces (go.yaml.in/yaml has no time.Duration support, since
// time.Duration implements neither encoding.TextUnmarshaler nor
// yaml.Unmarshaler on its own).
type rawRunConfig struct {
	ExtraForbiddenSummitNames []string `yaml:"extra_forbidden_summit_names"`
	ExtraStaleEntityIDs       []int    `yaml:"extra_stale_entity_ids"`
	HTTPTimeout               string   `yaml:"http_timeout"`
	UserAgent                 string   `yaml:"user_agent"`
}

// UnmarshalYAML implements yaml.Unmarshaler, parsing HTTPTimeout through
// time.ParseDuration.
func (c *RunConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw rawRunConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.ExtraForbiddenSummitNames = raw.ExtraForbiddenSummitNames
	c.ExtraStaleEntityIDs = raw.ExtraStaleEntityIDs
	c.UserAgent = raw.UserAgent

	if raw.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(raw.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("config: parsing http_timeout %q: %w", raw.HTTPTimeout, err)
		}
		c.HTTPTimeout = timeout
	}
	return nil
}

// LoadRunConfig reads and parses the YAML file at path. An empty path is not
// an error: it returns the zero RunConfig, meaning "no overrides".
func LoadRunConfig(path string) (RunConfig, error) {
	if path == "" {
		return RunConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the flag combination that can't be expressed through the
// flag parser alone: --record-traffic and --replay-traffic are mutually
// exclusive, but both are optional (a live-only run with neither is valid).
func (c Config) Validate() error {
	if c.RecordTrafficDir == "" && c.ReplayTrafficDir == "" {
		return nil
	}
	return options.ValidateSingleInputSource(
		"",
		"--record-traffic and --replay-traffic are mutually exclusive",
		c.RecordTrafficDir != "", c.ReplayTrafficDir != "",
	)
}
