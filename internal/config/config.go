// Package config loads the gofurnish TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read when no --config flag is given
const DefaultFile = "gofurnish.toml"

// Config describes one furnishing run. Path fields are templates in which
// {base} expands to BaseDir and {scene} to SceneID.
type Config struct {
	SceneID string `toml:"scene_id"`
	BaseDir string `toml:"base_dir"`

	Shell       string `toml:"shell"`
	Metadata    string `toml:"metadata"`
	MetadataAlt string `toml:"metadata_alt"`
	AssetsDir   string `toml:"assets_dir"`
	Output      string `toml:"output"`

	// Candidates are tried in order inside <assets_dir>/<id>; {name}
	// expands to the object identifier.
	Candidates []string `toml:"candidates"`

	CeilingPattern string  `toml:"ceiling_pattern"`
	ShellRotationX float64 `toml:"shell_rotation_x"`
	MergeParts     bool    `toml:"merge_parts"`
}

// Default returns the layout used by the iGibson scene datasets
func Default() Config {
	return Config{
		SceneID:        "Rs_int",
		BaseDir:        "./data/scene_datasets/igibson",
		Shell:          "{base}/scenes/{scene}.glb",
		Metadata:       "{base}/assets/{scene}/metadata_v2.yaml",
		MetadataAlt:    "{base}/assets/{scene}/metadata_assembled.yaml",
		AssetsDir:      "{base}/assets_assemble/{scene}",
		Output:         "./visualize_scene/scenes/{scene}_furnished.glb",
		Candidates:     []string{"model.obj", "{name}.obj"},
		CeilingPattern: "ceiling",
		ShellRotationX: -90,
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the fields every run needs
func (c Config) Validate() error {
	var missing []string
	if c.Shell == "" {
		missing = append(missing, "shell")
	}
	if c.Metadata == "" {
		missing = append(missing, "metadata")
	}
	if c.AssetsDir == "" {
		missing = append(missing, "assets_dir")
	}
	if c.Output == "" {
		missing = append(missing, "output")
	}
	if len(c.Candidates) == 0 {
		missing = append(missing, "candidates")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Expand substitutes {base} and {scene} in a path template
func (c Config) Expand(template string) string {
	return strings.NewReplacer("{base}", c.BaseDir, "{scene}", c.SceneID).Replace(template)
}

// ShellPath returns the expanded shell path
func (c Config) ShellPath() string { return c.Expand(c.Shell) }

// MetadataPaths returns the primary and alternate metadata paths. The
// alternate is empty when not configured.
func (c Config) MetadataPaths() (primary, alternate string) {
	return c.Expand(c.Metadata), c.Expand(c.MetadataAlt)
}

// AssetsPath returns the expanded assets directory
func (c Config) AssetsPath() string { return c.Expand(c.AssetsDir) }

// OutputPath returns the expanded output path
func (c Config) OutputPath() string { return c.Expand(c.Output) }
