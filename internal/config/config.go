package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"
)

// Config represents the chores configuration
type Config struct {
	Version string  `yaml:"version"`
	Package string  `yaml:"package,omitempty"`
	Root    string  `yaml:"root,omitempty"`
	Paths   Paths   `yaml:"paths,omitempty"`
	Tools   Tools   `yaml:"tools,omitempty"`
	Develop Develop `yaml:"develop,omitempty"`
}

// Paths overrides the path lists handed to the external tools
type Paths struct {
	Check  []string `yaml:"check,omitempty"`
	Format []string `yaml:"format,omitempty"`
}

// Tools names the external executables the tasks shell out to
type Tools struct {
	Checker   string `yaml:"checker,omitempty"`
	Sorter    string `yaml:"sorter,omitempty"`
	Formatter string `yaml:"formatter,omitempty"`
	Installer string `yaml:"installer,omitempty"`
}

// Develop configures what the develop task installs
type Develop struct {
	Packages []string `yaml:"packages,omitempty"`
}

const (
	ConfigFileName        = ".chores.yml"
	CurrentVersion        = "1.0"
	DefaultChecker        = "flake8"
	DefaultSorter         = "isort"
	DefaultFormatter      = "black"
	DefaultInstaller      = "pip"
	configFilePermissions = 0o600
)

// Environment variables recognized alongside the configuration file.
// A .env file next to the configuration participates as if exported.
const (
	EnvPackage = "CHORES_PACKAGE" // overrides the package name
	EnvConfig  = "CHORES_CONFIG"  // overrides the configuration file path
)

// DefaultDevelopPackages is what the develop task installs when the
// configuration does not name its own list
var DefaultDevelopPackages = []string{"flake8", "flake8-bugbear", "pydocstyle", "black", "isort"}

// Load loads configuration from .chores.yml in the project root
func Load(projectRoot string) (*Config, error) {
	return LoadFile(filepath.Join(projectRoot, ConfigFileName))
}

// LoadFile loads configuration from an explicit file path. A missing file
// is not an error; the defaults apply as if an empty file were present.
func LoadFile(configPath string) (*Config, error) {
	// Pick up a .env sitting next to the config (ignore if not found)
	_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), ".env"))

	config := &Config{Version: CurrentVersion}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// FileExists reports whether a configuration file is present in the
// project root
func FileExists(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, ConfigFileName))
	return err == nil
}

// Save saves configuration to .chores.yml in the project root
func Save(projectRoot string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configPath := filepath.Join(projectRoot, ConfigFileName)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv layers environment overrides onto the file values
func (c *Config) applyEnv() {
	if pkg := os.Getenv(EnvPackage); pkg != "" {
		c.Package = pkg
	}
}

// Validate fills unset fields with defaults and rejects unusable values
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version '%s', expected '%s'", c.Version, CurrentVersion)
	}

	if c.Tools.Checker == "" {
		c.Tools.Checker = DefaultChecker
	}
	if c.Tools.Sorter == "" {
		c.Tools.Sorter = DefaultSorter
	}
	if c.Tools.Formatter == "" {
		c.Tools.Formatter = DefaultFormatter
	}
	if c.Tools.Installer == "" {
		c.Tools.Installer = DefaultInstaller
	}

	if len(c.Develop.Packages) == 0 {
		c.Develop.Packages = slices.Clone(DefaultDevelopPackages)
	}

	return nil
}

// CheckPaths returns the paths handed to the style checker. An explicit
// paths.check list wins; otherwise the configured package, falling back to
// the current directory.
func (c *Config) CheckPaths() []string {
	if len(c.Paths.Check) > 0 {
		return dedupe(c.Paths.Check)
	}
	if c.Package != "" {
		return []string{c.Package}
	}
	return []string{"."}
}

// FormatPaths returns the paths the sorter and formatter rewrite. An
// explicit paths.format list wins; otherwise the configured package plus
// the current directory.
func (c *Config) FormatPaths() []string {
	if len(c.Paths.Format) > 0 {
		return dedupe(c.Paths.Format)
	}
	if c.Package != "" {
		return dedupe([]string{c.Package, "."})
	}
	return []string{"."}
}

// dedupe drops exact duplicates while preserving order
func dedupe(paths []string) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if !slices.Contains(result, p) {
			result = append(result, p)
		}
	}
	return result
}
