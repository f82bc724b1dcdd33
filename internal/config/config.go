// Package config loads hiergen settings from .hiergen/config.{yaml,json,toml}.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/example/hiergen/internal/core/hierarchy"
	"github.com/example/hiergen/internal/errors"
)

const (
	// DirName is the directory holding the config file.
	DirName = ".hiergen"
	// EnvPrefix prefixes environment overrides, e.g. HIERGEN_LOG_VERBOSITY.
	EnvPrefix = "HIERGEN"
)

// Config represents the hiergen configuration.
type Config struct {
	Naming   NamingConfig   `mapstructure:"naming" yaml:"naming"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
}

// NamingConfig overrides the prefixes and includes baked into generated code.
type NamingConfig struct {
	MyRTTIClassPrefix     string `mapstructure:"myrtti_class_prefix" yaml:"myrtti_class_prefix" validate:"required,cident"`
	MyRTTIFilePrefix      string `mapstructure:"myrtti_file_prefix" yaml:"myrtti_file_prefix" validate:"required"`
	MyRTTIInclude         string `mapstructure:"myrtti_include" yaml:"myrtti_include" validate:"required"`
	UnrealClassPrefix     string `mapstructure:"unreal_class_prefix" yaml:"unreal_class_prefix" validate:"required,cident"`
	UnrealBaseClass       string `mapstructure:"unreal_base_class" yaml:"unreal_base_class" validate:"required,cident"`
	UnrealUmbrellaInclude string `mapstructure:"unreal_umbrella_include" yaml:"unreal_umbrella_include" validate:"required"`
	UnrealBaseHeader      string `mapstructure:"unreal_base_header" yaml:"unreal_base_header"`
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" yaml:"verbosity" validate:"min=0"`
}

// ManifestConfig controls the generation ledger.
type ManifestConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Path is the SQLite file. Empty means ~/.hiergen/manifest.db.
	Path string `mapstructure:"path" yaml:"path"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("cident", func(fl validator.FieldLevel) bool {
		return isCIdentifier(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func isCIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	n := hierarchy.DefaultNaming()
	return &Config{
		Naming: NamingConfig{
			MyRTTIClassPrefix:     n.MyRTTIClassPrefix,
			MyRTTIFilePrefix:      n.MyRTTIFilePrefix,
			MyRTTIInclude:         n.MyRTTIInclude,
			UnrealClassPrefix:     n.UnrealClassPrefix,
			UnrealBaseClass:       n.UnrealBaseClass,
			UnrealUmbrellaInclude: n.UnrealUmbrellaInclude,
			UnrealBaseHeader:      n.UnrealBaseHeader,
		},
	}
}

// LoadConfig reads .hiergen/config.* from dir. A missing file is not an
// error: defaults and HIERGEN_* environment variables still apply.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(dir, DirName))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("naming.myrtti_class_prefix", d.Naming.MyRTTIClassPrefix)
	v.SetDefault("naming.myrtti_file_prefix", d.Naming.MyRTTIFilePrefix)
	v.SetDefault("naming.myrtti_include", d.Naming.MyRTTIInclude)
	v.SetDefault("naming.unreal_class_prefix", d.Naming.UnrealClassPrefix)
	v.SetDefault("naming.unreal_base_class", d.Naming.UnrealBaseClass)
	v.SetDefault("naming.unreal_umbrella_include", d.Naming.UnrealUmbrellaInclude)
	v.SetDefault("naming.unreal_base_header", d.Naming.UnrealBaseHeader)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.verbosity", d.Log.Verbosity)
	v.SetDefault("manifest.enabled", d.Manifest.Enabled)
	v.SetDefault("manifest.path", d.Manifest.Path)
}

// Validate checks that the naming yields legal C++ identifiers.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "invalid config"),
			"class prefixes and the Unreal base class must be C++ identifiers",
		)
	}
	return nil
}

// ToNaming converts the naming section for the generator.
func (c *Config) ToNaming() hierarchy.Naming {
	return hierarchy.Naming{
		MyRTTIClassPrefix:     c.Naming.MyRTTIClassPrefix,
		MyRTTIFilePrefix:      c.Naming.MyRTTIFilePrefix,
		MyRTTIInclude:         c.Naming.MyRTTIInclude,
		UnrealClassPrefix:     c.Naming.UnrealClassPrefix,
		UnrealBaseClass:       c.Naming.UnrealBaseClass,
		UnrealUmbrellaInclude: c.Naming.UnrealUmbrellaInclude,
		UnrealBaseHeader:      c.Naming.UnrealBaseHeader,
	}
}

// ConfigPath returns the path SaveConfig writes to.
func ConfigPath(dir string) string {
	return filepath.Join(dir, DirName, "config.yaml")
}

// SaveConfig writes cfg as YAML to .hiergen/config.yaml under dir.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(dir, DirName), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s dir", DirName)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(ConfigPath(dir), data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}
