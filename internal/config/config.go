// Package config loads batch compilation settings from TOML files.
//
// A batch file names the target SPIR-V version, where modules are
// written and the shaders to compile:
//
//	spirv_version = "1.5"
//	output_dir = "build/spv"
//	jobs = 4
//
//	[log]
//	level = "info"
//	format = "json"
//
//	[[shader]]
//	input = "shaders/particles.vert.yaml"
//	xfb = "shaders/particles.xfb.yaml"
//
//	[[shader]]
//	input = "shaders/particles.frag.nirb"
//	output = "particles.frag.spv"
//
// Relative paths are resolved against the directory holding the file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/spvgen/internal/logger"
	"github.com/gogpu/spvgen/ir"
	"github.com/gogpu/spvgen/spirv"
)

// Config is a decoded batch file.
type Config struct {
	SPIRVVersion string   `toml:"spirv_version"`
	OutputDir    string   `toml:"output_dir"`
	Jobs         int      `toml:"jobs"`
	Debug        bool     `toml:"debug"`
	ValidateIR   bool     `toml:"validate"`
	Log          Log      `toml:"log"`
	Shaders      []Shader `toml:"shader"`

	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-"`
}

// Log configures logging for a batch run.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Shader is one [[shader]] entry.
type Shader struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Xfb    string `toml:"xfb"`
}

// Default returns the settings used for keys a file leaves out.
func Default() Config {
	return Config{
		SPIRVVersion: spirv.DefaultOptions().Version.String(),
		OutputDir:    ".",
		Log: Log{
			Level:  "warn",
			Format: logger.FormatText,
		},
	}
}

// Load reads and validates a batch file.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the settings and every shader entry. All problems
// are reported together.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Version(); err != nil {
		errs = append(errs, err)
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != logger.FormatText && c.Log.Format != logger.FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if len(c.Shaders) == 0 {
		errs = append(errs, errors.New("no [[shader]] entries"))
	}

	outputs := make(map[string]int, len(c.Shaders))
	for i, sh := range c.Shaders {
		if sh.Input == "" {
			errs = append(errs, fmt.Errorf("shader %d: input is required", i))
			continue
		}
		if _, err := ir.EncodingForPath(sh.Input); err != nil {
			errs = append(errs, fmt.Errorf("shader %d: %w", i, err))
		}
		out := c.OutputPath(sh)
		if prev, ok := outputs[out]; ok {
			errs = append(errs, fmt.Errorf("shader %d: output %s already written by shader %d", i, out, prev))
		}
		outputs[out] = i
	}
	return errors.Join(errs...)
}

// Version returns the parsed SPIR-V target version.
func (c *Config) Version() (spirv.Version, error) {
	v, err := spirv.ParseVersion(c.SPIRVVersion)
	if err != nil {
		return spirv.Version{}, fmt.Errorf("spirv_version: %w", err)
	}
	return v, nil
}

// InputPath resolves a shader's input file.
func (c *Config) InputPath(sh Shader) string {
	return c.resolve(sh.Input)
}

// XfbPath resolves a shader's transform feedback descriptor, or returns
// "" when it has none.
func (c *Config) XfbPath(sh Shader) string {
	if sh.Xfb == "" {
		return ""
	}
	return c.resolve(sh.Xfb)
}

// OutputPath resolves where a shader's module is written. Without an
// explicit output the input's base name gets a .spv extension inside
// OutputDir.
func (c *Config) OutputPath(sh Shader) string {
	if sh.Output != "" {
		if filepath.IsAbs(sh.Output) {
			return sh.Output
		}
		return c.resolve(filepath.Join(c.OutputDir, sh.Output))
	}
	base := filepath.Base(sh.Input)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".spv"
	return c.resolve(filepath.Join(c.OutputDir, base))
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Dir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Dir, p)
}
