/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package rcconfig defines rcc's TOML configuration file, in the same
// nice-exported-struct-names-for-better-TOML-errors style as holo-build's
// PackageDefinition (see parser.go there).
package rcconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the top-level TOML document accepted via --config, covering
// the Configuration contract from spec §6.
type Config struct {
	Input  InputSection
	Output OutputSection
	Limits LimitsSection
}

// InputSection controls source resolution: the default code page, default
// language, and the include search path (spec §4.6, §6).
type InputSection struct {
	DefaultCodePage int
	DefaultLanguage uint16
	IncludePaths    []string
	Tolerant        bool
}

// OutputSection controls how the compiled ".res" is written.
type OutputSection struct {
	Path         string
	Reproducible bool
}

// LimitsSection overrides the fixed ceilings spec §6 otherwise hardcodes,
// so a caller can tighten (never loosen below spec's own minimums) them
// for a specific build.
type LimitsSection struct {
	MaxStringLiteralCodeUnits int
}

// DefaultConfig returns a Config seeded with spec §6's documented
// defaults, mirroring holo-build's PackageDefinition zero-value-plus-
// explicit-defaults pattern.
func DefaultConfig() Config {
	return Config{
		Input: InputSection{
			DefaultCodePage: 1252,
			DefaultLanguage: 0x0409, // en-US
			Tolerant:        false,
		},
		Output: OutputSection{
			Reproducible: false,
		},
		Limits: LimitsSection{
			MaxStringLiteralCodeUnits: 4097,
		},
	}
}

// Load reads and decodes a TOML configuration file, starting from
// DefaultConfig so any field the file omits keeps its documented default.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config file %s has unrecognized keys: %v", path, undecoded)
	}
	return cfg, nil
}
