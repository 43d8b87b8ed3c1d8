// Package config loads the optional TOML configuration file that
// disambiguates the target package and carries (but does not consume)
// the overwrite table.
package config

import "github.com/BurntSushi/toml"

// OverwriteItem renames an emitted type from one name to another. The
// field is parsed and carried for future use but deliberately never
// consulted by the emitter or driver, matching the observed behavior
// of the source this was ported from (see the Design Notes in
// SPEC_FULL.md §9).
type OverwriteItem struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Config is the decoded tsexport.toml contents.
type Config struct {
	PackageName string          `toml:"package_name"`
	Overwrite   []OverwriteItem `toml:"overwrite"`
}

// Load decodes path as TOML. When there is no config file at all (no
// --config flag and no <input>/tsexport.toml), the CLI uses an empty
// Config instead of calling Load.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
