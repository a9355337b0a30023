package config

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Load reads and decodes a TOML configuration file at path, overlaying
// it onto Default() so any field the file omits keeps its compiled-in
// default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader decodes a TOML document from r onto Default().
func LoadReader(r io.Reader) (Config, error) {
	cfg := Default()

	tree, err := toml.LoadReader(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: parse toml")
	}
	if err := tree.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal toml")
	}
	return cfg, nil
}
