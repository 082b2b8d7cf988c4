package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys, shared by the settings file and the command-line flags.
const (
	KeyRoot     = "root"
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyKey      = "key"
	KeyIndent   = "indent"
	KeyASCII    = "ascii"
	KeyRequires = "requires"
)

const fileType = "yaml"

// MaxIndent bounds the indent setting, matching config.schema.json.
const MaxIndent = 16

// Config is the resolved set of run settings.
type Config struct {
	Root     string
	Input    string
	Output   string
	Key      string
	Indent   int
	ASCII    bool
	Requires string
}

// Load resolves settings from flags and, when path is non-empty, the YAML
// settings file at path. Flags set on the command line win over the file;
// the file wins over flag defaults. The environment is not consulted.
//
// A relative root read from the settings file is taken relative to the
// file's directory; a relative --root flag is taken relative to the
// working directory.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType(fileType)

	for _, key := range []string{KeyRoot, KeyInput, KeyOutput, KeyKey, KeyIndent, KeyASCII} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", key, err)
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}

		result, err := Validate(data)
		if err != nil {
			return nil, fmt.Errorf("validating config file %s: %w", path, err)
		}
		if !result.Valid {
			return nil, &InvalidError{Path: path, Issues: result.Issues}
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Root:     v.GetString(KeyRoot),
		Input:    v.GetString(KeyInput),
		Output:   v.GetString(KeyOutput),
		Key:      v.GetString(KeyKey),
		Indent:   v.GetInt(KeyIndent),
		ASCII:    v.GetBool(KeyASCII),
		Requires: v.GetString(KeyRequires),
	}

	if cfg.Indent < 0 || cfg.Indent > MaxIndent {
		return nil, fmt.Errorf("indent must be between 0 and %d, got %d", MaxIndent, cfg.Indent)
	}

	rootFromFlag := flags.Lookup(KeyRoot) != nil && flags.Changed(KeyRoot)
	if path != "" && !rootFromFlag && cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}

	return cfg, nil
}
