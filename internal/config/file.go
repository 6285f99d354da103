package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors config.yaml. Pointer fields are nil when the key is
// absent.
type fileConfig struct {
	StoreDir       string `yaml:"store_dir"`
	PassBinary     string `yaml:"pass_binary"`
	Width          *int   `yaml:"width"`
	Height         *int   `yaml:"height"`
	Footer         *bool  `yaml:"footer"`
	Trace          *bool  `yaml:"trace"`
	LogFile        string `yaml:"log_file"`
	Wait           *bool  `yaml:"wait"`
	StrictPaths    *bool  `yaml:"strict_paths"`
	SkipUnreadable *bool  `yaml:"skip_unreadable"`

	path string
}

// configPath finds the config file named by --config, CLIP_KEEPER_CONFIG or
// the XDG default. explicit reports whether the user named it.
func configPath(args []string, env map[string]string) (path string, explicit bool) {
	if p, ok := configFlag(args); ok {
		return p, true
	}
	if p := env[envConfigFile]; p != "" {
		return p, true
	}
	dir := env[envXDGConfigHome]
	if dir == "" {
		home := env[envHome]
		if home == "" {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "clip-keeper", "config.yaml"), false
}

// configFlag scans args for -config/--config ahead of flag parsing, since the
// file supplies the defaults the other flags are registered with.
func configFlag(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// readFile loads path. A missing default file is not an error; a missing
// explicit one is.
func readFile(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

func expandHome(path string, env map[string]string) string {
	home := env[envHome]
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
