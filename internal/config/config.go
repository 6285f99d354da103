package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/clip-keeper/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the YAML file that was read, empty when none was found.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStoreDir       = "PASSWORD_STORE_DIR"
	envHome           = "HOME"
	envXDGConfigHome  = "XDG_CONFIG_HOME"
	envConfigFile     = "CLIP_KEEPER_CONFIG"
	envPassBinary     = "CLIP_KEEPER_PASS"
	envWidth          = "CLIP_KEEPER_WIDTH"
	envHeight         = "CLIP_KEEPER_HEIGHT"
	envShowFooter     = "CLIP_KEEPER_FOOTER"
	envTrace          = "CLIP_KEEPER_TRACE"
	envLogFile        = "CLIP_KEEPER_LOG_FILE"
	envWait           = "CLIP_KEEPER_WAIT"
	envStrictPaths    = "CLIP_KEEPER_STRICT_PATHS"
	envSkipUnreadable = "CLIP_KEEPER_SKIP_UNREADABLE"

	defaultStoreName  = ".password-store"
	defaultPassBinary = "pass"
)

// ErrNoStore is returned by Validate when no store location could be derived.
var ErrNoStore = errors.New("password store location unknown: pass --store-dir or set PASSWORD_STORE_DIR or HOME")

// HelpError is returned when -h or -help was given. Usage holds the text to
// print.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return flag.ErrHelp.Error() }

func (e *HelpError) Unwrap() error { return flag.ErrHelp }

// Load parses configuration from CLI arguments, environment variables and the
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values are taken
// from flags, then the environment, then the config file, then defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath, explicit := configPath(args, env)
	file, err := readFile(filePath, explicit)
	if err != nil {
		return Config{}, err
	}
	if file.path == "" {
		filePath = ""
	}

	fs := flag.NewFlagSet("clip-keeper", flag.ContinueOnError)
	usage := new(strings.Builder)
	fs.SetOutput(usage)

	fs.String("config", filePath, "path to a YAML config file")
	storeDir := fs.String("store-dir", envOrDefault(env, envStoreDir, expandHome(file.StoreDir, env)), "password store root (default $HOME/"+defaultStoreName+")")
	passBinary := fs.String("pass", envOrDefault(env, envPassBinary, stringOr(file.PassBinary, defaultPassBinary)), "pass executable to run")
	width := fs.Int("width", envOrInt(env, envWidth, intOr(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, intOr(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, boolOr(file.Footer, false)), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, expandHome(file.LogFile, env)), "path to the log file")
	wait := fs.Bool("wait", envOrBool(env, envWait, boolOr(file.Wait, false)), "wait for pass to exit and report its status")
	strict := fs.Bool("strict-paths", envOrBool(env, envStrictPaths, boolOr(file.StrictPaths, false)), "strip the store root by prefix instead of by matching path segments")
	skip := fs.Bool("skip-unreadable", envOrBool(env, envSkipUnreadable, boolOr(file.SkipUnreadable, false)), "skip unreadable directories inside the store instead of failing")
	list := fs.Bool("list", false, "print every entry and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, &HelpError{Usage: usage.String()}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	store := *storeDir
	if store == "" {
		if home := env[envHome]; home != "" {
			store = filepath.Join(home, defaultStoreName)
		}
	}

	cfg := Config{
		App: app.Config{
			StoreDir:       store,
			PassBinary:     *passBinary,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Wait:           *wait,
			StrictPaths:    *strict,
			SkipUnreadable: *skip,
			ListOnly:       *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: file.path,
		Flags: map[string]string{
			"config":         file.path,
			"storeDir":       store,
			"pass":           *passBinary,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"wait":           strconv.FormatBool(*wait),
			"strictPaths":    strconv.FormatBool(*strict),
			"skipUnreadable": strconv.FormatBool(*skip),
			"list":           strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var help *HelpError
		if errors.As(err, &help) {
			fmt.Fprint(os.Stderr, help.Usage)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.StoreDir) == "" {
		return ErrNoStore
	}
	if strings.TrimSpace(cfg.App.PassBinary) == "" {
		return errors.New("pass binary must not be empty")
	}
	return nil
}
