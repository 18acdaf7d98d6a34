package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/atomicstack/tmenu/internal/app"
	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/launcher"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the configuration file that was read, empty when none was.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// HelpError is returned when --help was requested. Usage holds the text to
// print.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return "help requested" }

const (
	envConfig  = "TMENU_CONFIG"
	envDirs    = "TMENU_DIRS"
	envShell   = "TMENU_SHELL"
	envWait    = "TMENU_WAIT"
	envWidth   = "TMENU_WIDTH"
	envHeight  = "TMENU_HEIGHT"
	envLogFile = "TMENU_LOG_FILE"
	envTrace   = "TMENU_TRACE"

	defaultConfigFile = "tmenu/config.toml"
)

// fileConfig mirrors config.toml. Pointer fields distinguish "unset" from a
// zero value so the file only overrides what it mentions.
type fileConfig struct {
	Directories    []string `toml:"directories"`
	Shell          *string  `toml:"shell"`
	Wait           *bool    `toml:"wait"`
	Width          *int     `toml:"width"`
	Height         *int     `toml:"height"`
	SingleInstance *bool    `toml:"single_instance"`
	LockFile       *string  `toml:"lock_file"`
	LogFile        *string  `toml:"log_file"`
	Trace          *bool    `toml:"trace"`
}

// Load parses configuration from CLI arguments, environment variables and the
// configuration file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Later sources
// win: built-in defaults, then the file, then the environment, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(args, env)
	file, found, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}
	if !found {
		path = ""
	}

	flags := pflag.NewFlagSet("tmenu", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	flags.String("config", path, "path to the TOML configuration file")
	dirs := flags.StringArrayP("dir", "d", envOrList(env, envDirs, fileList(file.Directories, catalog.DefaultDirs())), "directory to scan for .desktop files (repeatable, earlier wins)")
	shell := flags.String("shell", envOrDefault(env, envShell, fileString(file.Shell, launcher.DefaultShell)), "shell used to run launch commands")
	wait := flags.Bool("wait", envOrBool(env, envWait, fileBool(file.Wait, false)), "wait for the launched command to exit")
	width := flags.Int("width", envOrInt(env, envWidth, fileInt(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := flags.Int("height", envOrInt(env, envHeight, fileInt(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	single := flags.Bool("single-instance", fileBool(file.SingleInstance, false), "refuse to start while another instance runs")
	printOnly := flags.Bool("print", false, "print the selected command instead of running it")
	list := flags.Bool("list", false, "print the catalog as a table and exit")
	logFile := flags.String("log-file", envOrDefault(env, envLogFile, fileString(file.LogFile, "")), "path to the log file")
	trace := flags.Bool("trace", envOrBool(env, envTrace, fileBool(file.Trace, false)), "enable verbose JSON trace logging")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &HelpError{Usage: usage(flags)}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Directories:    append([]string(nil), (*dirs)...),
			Shell:          strings.TrimSpace(*shell),
			Wait:           *wait,
			Print:          *printOnly,
			List:           *list,
			Width:          *width,
			Height:         *height,
			SingleInstance: *single,
			LockPath:       fileString(file.LockFile, ""),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"dir":            strings.Join(*dirs, string(filepath.ListSeparator)),
			"shell":          *shell,
			"wait":           strconv.FormatBool(*wait),
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"singleInstance": strconv.FormatBool(*single),
			"print":          strconv.FormatBool(*printOnly),
			"list":           strconv.FormatBool(*list),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func usage(flags *pflag.FlagSet) string {
	return "Usage: tmenu [flags]\n\nPick an installed application and launch it.\n\nFlags:\n" + flags.FlagUsages()
}

// configPath finds the configuration file before the full flag set is built,
// since the file supplies that set's defaults. The second result reports
// whether the path was asked for explicitly.
func configPath(args []string, env map[string]string) (string, bool) {
	pre := pflag.NewFlagSet("tmenu", pflag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.BoolP("help", "h", false, "")
	path := pre.String("config", "", "")
	_ = pre.Parse(args)
	if pre.Changed("config") {
		return *path, true
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	if found, err := xdg.SearchConfigFile(defaultConfigFile); err == nil {
		return found, false
	}
	return "", false
}

func readFile(path string, explicit bool) (fileConfig, bool, error) {
	var file fileConfig
	if path == "" {
		return file, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return file, false, nil
		}
		return file, false, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, true, nil
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

func envOrList(env map[string]string, key string, fallback []string) []string {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range filepath.SplitList(v) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
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

func fileString(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func fileBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func fileInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func fileList(v []string, fallback []string) []string {
	if len(v) == 0 {
		return fallback
	}
	return v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var help *HelpError
		if errors.As(err, &help) {
			fmt.Fprint(os.Stdout, help.Usage)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if strings.TrimSpace(cfg.App.Shell) == "" {
		errs = append(errs, errors.New("shell must not be empty"))
	}
	if len(cfg.App.Directories) == 0 {
		errs = append(errs, errors.New("at least one application directory is required"))
	}
	if cfg.App.Print && cfg.App.List {
		errs = append(errs, errors.New("--print and --list are mutually exclusive"))
	}
	return errors.Join(errs...)
}
