package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"routefinder.dev/pkg/routefinder/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "routefinder"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName     = "root"
	formatFlagName   = "format"
	verboseFlagName  = "verbose"
	fallbackFlagName = "fallback"
	indexFlagName    = "index"
	parallelFlagName = "parallel"

	rootConfigKey     = "project.roots"
	formatConfigKey   = "output.format"
	fallbackConfigKey = "resolve.fallback"
	lensParallelKey   = "lens.parallel"

	manifestFileNameKey    = "manifest.filename"
	manifestDefaultPathKey = "manifest.default_path"
	manifestAlternatesKey  = "manifest.alternates"
	manifestExcludeKey     = "manifest.exclude"
	manifestMaxResultsKey  = "manifest.max_results"
	manifestIndexKey       = "manifest.index"

	routeSuffixKey   = "naming.route_suffix"
	widgetSuffixKey  = "naming.widget_suffix"
	stripSuffixesKey = "naming.strip_suffixes"
	ignoreRoutesKey  = "naming.ignore_routes"

	defaultFormat       = "text"
	defaultFallback     = false
	defaultIndex        = true
	defaultLensParallel = 4

	envPrefix = "ROUTEFINDER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".routefinder.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds a malformed routefinder.yaml error; defaults stay in effect.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// Reported once the logger is configured.
		configReadErr = err
	}
}

func setConfigDefaults() {
	naming := domain.DefaultNaming()
	locator := domain.DefaultLocatorConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, []string{})
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(fallbackConfigKey, defaultFallback)
	viper.SetDefault(lensParallelKey, defaultLensParallel)

	viper.SetDefault(manifestFileNameKey, locator.FileName)
	viper.SetDefault(manifestDefaultPathKey, locator.DefaultPath)
	viper.SetDefault(manifestAlternatesKey, locator.Alternates)
	viper.SetDefault(manifestExcludeKey, locator.Exclude)
	viper.SetDefault(manifestMaxResultsKey, locator.MaxResults)
	viper.SetDefault(manifestIndexKey, defaultIndex)

	viper.SetDefault(routeSuffixKey, naming.RouteSuffix)
	viper.SetDefault(widgetSuffixKey, naming.WidgetSuffix)
	viper.SetDefault(stripSuffixesKey, naming.StripSuffixes)
	viper.SetDefault(ignoreRoutesKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// namingFromConfig reads the route/widget naming convention.
func namingFromConfig() domain.Naming {
	return domain.Naming{
		RouteSuffix:   viper.GetString(routeSuffixKey),
		WidgetSuffix:  viper.GetString(widgetSuffixKey),
		StripSuffixes: viper.GetStringSlice(stripSuffixesKey),
		IgnoreRoutes:  viper.GetStringSlice(ignoreRoutesKey),
	}
}

// locatorConfigFromConfig reads where manifests are searched for.
func locatorConfigFromConfig() domain.LocatorConfig {
	return domain.LocatorConfig{
		FileName:    viper.GetString(manifestFileNameKey),
		DefaultPath: viper.GetString(manifestDefaultPathKey),
		Alternates:  viper.GetStringSlice(manifestAlternatesKey),
		Exclude:     viper.GetStringSlice(manifestExcludeKey),
		MaxResults:  viper.GetInt(manifestMaxResultsKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
