package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "checksyntax"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName  = "report"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"

	rootConfigKey   = "check.root"
	reportConfigKey = "check.report"
	plainConfigKey  = "ui.plain"

	defaultReportPath = ""
	defaultPlain      = false

	envPrefix = "CHECKSYNTAX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".checksyntax.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds a config file read failure until a command can report it.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	// An empty root means the directory the binary is deployed in.
	viper.SetDefault(rootConfigKey, "")
	viper.SetDefault(reportConfigKey, defaultReportPath)
	viper.SetDefault(plainConfigKey, defaultPlain)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig loads checksyntax.yaml if present. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", configFileName, err)
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
// By default it logs at the configured level; if verbose is true it logs at Debug.
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
