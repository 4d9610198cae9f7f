package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TABWRITE"

const (
	keySep       = "sep"
	keyClosing   = "closing"
	keyLogLevel  = "log-level"
	keyDumpState = "dump-state"
)

type config struct {
	Sep       string
	Closing   string
	LogLevel  string
	DumpState string
}

func addFlags(fs *pflag.FlagSet, configFile *string) {
	fs.StringP(keySep, "s", "", "column separator")
	fs.String(keyClosing, "separator", "what follows the last cell of a line (separator|none)")
	fs.String(keyLogLevel, "warn", "log level (debug|info|warn|error)")
	fs.String(keyDumpState, "", "dump buffered state to stderr before flushing (text|json|yaml)")
	fs.StringVar(configFile, "config", "", "config file (yaml, toml or json)")
}

// loadConfig resolves settings with precedence flag, environment, config
// file, default.
func loadConfig(fs *pflag.FlagSet, configFile string) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{keySep, keyClosing, keyLogLevel, keyDumpState} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return config{}, err
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return config{
		Sep:       v.GetString(keySep),
		Closing:   v.GetString(keyClosing),
		LogLevel:  v.GetString(keyLogLevel),
		DumpState: v.GetString(keyDumpState),
	}, nil
}

func getLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("invalid log level: %v", level)
	}
}
