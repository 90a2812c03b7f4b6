package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/internal/logger"
)

// EnvPrefix prefixes every environment override: JSONTYPER_LOG_LEVEL
const EnvPrefix = "JSONTYPER"

// LoadDotEnv loads the first existing .env file of paths into the process
// environment. Variables already set are not overridden.
func LoadDotEnv(paths ...string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// Settings resolves flag values with JSONTYPER_* environment overrides.
// An explicitly set flag wins over the environment.
type Settings struct {
	v *viper.Viper
}

// NewSettings binds flags so that their values can be overridden from the environment
func NewSettings(flags ...*pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for _, set := range flags {
		if set == nil {
			continue
		}
		if err := v.BindPFlags(set); err != nil {
			return nil, err
		}
	}
	return &Settings{v: v}, nil
}

// String returns the flag, environment or default value for key
func (s *Settings) String(key string) string {
	return s.v.GetString(key)
}

// Bool is String for boolean settings
func (s *Settings) Bool(key string) bool {
	return s.v.GetBool(key)
}

// Logger builds the process logger from the log-level and log-format settings
func (s *Settings) Logger() (*zap.Logger, error) {
	return logger.New(s.String("log-level"), s.String("log-format"))
}
