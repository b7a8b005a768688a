package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	cron "github.com/kaiserkarel/cronrule"
)

// Setting keys, shared by flags, environment (CRONRULE_ prefix) and the config file.
const (
	KeyLogLevel = "log-level"
	KeyLogJSON  = "log-json"
	KeyLocation = "location"
	KeyPoll     = "poll"
	KeyCrontab  = "crontab"
)

// EnvPrefix prefixes environment overrides, e.g. CRONRULE_LOG_LEVEL.
const EnvPrefix = "CRONRULE"

// Settings are the runtime knobs of the binary.
type Settings struct {
	LogLevel string
	LogJSON  bool
	// Location is an IANA zone name; "Local" or empty means the host zone.
	Location string
	Poll     time.Duration
	Crontab  string
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLocation, "Local")
	v.SetDefault(KeyPoll, cron.DefaultPollInterval)
	v.SetDefault(KeyCrontab, "crontab.yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the optional config file into v.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// LoadSettings reads the settings out of v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel: v.GetString(KeyLogLevel),
		LogJSON:  v.GetBool(KeyLogJSON),
		Location: v.GetString(KeyLocation),
		Poll:     v.GetDuration(KeyPoll),
		Crontab:  v.GetString(KeyCrontab),
	}
	if s.Poll <= 0 || s.Poll >= time.Second {
		return Settings{}, errors.Errorf("poll interval %s must be within (0, 1s)", s.Poll)
	}
	if _, err := s.TimeLocation(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// TimeLocation resolves Location.
func (s Settings) TimeLocation() (*time.Location, error) {
	return ResolveLocation(s.Location)
}

// ResolveLocation loads an IANA zone; "" and "Local" mean time.Local.
func ResolveLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading location %q", name)
	}
	return loc, nil
}
