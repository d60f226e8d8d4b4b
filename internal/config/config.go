package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIAuto    = "auto"
	UIScreen  = "screen"
	UIConsole = "console"
)

var ErrUnknownUI = errors.New("unknown ui mode")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE"`
	UI       string  `yaml:"ui" env:"UI" env-default:"auto"`
	Symbols  Symbols `yaml:"symbols"`
}

type Symbols struct {
	Human    string `yaml:"human" env:"HUMAN_SYMBOL" env-default:"O"`
	Computer string `yaml:"computer" env:"COMPUTER_SYMBOL" env-default:"X"`
}

// MustLoad - load configuration from the yaml file at path, overridden by the
// environment. A missing file is not an error: defaults and env are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.UI {
	case UIAuto, UIScreen, UIConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUI, that.UI)
	}

	return nil
}

// HumanSymbol returns the first rune of the configured human symbol.
func (that *Symbols) HumanSymbol() rune {
	return firstRune(that.Human, 'O')
}

func (that *Symbols) ComputerSymbol() rune {
	return firstRune(that.Computer, 'X')
}

func firstRune(s string, fallback rune) rune {
	if r, size := utf8.DecodeRuneInString(s); size > 0 && r != utf8.RuneError {
		return r
	}
	return fallback
}
