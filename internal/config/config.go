package config

import (
	"cardtable/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for cardtable
type Config struct {
	loaded bool

	// StartingBalance is how many chips each seat starts with
	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
	// Ante is the forced contribution before each hand
	Ante int `yaml:"ante" envconfig:"ante"`
	// LowerLimit is the small bet in limit games; the big bet is twice this
	LowerLimit int `yaml:"lowerLimit" envconfig:"lower_limit"`
	// CPUSeats is how many computer opponents sit at the table
	CPUSeats int `yaml:"cpuSeats" envconfig:"cpu_seats"`
	// Seed makes games reproducible when nonzero
	Seed int64 `yaml:"seed" envconfig:"seed"`
	// Game is the default game: texas-hold-em, five-card-draw, or acey-deucey
	Game string `yaml:"game" envconfig:"game"`
}

var config Config

// Defaults returns the default configuration
func Defaults() Config {
	return Config{
		StartingBalance: 5000,
		Ante:            25,
		LowerLimit:      100,
		CPUSeats:        3,
		Seed:            0,
		Game:            "texas-hold-em",
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults are used and the
// environment is still applied.
func Load() error {
	config = Defaults()

	configFile := util.Getenv("CARDTABLE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardtable", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
