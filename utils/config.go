package utils

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// SensorParams configures one simulated sensor.
type SensorParams struct {
	Name              string  `mapstructure:"Name"`
	Mean              float64 `mapstructure:"Mean"`
	StandardDeviation float64 `mapstructure:"StandardDeviation"`
}

// Config holds all configuration variables of the application, read from
// the config file or environment variables.
type Config struct {
	NamespaceURI                  string         `mapstructure:"NAMESPACE_URI"`
	SetDelayBetweenMessages       int            `mapstructure:"SET_DELAY_BETWEEN_MESSAGES"`
	RandomizeDelayBetweenMessages bool           `mapstructure:"RANDOMIZE_DELAY_BETWEEN_MESSAGES"`
	SimulatorsParams              []SensorParams `mapstructure:"SIMULATORS"`
}

// NewConfig reads configuration from ./configs/config.json, with
// environment variables taking priority and defaults filling the gaps.
func NewConfig(logger *zap.SugaredLogger) *Config {
	v := viper.New()
	cfg := &Config{}

	v.AddConfigPath("./configs/")
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AutomaticEnv()

	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Warn(Colorize("Config file not found, using default configs", Yellow))
		} else {
			logger.Fatalf("reading config file: %v", err)
		}
	} else {
		logger.Info(Colorize("Config file found and successfully parsed", Green))
	}

	if err := v.Unmarshal(cfg); err != nil {
		logger.Fatalf("unable to decode config into struct: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("NAMESPACE_URI", "http://github.com/amine-amaach/uaspace")
	v.SetDefault("SET_DELAY_BETWEEN_MESSAGES", 5)
	v.SetDefault("RANDOMIZE_DELAY_BETWEEN_MESSAGES", true)
	v.SetDefault("SIMULATORS", []SensorParams{
		{
			Name:              "Temperature",
			Mean:              20.0,
			StandardDeviation: 5.0,
		},
		{
			Name:              "Pressure",
			Mean:              80.0,
			StandardDeviation: 7.0,
		},
		{
			Name:              "Air Quality",
			Mean:              13.0,
			StandardDeviation: 3.0,
		},
	})
}
