package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DEFAULT_TURN_SPEED          = 10.0
	DEFAULT_SHARPTURN_SPEED     = 5.0
	DEFAULT_SHARPTURN_THRESHOLD = 35.0
	DEFAULT_TURN_THRESHOLD      = 25.0
	DEFAULT_CRUISE_ALTITUDE     = 0.0
	DEFAULT_SPEED_LIMIT         = 26.07
	DEFAULT_SPEED_ATTRIBUTE     = "maxspeed_kts"
	DEFAULT_COORD_PRECISION     = 6
)

// RouteConfig. options of the route assembler.
type RouteConfig struct {
	DefaultSpeedLimit   float64 `mapstructure:"default_speed_limit"`
	SpeedAttribute      string  `mapstructure:"speed_attribute_name"`
	CoordinatePrecision int     `mapstructure:"coordinate_precision"`
}

// TurnConfig. bearing change thresholds in degrees.
type TurnConfig struct {
	SharpTurnThreshold float64 `mapstructure:"sharpturn_threshold_degrees"`
	TurnThreshold      float64 `mapstructure:"turn_threshold_degrees"`
}

// ScenarioConfig. speeds use the same unit as the speed limits (kts by default), altitude in ft.
type ScenarioConfig struct {
	TurnSpeed      float64 `mapstructure:"turn_speed"`
	SharpTurnSpeed float64 `mapstructure:"sharpturn_speed"`
	CruiseAltitude float64 `mapstructure:"cruise_altitude"`
}

type Config struct {
	Route    RouteConfig
	Turn     TurnConfig
	Scenario ScenarioConfig
}

func DefaultConfig() Config {
	return Config{
		Route: RouteConfig{
			DefaultSpeedLimit:   DEFAULT_SPEED_LIMIT,
			SpeedAttribute:      DEFAULT_SPEED_ATTRIBUTE,
			CoordinatePrecision: DEFAULT_COORD_PRECISION,
		},
		Turn: TurnConfig{
			SharpTurnThreshold: DEFAULT_SHARPTURN_THRESHOLD,
			TurnThreshold:      DEFAULT_TURN_THRESHOLD,
		},
		Scenario: ScenarioConfig{
			TurnSpeed:      DEFAULT_TURN_SPEED,
			SharpTurnSpeed: DEFAULT_SHARPTURN_SPEED,
			CruiseAltitude: DEFAULT_CRUISE_ALTITUDE,
		},
	}
}

func (c Config) Validate() error {
	if c.Turn.TurnThreshold < 0 || c.Turn.SharpTurnThreshold < 0 ||
		c.Turn.TurnThreshold > 180 || c.Turn.SharpTurnThreshold > 180 {
		return fmt.Errorf("turn thresholds must be within [0, 180] degrees, got turn=%v sharpturn=%v",
			c.Turn.TurnThreshold, c.Turn.SharpTurnThreshold)
	}
	if c.Turn.SharpTurnThreshold < c.Turn.TurnThreshold {
		return fmt.Errorf("sharpturn_threshold_degrees (%v) must not be below turn_threshold_degrees (%v)",
			c.Turn.SharpTurnThreshold, c.Turn.TurnThreshold)
	}
	if c.Route.CoordinatePrecision < 0 || c.Route.CoordinatePrecision > 15 {
		return fmt.Errorf("coordinate_precision must be within [0, 15], got %d", c.Route.CoordinatePrecision)
	}
	if c.Route.SpeedAttribute == "" {
		return errors.New("speed_attribute_name must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("turn_speed", def.Scenario.TurnSpeed)
	v.SetDefault("sharpturn_speed", def.Scenario.SharpTurnSpeed)
	v.SetDefault("cruise_altitude", def.Scenario.CruiseAltitude)
	v.SetDefault("sharpturn_threshold_degrees", def.Turn.SharpTurnThreshold)
	v.SetDefault("turn_threshold_degrees", def.Turn.TurnThreshold)
	v.SetDefault("default_speed_limit", def.Route.DefaultSpeedLimit)
	v.SetDefault("speed_attribute_name", def.Route.SpeedAttribute)
	v.SetDefault("coordinate_precision", def.Route.CoordinatePrecision)

	v.SetDefault("API_PORT", 6060)
	v.SetDefault("API_TIMEOUT", "60s")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("ROUTE_CACHE_SIZE", 1024)
}

// ReadConfig. load config.yaml from configPath (./data/ when empty) into the global viper instance.
// a missing config file is not an error, defaults and ROADROUTE_* env vars still apply.
func ReadConfig(configPath string) (Config, error) {
	return readConfig(viper.GetViper(), configPath)
}

func readConfig(v *viper.Viper, configPath string) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("ROADROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "./data/"
	}
	v.SetConfigName("config")
	v.AddConfigPath(configPath)

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("fatal error config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg.Route); err != nil {
		return Config{}, fmt.Errorf("decode route config: %w", err)
	}
	if err := v.Unmarshal(&cfg.Turn); err != nil {
		return Config{}, fmt.Errorf("decode turn config: %w", err)
	}
	if err := v.Unmarshal(&cfg.Scenario); err != nil {
		return Config{}, fmt.Errorf("decode scenario config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
