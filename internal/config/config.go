package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	AI      AIConfig      `mapstructure:"ai"`
	Match   MatchConfig   `mapstructure:"match"`
	Sandbox SandboxConfig `mapstructure:"sandbox"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AIConfig holds the tuning constants of the decision engine
type AIConfig struct {
	// Fraction of the compute allowance after which only the cheap fallback runs
	MaxStatus float64 `mapstructure:"max_status"`
	// Cost ceiling of the car target search
	CarRange int `mapstructure:"car_range"`
	// Targets farther than this from a road are ignored
	MaxDistRoad int `mapstructure:"max_dist_road"`
	// Radius used to count enemy warriors around a target
	AccumulationRadius int `mapstructure:"accumulation_radius"`
	// Distance at which a warrior starts worrying about enemy cars
	EnemyCarRange int `mapstructure:"enemy_car_range"`
	// Minimum distance a car keeps from enemy cars
	CarSafetyDistance int `mapstructure:"car_safety_distance"`
	// Cells closer than this to the search start need not be safe
	SearchSafetyRadius int `mapstructure:"search_safety_radius"`
	MinWater           int `mapstructure:"min_water"`
	MinFood            int `mapstructure:"min_food"`
	MinFuel            int `mapstructure:"min_fuel"`
	// Below this many owned city groups the faction turns aggressive
	MinCityGroups     int  `mapstructure:"min_city_groups"`
	CarPressureWeight int  `mapstructure:"car_pressure_weight"`
	DensityCity       int  `mapstructure:"density_city"`
	DensityOpen       int  `mapstructure:"density_open"`
	SeekFood          bool `mapstructure:"seek_food"`
}

// MatchConfig holds match runner settings
type MatchConfig struct {
	Players int   `mapstructure:"players"`
	Rounds  int   `mapstructure:"rounds"`
	Seed    int64 `mapstructure:"seed"`
	// Wall-clock budget per player for the whole match, in milliseconds
	CPUBudgetMs int    `mapstructure:"cpu_budget_ms"`
	Scenario    string `mapstructure:"scenario"`
}

// SandboxConfig holds the rules of the bundled sandbox engine
type SandboxConfig struct {
	Units UnitsConfig `mapstructure:"units"`
	Map   MapConfig   `mapstructure:"map"`
	Score ScoreConfig `mapstructure:"score"`
}

// UnitsConfig holds unit stats
type UnitsConfig struct {
	WarriorsPerPlayer int `mapstructure:"warriors_per_player"`
	CarsPerPlayer     int `mapstructure:"cars_per_player"`
	MaxFood           int `mapstructure:"max_food"`
	MaxWater          int `mapstructure:"max_water"`
	MaxFuel           int `mapstructure:"max_fuel"`
	AttackDamage      int `mapstructure:"attack_damage"`
	// Rounds a car waits between moves when off-road
	OffRoadDelay int `mapstructure:"off_road_delay"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Cities      int `mapstructure:"cities"`
	CitySize    int `mapstructure:"city_size"`
	Roads       int `mapstructure:"roads"`
	Ponds       int `mapstructure:"ponds"`
	Stations    int `mapstructure:"stations"`
	WallDensity int `mapstructure:"wall_density"`
}

// ScoreConfig holds scoring rules
type ScoreConfig struct {
	CityGroup int `mapstructure:"city_group"`
	Kill      int `mapstructure:"kill"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// AI defaults
	v.SetDefault("ai.max_status", 0.99)
	v.SetDefault("ai.car_range", 30)
	v.SetDefault("ai.max_dist_road", 3)
	v.SetDefault("ai.accumulation_radius", 5)
	v.SetDefault("ai.enemy_car_range", 2)
	v.SetDefault("ai.car_safety_distance", 2)
	v.SetDefault("ai.search_safety_radius", 2)
	v.SetDefault("ai.min_water", 16)
	v.SetDefault("ai.min_food", 12)
	v.SetDefault("ai.min_fuel", 30)
	v.SetDefault("ai.min_city_groups", 4)
	v.SetDefault("ai.car_pressure_weight", 5)
	v.SetDefault("ai.density_city", 1)
	v.SetDefault("ai.density_open", 3)
	v.SetDefault("ai.seek_food", false)

	// Match defaults
	v.SetDefault("match.players", 4)
	v.SetDefault("match.rounds", 200)
	v.SetDefault("match.seed", 1)
	v.SetDefault("match.cpu_budget_ms", 10000)
	v.SetDefault("match.scenario", "")

	// Sandbox defaults
	v.SetDefault("sandbox.units.warriors_per_player", 20)
	v.SetDefault("sandbox.units.cars_per_player", 3)
	v.SetDefault("sandbox.units.max_food", 40)
	v.SetDefault("sandbox.units.max_water", 40)
	v.SetDefault("sandbox.units.max_fuel", 100)
	v.SetDefault("sandbox.units.attack_damage", 6)
	v.SetDefault("sandbox.units.off_road_delay", 4)
	v.SetDefault("sandbox.map.cities", 8)
	v.SetDefault("sandbox.map.city_size", 4)
	v.SetDefault("sandbox.map.roads", 6)
	v.SetDefault("sandbox.map.ponds", 10)
	v.SetDefault("sandbox.map.stations", 6)
	v.SetDefault("sandbox.map.wall_density", 2)
	v.SetDefault("sandbox.score.city_group", 10)
	v.SetDefault("sandbox.score.kill", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/desertwars")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("DWAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// A specific file that does not exist falls back to defaults
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Unmarshal into config struct
	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = loaded
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Default returns a fresh config holding only the built-in defaults.
// It does not touch the global instance.
func Default() *Config {
	dv := viper.New()
	setViperDefaults(dv)
	c := &Config{}
	if err := dv.Unmarshal(c); err != nil {
		panic("failed to decode default config: " + err.Error())
	}
	return c
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	// Re-unmarshal to update struct
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to apply %s: %w", key, err)
	}
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file.
// onChange receives the reloaded AI section; invalid files are ignored.
func WatchConfig(onChange func(AIConfig)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded := &Config{}
		if err := v.Unmarshal(reloaded); err != nil {
			return
		}
		if err := Validate(reloaded); err != nil {
			return
		}
		*cfg = *reloaded
		if onChange != nil {
			onChange(reloaded.AI)
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate AI tuning
	if c.AI.MaxStatus <= 0 || c.AI.MaxStatus > 1 {
		return fmt.Errorf("ai.max_status must be in (0, 1]")
	}
	if c.AI.CarRange <= 0 {
		return fmt.Errorf("ai.car_range must be positive")
	}
	if c.AI.MaxDistRoad <= 0 {
		return fmt.Errorf("ai.max_dist_road must be positive")
	}
	if c.AI.AccumulationRadius < 1 {
		return fmt.Errorf("ai.accumulation_radius must be at least 1")
	}
	if c.AI.EnemyCarRange < 1 {
		return fmt.Errorf("ai.enemy_car_range must be at least 1")
	}
	if c.AI.CarSafetyDistance < 0 || c.AI.SearchSafetyRadius < 0 {
		return fmt.Errorf("ai safety distances must be non-negative")
	}
	if c.AI.MinWater < 0 || c.AI.MinFood < 0 || c.AI.MinFuel < 0 {
		return fmt.Errorf("ai resource thresholds must be non-negative")
	}
	if c.AI.MinCityGroups < 0 {
		return fmt.Errorf("ai.min_city_groups must be non-negative")
	}
	if c.AI.CarPressureWeight < 0 || c.AI.DensityCity < 0 || c.AI.DensityOpen < 0 {
		return fmt.Errorf("ai scoring weights must be non-negative")
	}

	// Validate match settings
	if c.Match.Players < 2 || c.Match.Players > 4 {
		return fmt.Errorf("match.players must be between 2 and 4")
	}
	if c.Match.Rounds <= 0 {
		return fmt.Errorf("match.rounds must be positive")
	}
	if c.Match.CPUBudgetMs <= 0 {
		return fmt.Errorf("match.cpu_budget_ms must be positive")
	}

	// Validate sandbox rules
	u := c.Sandbox.Units
	if u.WarriorsPerPlayer < 0 || u.CarsPerPlayer < 0 {
		return fmt.Errorf("sandbox.units counts must be non-negative")
	}
	if u.MaxFood <= 0 || u.MaxWater <= 0 || u.MaxFuel <= 0 {
		return fmt.Errorf("sandbox.units maxima must be positive")
	}
	if u.AttackDamage <= 0 {
		return fmt.Errorf("sandbox.units.attack_damage must be positive")
	}
	if u.OffRoadDelay < 1 {
		return fmt.Errorf("sandbox.units.off_road_delay must be at least 1")
	}
	if c.Sandbox.Map.CitySize < 1 {
		return fmt.Errorf("sandbox.map.city_size must be at least 1")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
