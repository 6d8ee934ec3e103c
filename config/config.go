package config

import (
	"errors"
	"fmt"
	"strings"

	"CardGame/internal/game/manager"
	"CardGame/internal/game/player"
	"CardGame/internal/game/winner"

	"github.com/spf13/viper"
)

const envPrefix = "CARDGAME"

type PlayerConfig struct {
	Name   string `mapstructure:"name"`
	Policy string `mapstructure:"policy"`
}

type Config struct {
	Game struct {
		CardsPerPlayer int    `mapstructure:"cardsPerPlayer"`
		WinnerPolicy   string `mapstructure:"winnerPolicy"`
		Rounds         int    `mapstructure:"rounds"`
		Seed           int64  `mapstructure:"seed"`
	} `mapstructure:"game"`
	Players []PlayerConfig `mapstructure:"players"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var C Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.cardsPerPlayer", 3)
	v.SetDefault("game.winnerPolicy", "lowest")
	v.SetDefault("game.rounds", 1)
	v.SetDefault("game.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("players", []map[string]any{
		{"name": "Jens", "policy": "unbounded"},
		{"name": "Dorthe", "policy": "unbounded"},
		{"name": "Finn", "policy": "unbounded"},
		{"name": "Karl", "policy": "capped"},
	})
}

// Load 读取配置文件；path 为空时只用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	C = cfg
	return &cfg, nil
}

// Validate checks values the engine would otherwise reject later.
func (c *Config) Validate() error {
	var errs []error
	if c.Game.CardsPerPlayer <= 0 {
		errs = append(errs, fmt.Errorf("game.cardsPerPlayer must be positive, got %d", c.Game.CardsPerPlayer))
	}
	if c.Game.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("game.rounds must be positive, got %d", c.Game.Rounds))
	}
	if _, err := winner.ByName(c.Game.WinnerPolicy); err != nil {
		errs = append(errs, fmt.Errorf("game.winnerPolicy: %w", err))
	}
	if len(c.Players) < 2 {
		errs = append(errs, fmt.Errorf("need at least 2 players, got %d", len(c.Players)))
	}
	for i, p := range c.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("players[%d]: name is required", i))
		}
		if _, err := player.PolicyByName(p.Policy); err != nil {
			errs = append(errs, fmt.Errorf("players[%d]: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// GameSpec converts the config into what the manager runs.
func (c *Config) GameSpec() manager.GameSpec {
	spec := manager.GameSpec{
		CardsPerPlayer: c.Game.CardsPerPlayer,
		WinnerPolicy:   c.Game.WinnerPolicy,
		Players:        make([]manager.PlayerSpec, 0, len(c.Players)),
	}
	for _, p := range c.Players {
		spec.Players = append(spec.Players, manager.PlayerSpec{Name: p.Name, Policy: p.Policy})
	}
	return spec
}

// Overrides are command-line values; zero values keep the loaded config.
type Overrides struct {
	Seed   int64
	Rounds int
	Policy string
	Debug  bool
}

// Apply 应用命令行覆盖并校验，成功后同步全局 C
func (c *Config) Apply(o Overrides) error {
	if o.Seed != 0 {
		c.Game.Seed = o.Seed
	}
	if o.Rounds != 0 {
		c.Game.Rounds = o.Rounds
	}
	if o.Policy != "" {
		c.Game.WinnerPolicy = o.Policy
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}
	C = *c
	return nil
}
