package main

import (
	"context"
	"os"
	"os/signal"

	"CardGame/config"
	"CardGame/internal/display"
	"CardGame/internal/events"
	"CardGame/internal/game/manager"
	"CardGame/internal/game/random"
	"CardGame/internal/utils"

	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Config  string           `short:"c" help:"Path to config file (empty for built-in defaults)." default:"config/config.yaml"`
	Seed    int64            `help:"Random seed; 0 keeps the config value, which if also 0 means time based."`
	Rounds  int              `short:"n" help:"Number of games to play; 0 keeps the config value."`
	Policy  string           `help:"Winner policy override (highest or lowest)."`
	Debug   bool             `help:"Enable debug logging."`
	Version kong.VersionFlag `short:"v" help:"Show version."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardgame"),
		kong.Description("Deal random cards to players and announce the winner."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)

	//-------------------------------------------------------
	// 1. 命令行覆盖配置
	//-------------------------------------------------------
	ctx.FatalIfErrorf(cfg.Apply(config.Overrides{
		Seed:   cli.Seed,
		Rounds: cli.Rounds,
		Policy: cli.Policy,
		Debug:  cli.Debug,
	}))

	logger := utils.Init(os.Stderr, cfg.Log.Level)

	//-------------------------------------------------------
	// 2. Hub + 控制台输出
	//-------------------------------------------------------
	hub := events.NewHub()
	hub.Register("console", display.NewConsole(os.Stdout).Handle)

	var src random.Source = random.Default()
	if cfg.Game.Seed != 0 {
		src = random.New(cfg.Game.Seed)
	}

	//-------------------------------------------------------
	// 3. 开局
	//-------------------------------------------------------
	mgr := manager.NewGameManager(hub, src, logger)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := mgr.Play(runCtx, cfg.GameSpec(), cfg.Game.Rounds)
	if err != nil {
		logger.Error("play failed", "err", err, "played", len(results))
		stop()
		os.Exit(1)
	}

	if len(results) > 1 {
		for _, s := range mgr.Standings() {
			logger.Info("standing", "seat", s.Seat, "player", s.Name, "wins", s.Wins)
		}
	}
}
