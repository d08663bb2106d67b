package main

import (
	"context"
	"os"
	"strings"

	httpadapter "colonyplan/internal/adapter/http"
	metricsinmem "colonyplan/internal/adapter/metrics/inmemory"
	gormrepo "colonyplan/internal/adapter/repo/gorm"
	memrepo "colonyplan/internal/adapter/repo/memory"
	memworld "colonyplan/internal/adapter/world/memory"
	"colonyplan/internal/app/locate"
	"colonyplan/internal/app/plan"
	"colonyplan/internal/app/ports"
	"colonyplan/internal/app/sequence"
	"colonyplan/internal/app/statecheck"
	"colonyplan/internal/app/track"
	"colonyplan/internal/app/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type config struct {
	Addr      string `mapstructure:"addr"`
	DBDSN     string `mapstructure:"db_dsn"`
	LogLevel  string `mapstructure:"log_level"`
	WorldSeed int64  `mapstructure:"world_seed"`
	WorldSize int    `mapstructure:"world_size"`
}

// loadConfig reads COLONYPLAN_* environment variables over built-in
// defaults.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix("COLONYPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("world_seed", 1)
	v.SetDefault("world_size", 120)

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	logger := newLogger(cfg.LogLevel)

	states, decisions, txManager := buildRepos(cfg, logger)

	world := memworld.NewDemo(cfg.WorldSeed, cfg.WorldSize, cfg.WorldSize)
	check := statecheck.Checker{Structures: world}
	kpiRecorder := metricsinmem.NewRecorder()

	finder := &locate.Finder{
		World:      world,
		Structures: world,
		Agents:     world,
		Area: validate.AreaValidator{
			World: world, Structures: world, Agents: world, Reach: world, Check: check,
		},
		Scorer: validate.PlacementValidator{
			World: world, Structures: world, Agents: world, Check: check,
		},
		Cache: locate.NewRejectionCache(),
		Log:   logger.With().Str("component", "finder").Logger(),
	}

	tracker := track.NewManager(check)
	tracker.States = states
	tracker.Decisions = decisions
	tracker.Log = logger.With().Str("component", "tracker").Logger()
	if err := tracker.Restore(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("restore construction states")
	}

	planner := &plan.UseCase{
		Sequencer: sequence.UseCase{},
		Finder:    finder,
		Tech:      world,
		Materials: world,
		Executor:  world,
		Tracker:   tracker,
		Decisions: decisions,
		Metrics:   kpiRecorder,
		Log:       logger.With().Str("component", "planner").Logger(),
	}

	h := httpadapter.Handler{
		Planner:   planner,
		Tracker:   tracker,
		Decisions: decisions,
		Tx:        txManager,
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info().Str("addr", cfg.Addr).Bool("postgres", cfg.DBDSN != "").Msg("construction planner listening")
	s.Spin()
}

// buildRepos wires postgres-backed repositories when a DSN is configured
// and falls back to the in-memory store otherwise.
func buildRepos(cfg config, logger zerolog.Logger) (ports.ConstructionStateRepository, ports.DecisionLogRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		store := memrepo.NewStore()
		logger.Info().Msg("no COLONYPLAN_DB_DSN set, using in-memory persistence")
		return memrepo.NewConstructionStateRepo(store), memrepo.NewDecisionLogRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("open postgres")
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate planner tables")
	}
	return gormrepo.NewConstructionStateRepo(db), gormrepo.NewDecisionLogRepo(db), gormrepo.NewTxManager(db)
}
