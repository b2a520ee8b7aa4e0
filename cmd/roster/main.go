package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"go.uber.org/fx"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/config"
	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/logger"
	"github.com/rosterkit/roster/internal/render"
	"github.com/rosterkit/roster/internal/repository/memory"
	"github.com/rosterkit/roster/internal/sampledata"
	"github.com/rosterkit/roster/internal/service"
	"github.com/rosterkit/roster/internal/types"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Local overrides come from .env when present.
	_ = godotenv.Load()

	fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Repositories
			memory.NewPersonRepository,

			// Services
			newServiceParams,
			service.NewPersonService,
		),
		fx.Invoke(runDemo),
	).Run()
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	personRepo person.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:     log,
		Config:     cfg,
		PersonRepo: personRepo,
	}
}

func runDemo(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Configuration,
	log *logger.Logger,
	svc service.PersonService,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := demo(cfg, log, svc); err != nil {
					log.Errorw("demo failed", "error", err)
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func demo(cfg *config.Configuration, log *logger.Logger, svc service.PersonService) error {
	clk, err := cfg.Roster.Clock()
	if err != nil {
		return err
	}
	ctx := clock.Into(context.Background(), clk)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST))

	network, err := types.ParseSocialNetwork(cfg.Roster.Network)
	if err != nil {
		return err
	}

	people, err := sampledata.SeedPeople(ctx, svc)
	if err != nil {
		return err
	}
	log.Infow("seeded sample roster",
		"count", len(people),
		"reference_date", clk.Now().Format(time.DateOnly),
	)

	matches, err := svc.StreamOlderWithNetwork(ctx, cfg.Roster.MinAgeOver, network)
	if err != nil {
		return err
	}

	now := clk.Now()
	for p := range matches {
		switch cfg.Roster.Output {
		case "json":
			line, err := render.JSON(p, now)
			if err != nil {
				return err
			}
			fmt.Println(line)
		case "lines":
			fmt.Println(render.Lines(p, now))
			fmt.Println()
		default:
			fmt.Println(render.Comma(p, now))
		}
	}

	if cfg.Deployment.Mode == types.ModeLocal {
		// Colored struct dump for local poking around.
		for p := range matches {
			pp.Println(p)
		}
	}
	return nil
}
