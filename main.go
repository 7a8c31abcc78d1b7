package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"roomcrawl/pkg/engine/config"
	"roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/engine/logging"
	"roomcrawl/pkg/engine/telemetry"
	"roomcrawl/pkg/engine/terminal"
	"roomcrawl/pkg/game/devtools"
	"roomcrawl/pkg/game/gameplay"
	"roomcrawl/pkg/game/renderer/ebiten"
	"roomcrawl/pkg/game/renderer/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	if err := run(context.Background(), cfg, log); err != nil {
		log.WithError(err).Error("roomcrawl failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	shutdown, err := telemetry.Setup(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("Telemetry shutdown failed")
		}
	}()

	session := gameplay.NewSession(cfg.Seed, cfg.MaxRoomAttempts, log)
	log.WithFields(logrus.Fields{
		"seed":     session.Game.Seed,
		"renderer": cfg.Renderer,
	}).Info("Starting")

	if cfg.DumpPath != "" {
		if err := session.Init(ctx, input.Vec3{}); err != nil {
			return err
		}
		path, err := devtools.DumpLevel(session.Game, cfg.DumpPath)
		if err != nil {
			return fmt.Errorf("dumping level: %w", err)
		}
		log.WithField("path", path).Info("Level map written")
		return nil
	}

	switch cfg.Renderer {
	case config.RendererTUI:
		if err := session.Init(ctx, input.Vec3{}); err != nil {
			return err
		}
		t := tui.New(os.Stdout, !terminal.IsTerminal())
		t.Init()
		if cfg.Overview {
			t.RenderLevel(session.Game)
			return nil
		}
		t.RenderFrame(session.Game)
		return nil
	default:
		e, err := ebiten.New(session, cfg.AssetDir, log)
		if err != nil {
			return err
		}
		if err := e.Init(ctx); err != nil {
			return err
		}
		return e.Run()
	}
}
