// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-bean-farm/internal/app"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type flags struct {
	mapPath     string
	detailsPath string
	birdsPath   string
	seed        int64
	ticks       int
	pprofAddr   string
	skipMenu    bool
}

func main() {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "bean-farm",
		Short: "Defend a cabbage farm from magpies, eagles and pigeons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&f.mapPath, "map", "", "path to a .map file (random map if empty)")
	rootCmd.Flags().StringVar(&f.detailsPath, "details", "", "path to a .details file (built-in layout if empty)")
	rootCmd.Flags().StringVar(&f.birdsPath, "birds", "", "path to a JSON file overriding bird definitions")
	rootCmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for map generation (0 = time based)")
	rootCmd.Flags().IntVar(&f.ticks, "ticks", 0, "run headless for N ticks and print a summary")
	rootCmd.Flags().StringVar(&f.pprofAddr, "pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	rootCmd.Flags().BoolVar(&f.skipMenu, "skip-menu", false, "start straight in the game")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(f flags) error {
	if f.pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(f.pprofAddr, nil))
		}()
	}
	if f.birdsPath != "" {
		if err := defs.LoadBirdDefinitions(f.birdsPath); err != nil {
			return err
		}
	}

	dims := engine.Dimensions{TileCount: config.TileCount, WindowSize: config.ScreenWidth}
	opts := app.Options{Dims: dims, Seed: f.seed}
	if f.detailsPath != "" {
		details, err := app.LoadDetails(f.detailsPath)
		if err != nil {
			return err
		}
		opts.Details = details
	}
	if f.mapPath != "" {
		tiles, err := app.LoadMap(f.mapPath, dims)
		if err != nil {
			return err
		}
		opts.Tiles = tiles
	}

	game, err := app.NewGame(opts)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if f.ticks > 0 {
		summary := game.Run(f.ticks)
		log.Printf("Headless run finished: %s", summary)
		fmt.Println(summary)
		return nil
	}

	sm := state.NewStateMachine()
	if f.skipMenu {
		sm.SetState(state.NewPlayState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, game))
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bean Farm")
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}
