package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/config"
	"chosenoffset.com/forestadventure/internal/game"
	ebitenrender "chosenoffset.com/forestadventure/internal/render/ebiten"
	"chosenoffset.com/forestadventure/internal/sound"
)

var (
	configPath string
	mapPath    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the game",
	Long:  `Open the game window and play, starting at the configured map.`,
	RunE:  runGame,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "config.yaml", "config file, defaults are used when missing")
	runCmd.Flags().StringVar(&mapPath, "map", "", "first map, relative to the assets directory")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if mapPath != "" {
		cfg.Assets.Map = mapPath
	}
	if !cmd.Flags().Changed("log-level") {
		if err := installLogger(cfg.Logging.Level, cfg.Logging.Development); err != nil {
			return err
		}
	}

	var player *sound.Player
	if cfg.Audio.Enabled {
		player = sound.NewPlayer(sound.Options{SampleRate: cfg.Audio.SampleRate, Volume: cfg.Audio.Volume})
		if err := player.Init(); err != nil {
			zap.L().Warn("Audio unavailable, continuing without sound", zap.Error(err))
		}
	}

	g, err := game.New(cmd.Context(), game.Options{
		Config:   cfg,
		Renderer: ebitenrender.NewRenderer(),
		Input:    ebitenrender.NewInputManager(),
		Loader:   ebitenrender.NewResourceLoader(),
		Sound:    player,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Window.TPS)

	zap.L().Info("Starting game", zap.String("map", cfg.Assets.Map), zap.String("session", g.Session()))
	return engine.RunGame(g)
}
