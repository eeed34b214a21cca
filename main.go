// muffinattack runs level 1 of Muffin Attack.
//
// Usage:
//
//	muffinattack              - Start on the map
//	muffinattack --level 1    - Start the level directly
//
// Flags:
//
//	--data <dir>    - Directory holding images, music and sound effects (default: data)
//	--tps <rate>    - Ticks per second (default: 60)
//	--seed <value>  - RNG seed for obstacle spawns (0 = random)
//	--volume <v>    - Store music and effect volume, 0 to 1
//	--fullscreen    - Start in fullscreen
//	--debug         - Debug logging and collision boxes
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/fonts"
	"github.com/automoto/muffinattack/scenes"
	"github.com/automoto/muffinattack/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel  int
	flagVolume float64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipToLevel {
		g.scene = scenes.NewLevelScene(g, flagLevel)
	} else {
		g.scene = scenes.NewMapScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "muffinattack",
	Short: "Muffin Attack - fly through level 1 and dodge the muffins",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&flagLevel, "level", 0, "Start this level directly instead of the map")
	flags.StringVar(&config.C.DataDir, "data", config.C.DataDir, "Directory holding images, music and sound effects")
	flags.IntVar(&config.C.TPS, "tps", config.C.TPS, "Ticks per second")
	flags.Int64Var(&config.C.Seed, "seed", 0, "RNG seed for obstacle spawns (0 = random)")
	flags.Float64Var(&flagVolume, "volume", -1, "Store music and effect volume, 0 to 1")
	flags.BoolVar(&config.C.Fullscreen, "fullscreen", false, "Start in fullscreen")
	flags.BoolVar(&config.Debug.Enabled, "debug", false, "Debug logging and collision boxes")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          config.C.AppName,
	})
	if config.Debug.Enabled {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	if config.C.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", config.C.TPS)
	}
	if flagLevel != 0 {
		if flagLevel != config.Level.Number {
			return fmt.Errorf("level %d is not available", flagLevel)
		}
		config.Debug.SkipToLevel = true
	}

	if err := fonts.LoadDefaults(config.Overlay.TitleFontSize, config.Overlay.BodyFontSize); err != nil {
		return err
	}

	// Progress falls back to memory when the save directory is unusable
	_ = systems.InitPersistence(config.C.AppName)
	store := systems.ProgressStore()
	if flagVolume >= 0 {
		systems.SaveVolumes(store, min(flagVolume, 1), min(flagVolume, 1))
	}
	systems.ApplySavedSettings(store)
	systems.InitAudio(os.DirFS(config.C.DataDir))

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Muffin Attack")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.C.Fullscreen)
	ebiten.SetTPS(config.C.TPS)

	log.Debug("starting", "data", config.C.DataDir, "tps", config.C.TPS, "seed", config.C.Seed)
	return ebiten.RunGame(NewGame())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
