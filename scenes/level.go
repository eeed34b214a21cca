package scenes

import (
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/automoto/muffinattack/assets"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/systems"
	"github.com/automoto/muffinattack/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one scripted level and returns to the map when the script
// (or the pause menu) asks for it.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	number       int
	once         sync.Once
}

func NewLevelScene(sc SceneChanger, number int) *LevelScene {
	return &LevelScene{sceneChanger: sc, number: number}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	switch next := systems.LevelTransition(ls.ecs); next {
	case cfg.SceneNone:
	case cfg.SceneMap:
		ls.Unload()
		ls.sceneChanger.ChangeScene(NewMapScene(ls.sceneChanger))
	default:
		log.Warn("unsupported scene transition", "scene", next)
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio first so sounds queued while paused still play
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateParallax))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateScript))

	ecs.AddRenderer(cfg.Default, systems.DrawParallaxBack)
	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawParallaxFront)
	ecs.AddRenderer(cfg.Default, systems.DrawMeter)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ls.ecs = ecs

	seed := cfg.C.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	images := assets.NewImageLoader(os.DirFS(cfg.C.DataDir))
	factory.CreateLevel(ls.ecs, images, cfg.C.TPS, seed)

	ls.Preload()
	ls.PreloadBitmaps()
	ls.Load()
}

// Preload reads the layout, the sheet metadata and the music. The level
// cannot run without them.
func (ls *LevelScene) Preload() {
	if err := systems.PreloadLevel(ls.ecs, cfg.Level.MapPath); err != nil {
		log.Fatal("could not load level", "level", ls.number, "err", err)
	}
	layout := systems.LevelLayout(ls.ecs)
	if err := systems.LoadLevelMusic(ls.ecs, layout.Music); err != nil {
		log.Fatal("could not load level music", "path", layout.Music, "err", err)
	}
}

func (ls *LevelScene) PreloadBitmaps() {
	systems.PreloadLevelBitmaps(ls.ecs)
}

func (ls *LevelScene) Load() {
	systems.LoadLevel(ls.ecs)
}

func (ls *LevelScene) Unload() {
	systems.UnloadLevel(ls.ecs)
}

func (ls *LevelScene) UnloadBitmaps() {
	systems.UnloadLevelBitmaps(ls.ecs)
}
