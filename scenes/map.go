package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MapScene is the level select screen.
type MapScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMapScene(sc SceneChanger) *MapScene {
	return &MapScene{sceneChanger: sc}
}

func (ms *MapScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MapScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func(number int) interface{} {
		return NewLevelScene(ms.sceneChanger, number)
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMap(ms.sceneChanger, createLevelScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMap)

	systems.PlayMusic(ms.ecs, cfg.Audio.MapMusic)
}
