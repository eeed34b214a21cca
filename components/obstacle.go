package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ObstacleFunc is an optional per-tick behavior of an obstacle.
type ObstacleFunc func(level *LevelData, o *ObstacleData)

// ObstacleData is a moving obstacle. X and Y are percent of the screen.
type ObstacleData struct {
	X, Y  float64
	Speed float64
	// Data is free-form state for Callback; the up/down behavior uses it as
	// its direction flag.
	Data      bool
	Image     *ebiten.Image // shared, not owned
	Callback  ObstacleFunc
	Colliding bool
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
