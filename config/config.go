package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on, in registration order.
const Default ecs.LayerID = 0

// SceneID names a scene the level can hand control to.
type SceneID int

const (
	SceneNone SceneID = iota
	SceneMap
	SceneLevel
)

func (s SceneID) String() string {
	switch s {
	case SceneMap:
		return "map"
	case SceneLevel:
		return "level"
	}
	return "none"
}

// Spritesheet names registered by the level.
const (
	SheetWalk  = "walk"
	SheetFly   = "fly"
	SheetRun   = "run"
	SheetStand = "stand"
)

// Progress keys in the config store.
const (
	ProgressSection = "MuffinAttack"
	ProgressLevel   = "level"
	ProgressDone    = "completed"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// DataDir is the directory images and music are read from.
	DataDir    string
	Seed       int64
	Fullscreen bool
	AppName    string
}

// LevelConfig contains the tuning of the scripted level. Positions are
// fractions of the screen, speeds are per tick at 60 TPS.
type LevelConfig struct {
	Number  int
	Name    string
	MapPath string // embedded level layout

	StartX          float64
	StartY          float64
	StartSheetSpeed float64

	// Player rendering
	PlayerXOffset float64 // added to x*W before subtracting the sprite width
	SpriteHeight  float64 // fraction of screen height at scale 1

	// Script
	WalkStep        float64
	WalkTargetX     float64
	MoveSpeed       float64
	MoveStageTarget float64
	AccelStep       float64
	MaxSpeed        float64
	FlyStep         float64
	FlyTargetY      float64

	// Player control
	InputStep      float64
	RunThresholdY  float64
	MaxY           float64
	FlySheetSpeed  float64
	RunSheetFactor float64 // running sheet speed is RunSheetFactor / speed

	HealthDecrement float64

	// Fades, alpha units per second
	FadeRate      float64
	WelcomeHold   float64 // welcome card hold, in the same units as the fade counter
	MeterFadeStep float64 // meter alpha per tick at 60 TPS

	// Progress
	LastLevel int
	MaxLevel  int
}

// ObstacleConfig contains spawn and movement tuning for obstacles. Obstacle
// positions are percent of the screen.
type ObstacleConfig struct {
	SpawnX          float64
	SpawnYRange     int // y = rand(SpawnYRange) - 1
	SpawnWindow     int
	SpawnNorm       float64
	SpawnThreshold  int
	SpawnCap        int
	DespawnX        float64
	ScrollFactor    float64
	OscillateStep   float64
	OscillateChance float64
	Width           float64 // fraction of screen width
	Height          float64 // fraction of screen height
	Tint            color.RGBA
}

// ParallaxConfig contains layer sizing. Rates and drift come from the level layout.
type ParallaxConfig struct {
	LayerAspect float64
}

// MeterConfig contains the health meter layout. Sizes are fractions of the
// screen unless noted.
type MeterConfig struct {
	IconWidth  float64
	IconAspect float64 // icon height / width
	TrackWidth float64 // buffer width is TrackWidth*W + icon width
	BarWidth   float64
	BarFill    float64 // fraction of BarWidth the fill can reach
	BarHeight  float64
	Right      float64 // right edge of the meter
	Bottom     float64 // bottom edge of the meter

	TrackColor color.RGBA
	BarColor   color.RGBA
	FillColor  color.RGBA
}

// OverlayConfig contains the welcome card and letter text layout.
type OverlayConfig struct {
	WelcomeTitle   string
	LetterTitle    string
	LetterBody     []string
	LetterHint     string
	CardColor      color.RGBA
	TextColor      color.RGBA
	LetterBg       color.RGBA
	TitleFontSize  float64
	BodyFontSize   float64
	LineHeight     float64
	FailureMessage string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MapConfig contains the map screen configuration values
type MapConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorLocked   color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	LevelNames        []string
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled     bool // verbose logging and collision boxes
	SkipToLevel bool
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Obstacle ObstacleConfig
var Parallax ParallaxConfig
var Meter MeterConfig
var Overlay OverlayConfig
var Pause PauseConfig
var Map MapConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Pink         = color.RGBA{R: 255, G: 182, B: 219, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Parchment    = color.RGBA{R: 245, G: 230, B: 200, A: 240}
	Ink          = color.RGBA{R: 60, G: 40, B: 20, A: 255}
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		TPS:     60,
		DataDir: "data",
		AppName: "muffinattack",
	}

	Level = LevelConfig{
		Number:  1,
		Name:    "Fluttershy",
		MapPath: "levels/level1.tmx",

		StartX:          -0.2,
		StartY:          0.6,
		StartSheetSpeed: 2.4,

		PlayerXOffset: 0.1953125,
		SpriteHeight:  0.25,

		WalkStep:        0.001,
		WalkTargetX:     0.05,
		MoveSpeed:       0.00035,
		MoveStageTarget: 0.275,
		AccelStep:       0.000005,
		MaxSpeed:        0.0020,
		FlyStep:         0.004,
		FlyTargetY:      0.2,

		InputStep:      0.005,
		RunThresholdY:  0.6,
		MaxY:           0.8,
		FlySheetSpeed:  2.4,
		RunSheetFactor: 0.0020,

		HealthDecrement: 0.0005,

		FadeRate:      600,
		WelcomeHold:   2048,
		MeterFadeStep: 4,

		LastLevel: 6,
		MaxLevel:  7,
	}

	Obstacle = ObstacleConfig{
		SpawnX:          100,
		SpawnYRange:     91,
		SpawnWindow:     10000,
		SpawnNorm:       6000,
		SpawnThreshold:  2,
		SpawnCap:        64,
		DespawnX:        -10,
		ScrollFactor:    310,
		OscillateStep:   0.5,
		OscillateChance: 0.5,
		Width:           0.1,
		Height:          0.1,
		Tint:            LightRed,
	}

	Parallax = ParallaxConfig{
		LayerAspect: 4.73307,
	}

	Meter = MeterConfig{
		IconWidth:  0.075,
		IconAspect: 0.9647,
		TrackWidth: 0.2,
		BarWidth:   0.215,
		BarFill:    0.975,
		BarHeight:  0.025,
		Right:      0.95,
		Bottom:     0.975,

		TrackColor: color.RGBA{R: 232, G: 234, B: 239, A: 255},
		BarColor:   color.RGBA{R: 150, G: 159, B: 182, A: 255},
		FillColor:  color.RGBA{R: 214, G: 172, B: 55, A: 255},
	}

	Overlay = OverlayConfig{
		WelcomeTitle: "Level %d",
		LetterTitle:  "Letter from Twilight",
		LetterBody: []string{
			"Dear Fluttershy,",
			"the muffins have escaped the bakery again.",
			"Fly carefully and keep away from them!",
		},
		LetterHint:     "Press Enter to continue",
		CardColor:      color.RGBA{R: 20, G: 10, B: 30, A: 255},
		TextColor:      White,
		LetterBg:       Parchment,
		TitleFontSize:  32,
		BodyFontSize:   14,
		LineHeight:     22,
		FailureMessage: "Too many muffins!",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit to map", "Quit"},
	}

	Map = MapConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorLocked:   Gray,
		TitleY:            50,
		MenuStartY:        80,
		MenuItemHeight:    30,
		MenuItemGap:       6,
		LevelNames: []string{
			"Fluttershy",
			"Rainbow Dash",
			"Rarity",
			"Applejack",
			"Pinkie Pie",
			"Twilight Sparkle",
		},
	}
}
