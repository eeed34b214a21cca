package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed levels
	levelFS embed.FS

	//go:embed spritesheets
	sheetFS embed.FS
)

// Parallax layer names, in draw order. The foreground is drawn over the player.
const (
	LayerClouds     = "clouds"
	LayerBackground = "background"
	LayerStage      = "stage"
	LayerForeground = "foreground"
)

// LayerNames lists the parallax layers a level layout must define, back to front.
var LayerNames = [...]string{LayerClouds, LayerBackground, LayerStage, LayerForeground}

// LayerDef describes one parallax layer.
type LayerDef struct {
	Name    string
	Image   string  // path inside the data directory
	Rate    float64 // scroll rate relative to the level speed
	Offset  float64 // starting offset in [0,1)
	Drift   float64 // constant per-tick drift at 60 TPS, applied even when stopped
	Opacity float64
}

// Level is the static layout of a level: its parallax layers and the assets
// the level script uses.
type Level struct {
	Name     string
	Title    string
	Number   int
	Music    string
	Obstacle string
	Meter    string
	Layers   [len(LayerNames)]LayerDef
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevel reads an embedded TMX layout. Every layer in LayerNames must be
// present as an image layer.
func (l *LevelLoader) LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:     levelPath,
		Title:    levelMap.Properties.GetString("title"),
		Number:   levelMap.Properties.GetInt("number"),
		Music:    levelMap.Properties.GetString("music"),
		Obstacle: levelMap.Properties.GetString("obstacle"),
		Meter:    levelMap.Properties.GetString("meter"),
	}

	found := make(map[string]bool, len(LayerNames))
	for _, imgLayer := range levelMap.ImageLayers {
		idx := layerIndex(imgLayer.Name)
		if idx < 0 {
			continue
		}
		if imgLayer.Image == nil {
			return nil, fmt.Errorf("level %s: layer %s has no image", levelPath, imgLayer.Name)
		}
		level.Layers[idx] = LayerDef{
			Name:    imgLayer.Name,
			Image:   path.Clean(imgLayer.Image.Source),
			Rate:    imgLayer.Properties.GetFloat("rate"),
			Offset:  imgLayer.Properties.GetFloat("offset"),
			Drift:   imgLayer.Properties.GetFloat("drift"),
			Opacity: float64(imgLayer.Opacity),
		}
		found[imgLayer.Name] = true
	}

	for _, name := range LayerNames {
		if !found[name] {
			return nil, fmt.Errorf("level %s: missing image layer %q", levelPath, name)
		}
	}
	return level, nil
}

func layerIndex(name string) int {
	for i, n := range LayerNames {
		if n == name {
			return i
		}
	}
	return -1
}
