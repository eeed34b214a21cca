package assets

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// SheetDef is the metadata of a character sprite sheet.
type SheetDef struct {
	Name   string
	Image  string // path inside the data directory
	Rows   int
	Cols   int
	Blanks int
	Speed  float64
	Aspect float64
	Scale  float64
}

// Frames is the number of playable frames in the sheet.
func (d SheetDef) Frames() int {
	return d.Rows*d.Cols - d.Blanks
}

// LoadSheetDef reads spritesheets/<name>.ini. The keys live in the default section.
func LoadSheetDef(name string) (SheetDef, error) {
	sheetPath := fmt.Sprintf("spritesheets/%s.ini", name)
	data, err := sheetFS.ReadFile(sheetPath)
	if err != nil {
		return SheetDef{}, fmt.Errorf("read sheet %s: %w", name, err)
	}
	f, err := ini.Load(data)
	if err != nil {
		return SheetDef{}, fmt.Errorf("parse sheet %s: %w", name, err)
	}
	sec := f.Section(ini.DefaultSection)

	def := SheetDef{
		Name:   name,
		Image:  sec.Key("image").MustString(fmt.Sprintf("images/derpy/%s.png", name)),
		Rows:   sec.Key("rows").MustInt(1),
		Cols:   sec.Key("cols").MustInt(1),
		Blanks: sec.Key("blanks").MustInt(0),
		Speed:  sec.Key("speed").MustFloat64(1),
		Aspect: sec.Key("aspect").MustFloat64(1),
		Scale:  sec.Key("scale").MustFloat64(1),
	}
	if def.Rows <= 0 || def.Cols <= 0 || def.Blanks < 0 || def.Frames() <= 0 {
		return SheetDef{}, fmt.Errorf("sheet %s: bad grid %dx%d with %d blanks", name, def.Cols, def.Rows, def.Blanks)
	}
	return def, nil
}
