package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision object. Object.Data holds the entry.
type ObjectData struct {
	*resolv.Object
}

// Overlaps is an inclusive rectangle test on the objects' current bounds.
func (o ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X <= other.X+other.W && other.X <= o.X+o.W &&
		o.Y <= other.Y+other.H && other.Y <= o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space of the level, in screen pixels.
var Space = donburi.NewComponentType[resolv.Space]()
