package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/slabgames/replayhud/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer samples the mouse into the pointer singleton. It runs first
// so every widget system works from the same per-frame snapshot.
func UpdatePointer(e *ecs.ECS) {
	p := getOrCreatePointer(e)
	x, y := ebiten.CursorPosition()
	p.Advance(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	if _, ok := components.Pointer.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Pointer))
	}
	ent, _ := components.Pointer.First(e.World)
	return components.Pointer.Get(ent)
}
