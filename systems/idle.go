package systems

import (
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIdle tracks pointer inactivity and computes the global draw alpha
// for the transport surface. It must run after the widget systems so this
// frame's hover state keeps the controls awake.
func UpdateIdle(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	now := clock.Now()
	p := getOrCreatePointer(e)
	idle := getOrCreateIdle(e, now)

	if p.X != idle.PrevX || p.Y != idle.PrevY {
		idle.LastActivity = now
	}
	idle.PrevX, idle.PrevY = p.X, p.Y

	// The first stretch of idling is free; only time past the grace period
	// eats into the fade.
	elapsed := now - idle.LastActivity
	if elapsed <= cfg.Transport.IdleGraceMS {
		elapsed = 0
	} else {
		elapsed -= cfg.Transport.IdleGraceMS
	}

	t := getOrCreateTransport(e)
	sb := getOrCreateSeekBar(e)
	vb := getOrCreateVolumeBar(e)

	focused := t.ShowHelp ||
		t.HoveredButton != components.ButtonNone ||
		sb.Hovered || sb.State.Held ||
		vb.Hovered || vb.State.Held

	if focused {
		t.SurfaceAlpha = 1
		return
	}

	alpha := 1 - float64(elapsed)/float64(cfg.Transport.IdleFadeMS)
	if alpha < cfg.Transport.MinAlpha {
		alpha = cfg.Transport.MinAlpha
	}
	t.SurfaceAlpha = alpha
}

func getOrCreateIdle(e *ecs.ECS, now uint32) *components.IdleData {
	if _, ok := components.Idle.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Idle))
		components.Idle.SetValue(ent, components.IdleData{LastActivity: now})
	}
	ent, _ := components.Idle.First(e.World)
	return components.Idle.Get(ent)
}
