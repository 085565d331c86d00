package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/slabgames/replayhud/fonts"
	"github.com/slabgames/replayhud/osd"
	"github.com/yohamta/donburi/ecs"
)

// DrawMessages sweeps the process-wide message store and paints the
// surviving messages in a vertical stack from the top-left margin. The
// sweep doubles as the expiry pass, so this must run exactly once per
// frame.
func DrawMessages(e *ecs.ECS, screen *ebiten.Image) {
	clock := getOrCreateClock(e)
	reqs := osd.Sweep(clock.Now())
	if len(reqs) == 0 {
		return
	}

	face := fonts.Regular.Get()
	pad := cfg.Message.BoxPadding
	x := cfg.Message.LeftMargin
	y := cfg.Message.TopMargin

	for _, r := range reqs {
		bounds := text.BoundString(face, r.Text) //nolint:staticcheck // TODO: migrate to text/v2
		textW := float64(bounds.Dx())
		textH := float64(bounds.Dy())
		boxW := textW + pad*2
		boxH := textH + pad*2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH),
			scaleRGBA(cfg.Message.BoxColor, r.Alpha), false)
		text.Draw(screen, r.Text, face, int(x+pad), int(y+pad+textH),
			scaleRGBA(r.Color, r.Alpha))

		y += boxH + cfg.Message.Padding
	}
}
