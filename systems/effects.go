package systems

import (
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (confetti, popup, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)
	updateConfetti(ecs, dt)
	updatePopup(ecs, dt)
	updateAutoDestroy(ecs)
}

// updateConfetti integrates particles under gravity and drag and fades them out
func updateConfetti(ecs *ecs.ECS, dt float32) {
	components.Confetti.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Confetti.Get(e)
		c.VX *= cfg.Confetti.Drag
		c.VY = c.VY*cfg.Confetti.Drag + cfg.Confetti.Gravity
		c.X += c.VX
		c.Y += c.VY
		c.Angle += c.Spin
		if c.Fade != nil {
			c.Alpha, _ = c.Fade.Update(dt)
		}
	})
}

// updatePopup advances the pop-in tween of the catch popup
func updatePopup(ecs *ecs.ECS, dt float32) {
	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		if p.Tween != nil {
			p.Scale, _ = p.Tween.Update(dt)
		}
	})
}

// updateAutoDestroy removes entities whose frame budget ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs, e)
	}
}
