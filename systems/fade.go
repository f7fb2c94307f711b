package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StartFade begins the respawn overlay: full strength, easing out to clear.
func StartFade(w donburi.World) {
	entry, ok := components.Fade.First(w)
	if !ok || cfg.Fade.Seconds <= 0 {
		return
	}
	fade := components.Fade.Get(entry)
	fade.Tween = gween.New(cfg.Fade.MaxAlpha, 0, cfg.Fade.Seconds, ease.OutQuad)
	fade.Alpha = cfg.Fade.MaxAlpha
}

// UpdateFade advances the overlay tween by one tick.
func UpdateFade(w donburi.World) {
	entry, ok := components.Fade.First(w)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Tween == nil {
		return
	}

	dt := float32(1) / float32(max(cfg.C.TPS, 1))
	alpha, done := fade.Tween.Update(dt)
	fade.Alpha = alpha
	if done {
		fade.Tween = nil
		fade.Alpha = 0
	}
}
