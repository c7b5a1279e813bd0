package pge

import (
	"context"
	"time"
)

// RunHeadless drives game without a window at hcfg.Hz frames per second.
// It returns when hcfg.Frames frames have run, when a Game callback fails or
// with ctx.Err() when ctx ends. Game.OnDestroy runs in every case once
// OnCreate has succeeded. A Script, if set, replays from the first frame.
func RunHeadless(ctx context.Context, game Game, cfg Config, hcfg HeadlessConfig) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	e, err := NewEngine(game, cfg)
	if err != nil {
		return err
	}
	e.SetInputScript(hcfg.Script)
	defer e.Stop()
	if err := e.Start(); err != nil {
		return err
	}

	t := time.NewTicker(time.Second / time.Duration(hcfg.Hz))
	defer t.Stop()

	last := time.Now()
	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			elapsed := float32(now.Sub(last).Seconds())
			last = now
			if err := e.Frame(elapsed, nil); err != nil {
				return err
			}
			frames++
			if hcfg.Frames > 0 && frames >= hcfg.Frames {
				return nil
			}
		}
	}
}
