package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/textris/internal/letters"
	"github.com/vovakirdan/textris/internal/session"
)

// Summary is the outcome of an automated game.
type Summary struct {
	Score    int
	Words    []string
	Ticks    uint64
	GameOver bool
	Dropped  int // events lost to a full observer buffer
}

// Autoplay drives r with a random player until Run returns or ctx is
// cancelled. obs must be registered as an observer of r's session.
//
// For every spawned tile the player shifts it a random number of columns
// and then drops it.
func Autoplay(ctx context.Context, r *Runner, obs *ChannelObserver, rng letters.RNG) (Summary, error) {
	var sum Summary
	cols := r.Session().Options().Columns

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.Run(ctx)
	})
	g.Go(func() error {
		for {
			select {
			case evt := <-obs.Events():
				sum.record(evt)
				if _, ok := evt.(session.TileSpawnedEvent); ok {
					play(r, rng, cols)
				}
			case <-r.Done():
				for {
					select {
					case evt := <-obs.Events():
						sum.record(evt)
					default:
						return nil
					}
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	err := g.Wait()
	obs.Close()

	sum.Score = r.Session().Score()
	sum.GameOver = r.Session().IsGameOver()
	sum.Ticks = r.Ticks()
	sum.Dropped = obs.Dropped()
	return sum, err
}

func (s *Summary) record(evt session.Event) {
	if e, ok := evt.(session.WordClearedEvent); ok {
		s.Words = append(s.Words, e.Match.Word)
	}
}

// play queues a random shift followed by a drop.
func play(r *Runner, rng letters.RNG, cols int) {
	shift := rng.Intn(cols) - cols/2
	cmd := CmdRight
	if shift < 0 {
		cmd, shift = CmdLeft, -shift
	}
	for range shift {
		r.Send(cmd)
	}
	r.Send(CmdDrop)
}
