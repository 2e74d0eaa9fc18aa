package step

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// Jiggle movement recipes.
const (
	PatternNatural   = "natural"
	PatternInvisible = "invisible"
	PatternSubtle    = "subtle"
	PatternCircle    = "circle"
	PatternRandom    = "random"
)

const jigglePoll = 500 * time.Millisecond

// JiggleStep keeps the machine awake by synthesizing small pointer movements
// whenever no activity has been seen for Interval seconds. With TrackMouse
// set, real pointer movement counts as activity and resets the idle timer
// without synthesizing anything. Never errors; cancellation is checked every
// poll tick.
type JiggleStep struct {
	Duration   int
	Pattern    string
	Interval   int
	TrackMouse bool
}

func (s *JiggleStep) Type() string { return TypeJiggle }

func (s *JiggleStep) Preview(*Context) string {
	return fmt.Sprintf("Jiggle mouse for %ds (%s)", s.Duration, s.Pattern)
}

func (s *JiggleStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping jiggle", s.Type())
		return
	}

	end := time.Now().Add(time.Duration(s.Duration) * time.Second)
	interval := time.Duration(s.Interval) * time.Second

	lastX, lastY := ctx.Backend.PointerPosition()
	lastActivity := time.Now()
	count := 0

	res.AddLog(model.LevelInfo, fmt.Sprintf("Starting jiggle for %ds (pattern: %s)", s.Duration, s.Pattern), s.Type())

	for time.Now().Before(end) {
		if ctx.Cancelled() {
			res.Cancel()
			res.AddLog(model.LevelWarning, "Jiggle cancelled", s.Type())
			return
		}

		x, y := ctx.Backend.PointerPosition()
		now := time.Now()

		if s.TrackMouse && (x != lastX || y != lastY) {
			lastActivity = now
			count++
			lastX, lastY = x, y
		}

		if now.Sub(lastActivity) >= interval {
			s.jiggleOnce(ctx.Backend)
			count++
			lastActivity = now
			lastX, lastY = ctx.Backend.PointerPosition()
		}

		time.Sleep(jigglePoll)
	}

	res.AddLog(model.LevelInfo, fmt.Sprintf("Jiggled %d times over %ds", count, s.Duration), s.Type())
}

// jiggleOnce performs one synthetic movement. Backend failures are ignored:
// jiggling is best-effort by contract.
func (s *JiggleStep) jiggleOnce(b automation.Backend) {
	switch s.Pattern {
	case PatternNatural:
		dx := 1
		if rand.Intn(2) == 0 {
			dx = -1
		}
		_ = b.MovePointer(dx, 0)
		time.Sleep(100 * time.Millisecond)
		_ = b.MovePointer(-dx, 0)
	case PatternInvisible:
		_ = b.MovePointer(0, 0)
	case PatternCircle:
		cx, cy := b.PointerPosition()
		for i := 0; i < 8; i++ {
			a := float64(i) / 8 * 2 * math.Pi
			_ = b.MovePointer(int(2*math.Cos(a)), int(2*math.Sin(a)))
		}
		_ = b.MovePointerTo(cx, cy)
	case PatternRandom:
		dx, dy := rand.Intn(7)-3, rand.Intn(7)-3
		_ = b.MovePointer(dx, dy)
		_ = b.MovePointer(-dx, -dy)
	default: // subtle and anything unrecognized
		_ = b.MovePointer(1, 0)
		_ = b.MovePointer(-1, 0)
	}
}
