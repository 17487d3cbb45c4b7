package positioning

import (
	"context"
	"sync"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// ScriptedSource replays a fixed sequence of reads. It stands in for a
// real device in tests; once the script is exhausted the last step
// repeats.
type ScriptedSource struct {
	mu    sync.Mutex
	steps []ScriptStep
	index int
}

// ScriptStep is one scripted read outcome: either a sample or an error
type ScriptStep struct {
	Sample models.PositionSample
	Err    error
}

// NewScriptedSource creates a source that replays the given steps in order
func NewScriptedSource(steps ...ScriptStep) *ScriptedSource {
	return &ScriptedSource{steps: steps}
}

// CurrentPosition returns the next scripted outcome
func (s *ScriptedSource) CurrentPosition(ctx context.Context) (models.PositionSample, error) {
	if err := ctx.Err(); err != nil {
		return models.PositionSample{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return models.PositionSample{}, ErrUnavailable
	}

	step := s.steps[s.index]
	if s.index < len(s.steps)-1 {
		s.index++
	}
	return step.Sample, step.Err
}

// Reads reports how many reads have been served so far
func (s *ScriptedSource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}
