package salescrub

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Transform is one cleaning stage applied to a whole Frame. Stages either
// return a new Frame or mutate values in place; they never run concurrently.
type Transform interface {
	Name() string
	Apply(ctx context.Context, f *Frame) (*Frame, error)
}

// Pipeline composes a fixed, ordered sequence of Transforms. Filters may only
// remove rows: a stage that grows the row count aborts the run.
type Pipeline struct {
	steps []Transform
	log   *zap.SugaredLogger
}

func NewPipeline(log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{log: log}
}

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Run(ctx context.Context, f *Frame) (*Frame, error) {
	cur := f
	for _, t := range p.steps {
		before := cur.Rows()
		next, err := t.Apply(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", t.Name(), err)
		}
		if next.Rows() > before {
			return nil, fmt.Errorf("stage %s: row count grew from %d to %d", t.Name(), before, next.Rows())
		}
		p.log.Debugf("stage %s: %d -> %d rows", t.Name(), before, next.Rows())
		cur = next
	}
	return cur, nil
}
