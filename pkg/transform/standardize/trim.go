package standardize

import (
	"context"
	"strings"

	"go.uber.org/zap"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

// TrimText strips leading and trailing whitespace from every value of every
// text column. Columns are selected by their runtime kind, not by name;
// non-text columns pass through untouched.
type TrimText struct {
	Log *zap.SugaredLogger
}

func (t *TrimText) Name() string { return "trim_text" }

func (t *TrimText) Apply(ctx context.Context, f *sc.Frame) (*sc.Frame, error) {
	touched := 0
	for _, cs := range f.Schema().Columns {
		col, ok := f.ColumnByName(cs.Name)
		if !ok {
			continue
		}
		c, ok := col.(*sc.StringColumn)
		if !ok {
			continue
		}
		touched++
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, strings.TrimSpace(v))
		}
	}
	if t.Log != nil {
		t.Log.Infof("stripped whitespace from %d text columns", touched)
	}
	return f, nil
}
