package filter

import (
	"context"

	"go.uber.org/zap"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

// DropMissing removes rows lacking a value in any critical column. With no
// critical columns identified the frame passes through unchanged and a
// warning is emitted.
type DropMissing struct {
	Log *zap.SugaredLogger
}

func (t *DropMissing) Name() string { return "drop_missing" }

func (t *DropMissing) Apply(ctx context.Context, f *sc.Frame) (*sc.Frame, error) {
	var critical []sc.Column
	var names []string
	for _, cs := range f.Schema().Columns {
		if !Critical(cs.Name) {
			continue
		}
		if col, ok := f.ColumnByName(cs.Name); ok {
			critical = append(critical, col)
			names = append(names, cs.Name)
		}
	}
	if len(critical) == 0 {
		if t.Log != nil {
			t.Log.Warn("no critical columns identified; check column names")
		}
		return f, nil
	}

	before := f.Rows()
	out := f.FilterRows(func(r int) bool {
		for _, c := range critical {
			if c.IsNull(r) {
				return false
			}
		}
		return true
	})
	if t.Log != nil {
		t.Log.Infof("removed %d rows with missing critical values in %v", before-out.Rows(), names)
	}
	return out, nil
}
