package filter

import (
	"context"

	"go.uber.org/zap"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

// DropNegative removes rows holding a negative number in any quantity- or
// price-pattern column. Applied column by column, quantity columns first,
// then price columns; a row violating any one column is dropped. Matching
// columns that are not numeric are skipped.
type DropNegative struct {
	Log *zap.SugaredLogger
}

func (t *DropNegative) Name() string { return "drop_negative" }

func (t *DropNegative) Apply(ctx context.Context, f *sc.Frame) (*sc.Frame, error) {
	before := f.Rows()
	cur := f
	for _, match := range []func(string) bool{QuantityLike, PriceLike} {
		for _, cs := range cur.Schema().Columns {
			if !match(cs.Name) {
				continue
			}
			cur = dropNegativeIn(cur, cs.Name)
		}
	}
	if t.Log != nil {
		t.Log.Infof("removed %d rows with invalid values (negative prices or quantities)", before-cur.Rows())
	}
	return cur, nil
}

// dropNegativeIn filters one numeric column. Null cells pass: presence is the
// missing-value filter's concern, not this one's.
func dropNegativeIn(f *sc.Frame, name string) *sc.Frame {
	col, ok := f.ColumnByName(name)
	if !ok {
		return f
	}
	switch c := col.(type) {
	case *sc.FloatColumn:
		return f.FilterRows(func(r int) bool {
			v, ok := c.Get(r)
			return !ok || v >= 0
		})
	case *sc.IntColumn:
		return f.FilterRows(func(r int) bool {
			v, ok := c.Get(r)
			return !ok || v >= 0
		})
	}
	return f
}
