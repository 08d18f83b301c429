// Package profile summarizes a cleaned Frame column by column, standing in
// for an interactive look at the first rows and dtypes of the result.
package profile

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

type ColumnStats struct {
	Name  string
	Kind  sc.Kind
	Count int // non-null cells
	Nulls int

	// numeric columns only
	Min  float64
	Max  float64
	Mean float64

	// string columns only
	Distinct int
}

// Describe collects per-column statistics in schema order.
func Describe(f *sc.Frame) []ColumnStats {
	out := make([]ColumnStats, 0, f.Cols())
	for _, cs := range f.Schema().Columns {
		col, _ := f.ColumnByName(cs.Name)
		st := ColumnStats{Name: cs.Name, Kind: cs.Type, Min: math.Inf(1), Max: math.Inf(-1)}
		var sum float64
		switch c := col.(type) {
		case *sc.FloatColumn:
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				sum += v
				st.Min = math.Min(st.Min, v)
				st.Max = math.Max(st.Max, v)
			}
		case *sc.IntColumn:
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				sum += float64(v)
				st.Min = math.Min(st.Min, float64(v))
				st.Max = math.Max(st.Max, float64(v))
			}
		case *sc.StringColumn:
			seen := map[string]struct{}{}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				seen[v] = struct{}{}
			}
			st.Distinct = len(seen)
		default:
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					st.Nulls++
				} else {
					st.Count++
				}
			}
		}
		if st.Count > 0 && cs.Type.Numeric() {
			st.Mean = sum / float64(st.Count)
		}
		out = append(out, st)
	}
	return out
}

// Render formats stats as an aligned text table.
func Render(stats []ColumnStats) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tkind\tcount\tnulls\tdetail")
	for _, st := range stats {
		detail := ""
		switch {
		case st.Kind.Numeric() && st.Count > 0:
			detail = fmt.Sprintf("min=%g max=%g mean=%.4g", st.Min, st.Max, st.Mean)
		case st.Kind == sc.KindString:
			detail = fmt.Sprintf("distinct=%d", st.Distinct)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", st.Name, st.Kind, st.Count, st.Nulls, detail)
	}
	_ = w.Flush()
	return b.String()
}
