package jsonlio

import (
	"bufio"
	"encoding/json"

	iox "github.com/dirtydata/salescrub/pkg/io/ioutils"
	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

// WriteAll writes a Frame as JSON Lines, one object per row. Null cells are
// omitted from their row's object.
func WriteAll(path string, f *sc.Frame) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for r := 0; r < f.Rows(); r++ {
		m := map[string]any{}
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case sc.KindFloat:
				if v, ok := col.(*sc.FloatColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case sc.KindInt:
				if v, ok := col.(*sc.IntColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case sc.KindBool:
				if v, ok := col.(*sc.BoolColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case sc.KindString:
				if v, ok := col.(*sc.StringColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case sc.KindTime:
				if v, ok := col.(*sc.TimeColumn).Get(r); ok {
					m[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return w.Flush()
}
