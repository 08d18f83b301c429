package csvio

import (
	"encoding/csv"
	"os"
	"strconv"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Frame to a delimited file: one header row with the
// frame's column names, then one record per row. No index column is emitted.
func WriteAll(path string, f *sc.Frame, opt WriterOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}

	if err := w.Write(f.Schema().Names()); err != nil {
		return err
	}

	cols := f.Schema().Columns
	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(cols))
		for c, cs := range cols {
			col, _ := f.ColumnByName(cs.Name)
			row[c] = formatCell(col, cs.Type, r)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatCell(col sc.Column, kind sc.Kind, r int) string {
	switch kind {
	case sc.KindFloat:
		if v, ok := col.(*sc.FloatColumn).Get(r); ok {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	case sc.KindInt:
		if v, ok := col.(*sc.IntColumn).Get(r); ok {
			return strconv.FormatInt(v, 10)
		}
	case sc.KindBool:
		if v, ok := col.(*sc.BoolColumn).Get(r); ok {
			return strconv.FormatBool(v)
		}
	case sc.KindString:
		if v, ok := col.(*sc.StringColumn).Get(r); ok {
			return v
		}
	case sc.KindTime:
		if v, ok := col.(*sc.TimeColumn).Get(r); ok {
			return v.Format("2006-01-02T15:04:05Z07:00")
		}
	}
	return ""
}
