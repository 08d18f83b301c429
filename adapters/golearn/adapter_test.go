package golearn

import (
	"testing"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

func TestToDenseInstances(t *testing.T) {
	f := sc.NewFrame(sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "unit_price", Type: sc.KindFloat, Nullable: true},
		{Name: "qty_sold", Type: sc.KindInt, Nullable: true},
		{Name: "region", Type: sc.KindString, Nullable: true},
	}})
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "unit_price", 10.5)
	_ = f.SetCell(0, "qty_sold", int64(5))
	_ = f.SetCell(0, "region", "North")
	_ = f.SetCell(1, "unit_price", 8.0)
	_ = f.SetCell(1, "qty_sold", int64(2))
	_ = f.SetCell(1, "region", "South")

	inst, err := ToDenseInstances(f)
	if err != nil {
		t.Fatal(err)
	}
	cols, rows := inst.Size()
	if cols != 3 || rows != 2 {
		t.Fatalf("instances size = %d x %d", cols, rows)
	}
}
