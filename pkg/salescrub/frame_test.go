package salescrub_test

import (
	"errors"
	"testing"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

func makeFrame(t *testing.T) *sc.Frame {
	t.Helper()
	s := sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "product", Type: sc.KindString, Nullable: true},
		{Name: "price", Type: sc.KindFloat, Nullable: true},
	}}
	f := sc.NewFrame(s)
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "product", "widget")
	_ = f.SetCell(0, "price", 1.5)
	_ = f.SetCell(1, "product", "gadget")
	_ = f.SetCell(1, "price", -2.0)
	// row 2 left all-null
	return f
}

func TestFilterRows(t *testing.T) {
	f := makeFrame(t)
	col, _ := f.ColumnByName("price")
	pc := col.(*sc.FloatColumn)

	out := f.FilterRows(func(r int) bool {
		v, ok := pc.Get(r)
		return !ok || v >= 0
	})
	if out.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.Rows())
	}
	if out.Cols() != f.Cols() {
		t.Fatalf("column count changed: %d -> %d", f.Cols(), out.Cols())
	}
	oc, _ := out.ColumnByName("product")
	v, _ := oc.(*sc.StringColumn).Get(0)
	if v != "widget" {
		t.Fatalf("wrong surviving row, got %q", v)
	}
	if !oc.IsNull(1) {
		t.Fatal("all-null row should survive and stay null")
	}
	// source frame untouched
	if f.Rows() != 3 {
		t.Fatalf("filter mutated source frame: %d rows", f.Rows())
	}
}

func TestWithColumnNames(t *testing.T) {
	f := makeFrame(t)
	out, err := f.WithColumnNames([]string{"product_name", "unit_price"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != f.Rows() {
		t.Fatalf("rename changed row count: %d -> %d", f.Rows(), out.Rows())
	}
	if _, ok := out.ColumnByName("unit_price"); !ok {
		t.Fatal("renamed column not found")
	}
	c, _ := out.ColumnByName("product_name")
	v, _ := c.(*sc.StringColumn).Get(1)
	if v != "gadget" {
		t.Fatalf("values lost in rename, got %q", v)
	}
}

func TestWithColumnNamesCollision(t *testing.T) {
	f := makeFrame(t)
	_, err := f.WithColumnNames([]string{"qty", "qty"})
	var conflict *sc.NormalizationConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected NormalizationConflictError, got %v", err)
	}
	if conflict.Name != "qty" || len(conflict.Originals) != 2 {
		t.Fatalf("conflict detail wrong: %+v", conflict)
	}
}

func TestWithColumnNamesArity(t *testing.T) {
	f := makeFrame(t)
	if _, err := f.WithColumnNames([]string{"only_one"}); err == nil {
		t.Fatal("expected error on name count mismatch")
	}
}

func TestSetCellCoercion(t *testing.T) {
	s := sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "n", Type: sc.KindFloat, Nullable: true},
		{Name: "i", Type: sc.KindInt, Nullable: true},
	}}
	f := sc.NewFrame(s)
	f.AppendNullRow()
	if err := f.SetCell(0, "n", 3); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "i", 4.0); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "n", "oops"); err == nil {
		t.Fatal("expected type error")
	}
	if err := f.SetCell(0, "missing", 1); err == nil {
		t.Fatal("expected unknown column error")
	}
	if err := f.SetCell(0, "n", nil); err != nil {
		t.Fatal(err)
	}
	c, _ := f.ColumnByName("n")
	if !c.IsNull(0) {
		t.Fatal("nil should null the cell")
	}
}
