package standardize

import (
	"context"
	"errors"
	"reflect"
	"testing"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Product Name", "product_name"},
		{" Unit Price", "unit_price"},
		{"Qty Sold ", "qty_sold"},
		{"Order ID#", "order_id"},
		{"  Sale $ Amount  ", "sale__amount"},
		{"already_clean_1", "already_clean_1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	for _, in := range []string{"Product Name", "Qty Sold ", "UNIT-PRICE", "région"} {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestCleanNames(t *testing.T) {
	f := sc.NewFrame(sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "Product Name", Type: sc.KindString, Nullable: true},
		{Name: "Unit Price", Type: sc.KindFloat, Nullable: true},
		{Name: "Qty Sold ", Type: sc.KindInt, Nullable: true},
	}})
	f.AppendNullRow()
	_ = f.SetCell(0, "Product Name", "w")

	out, err := (&CleanNames{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"product_name", "unit_price", "qty_sold"}
	if got := out.Schema().Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	if out.Rows() != 1 {
		t.Fatalf("row count changed: %d", out.Rows())
	}
	c, _ := out.ColumnByName("product_name")
	if v, _ := c.(*sc.StringColumn).Get(0); v != "w" {
		t.Fatalf("values lost, got %q", v)
	}
}

func TestCleanNamesCollision(t *testing.T) {
	f := sc.NewFrame(sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "Qty", Type: sc.KindInt, Nullable: true},
		{Name: "qty ", Type: sc.KindInt, Nullable: true},
	}})
	_, err := (&CleanNames{}).Apply(context.Background(), f)
	var conflict *sc.NormalizationConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected NormalizationConflictError, got %v", err)
	}
}

func TestTrimText(t *testing.T) {
	f := sc.NewFrame(sc.Schema{Columns: []sc.ColumnSchema{
		{Name: "product", Type: sc.KindString, Nullable: true},
		{Name: "region", Type: sc.KindString, Nullable: true},
		{Name: "price", Type: sc.KindFloat, Nullable: true},
	}})
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "product", "  Widget ")
	_ = f.SetCell(0, "region", "North  ")
	_ = f.SetCell(0, "price", 2.5)
	// row 1 stays null

	before := f.Schema().Names()
	out, err := (&TrimText{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Schema().Names(), before) {
		t.Fatal("trim must not touch the column set")
	}
	if out.Rows() != 2 {
		t.Fatalf("trim must not drop rows, got %d", out.Rows())
	}
	p, _ := out.ColumnByName("product")
	if v, _ := p.(*sc.StringColumn).Get(0); v != "Widget" {
		t.Fatalf("product not trimmed: %q", v)
	}
	r, _ := out.ColumnByName("region")
	if v, _ := r.(*sc.StringColumn).Get(0); v != "North" {
		t.Fatalf("region not trimmed: %q", v)
	}
	if !p.IsNull(1) {
		t.Fatal("null cells must stay null")
	}
	pr, _ := out.ColumnByName("price")
	if v, _ := pr.(*sc.FloatColumn).Get(0); v != 2.5 {
		t.Fatalf("numeric column changed: %v", v)
	}
}
