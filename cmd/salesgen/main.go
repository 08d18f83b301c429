// salesgen writes a synthetic dirty sales CSV: padded headers and text
// cells, missing criticals, and the occasional negative price or quantity.
// Useful for demoing and benchmarking the cleaning pipeline.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var products = []string{"Widget", "Gadget", "Doohickey", "Gizmo", "Thingamajig"}
var regions = []string{"North", "South", "East", "West"}

func main() {
	var (
		rows  = flag.Int("rows", 1000, "data rows to generate")
		out   = flag.String("out", "data/raw/sales_data_raw.csv", "output path")
		seed  = flag.Int64("seed", 42, "random seed")
		missp = flag.Float64("missing", 0.05, "probability of a missing critical value")
		negp  = flag.Float64("negative", 0.02, "probability of a negative price or quantity")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	// deliberately messy headers: padding, mixed case, punctuation
	if err := w.Write([]string{"Product Name", " Unit Price", "Qty Sold ", "Region", "Order ID#"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < *rows; i++ {
		price := rnd.Float64() * 200
		if rnd.Float64() < *negp {
			price = -price
		}
		qty := int64(rnd.Intn(50))
		if rnd.Float64() < *negp {
			qty = -qty
		}
		priceCell := strconv.FormatFloat(price, 'f', 2, 64)
		qtyCell := strconv.FormatInt(qty, 10)
		if rnd.Float64() < *missp {
			priceCell = ""
		}
		if rnd.Float64() < *missp {
			qtyCell = ""
		}
		rec := []string{
			"  " + products[rnd.Intn(len(products))] + " ",
			priceCell,
			qtyCell,
			regions[rnd.Intn(len(regions))] + "  ",
			strconv.Itoa(100000 + i),
		}
		if err := w.Write(rec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", *rows, *out)
}
