// Package sales wires the fixed cleaning sequence for the sales dataset:
// load, clean column names, trim text, drop rows missing critical values,
// drop rows with negative critical values, write.
package sales

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/dirtydata/salescrub/pkg/io/csvio"
	"github.com/dirtydata/salescrub/pkg/io/jsonlio"
	"github.com/dirtydata/salescrub/pkg/io/parquetio"
	sc "github.com/dirtydata/salescrub/pkg/salescrub"
	"github.com/dirtydata/salescrub/pkg/transform/filter"
	"github.com/dirtydata/salescrub/pkg/transform/standardize"
)

// Run executes one cleaning run against cfg and writes the result. The
// cleaned frame is returned for inspection. The run is synchronous and
// whole-table; the first failure aborts it with nothing written.
func Run(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*sc.Frame, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var delim rune
	if cfg.Input.Delimiter != "" {
		delim = rune(cfg.Input.Delimiter[0])
	}
	frame, err := csvio.Load(cfg.Input.Path, csvio.Options{HasHeader: cfg.Input.HasHeader, Delimiter: delim}, log)
	if err != nil {
		return nil, err
	}

	p := sc.NewPipeline(log).
		Add(&standardize.CleanNames{Log: log}).
		Add(&standardize.TrimText{Log: log}).
		Add(&filter.DropMissing{Log: log}).
		Add(&filter.DropNegative{Log: log})
	out, err := p.Run(ctx, frame)
	if err != nil {
		return nil, err
	}

	if err := writeOutput(cfg.Output, out); err != nil {
		return nil, err
	}
	log.Infof("saved cleaned data to %s", cfg.Output.Path)
	return out, nil
}

func writeOutput(o Output, f *sc.Frame) error {
	if dir := filepath.Dir(o.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	format := o.Format
	if format == "" {
		format = detectFormat(o.Path)
	}
	switch format {
	case "csv":
		var delim rune
		if o.Delimiter != "" {
			delim = rune(o.Delimiter[0])
		}
		return csvio.WriteAll(o.Path, f, csvio.WriterOptions{Delimiter: delim})
	case "jsonl":
		return jsonlio.WriteAll(o.Path, f)
	case "parquet":
		return parquetio.WriteAll(o.Path, f)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func detectFormat(path string) string {
	p := strings.TrimSuffix(path, ".gz")
	switch strings.ToLower(filepath.Ext(p)) {
	case ".jsonl", ".ndjson":
		return "jsonl"
	case ".parquet":
		return "parquet"
	default:
		return "csv"
	}
}
