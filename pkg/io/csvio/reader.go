package csvio

import (
	"encoding/csv"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	iox "github.com/dirtydata/salescrub/pkg/io/ioutils"
	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

type Options struct {
	HasHeader  bool
	Delimiter  rune // 0 = sniff
	SampleRows int  // rows sampled for kind inference; default 100
}

// Load reads a delimited file into a Frame. Columns whose sampled values look
// numeric are parsed as int or float; everything else is string. Empty cells
// become nulls. A missing path is a NotFoundError; any other read failure is
// a ParseError.
func Load(path string, opt Options, log *zap.SugaredLogger) (*sc.Frame, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		nf := &sc.NotFoundError{Path: path}
		log.Errorf("error: %v", nf)
		return nil, nf
	}
	f, err := load(path, opt)
	if err != nil {
		log.Errorf("error loading data: %v", err)
		return nil, err
	}
	log.Infof("loaded %d rows from %s", f.Rows(), path)
	return f, nil
}

func load(path string, opt Options) (*sc.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, &sc.ParseError{Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	r := csv.NewReader(rc)
	if opt.Delimiter != 0 {
		r.Comma = opt.Delimiter
	} else if d, lazy, err := sniffDelimiter(path); err == nil && d != 0 {
		r.Comma = d
		r.LazyQuotes = lazy
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, &sc.ParseError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &sc.ParseError{Path: path, Err: errEmptyFile{}}
	}

	var names []string
	if opt.HasHeader {
		hdr := records[0]
		records = records[1:]
		names = make([]string, len(hdr))
		for i := range hdr {
			names[i] = strings.ToValidUTF8(hdr[i], "?")
		}
		// strip BOM on first header cell if present
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], "\ufeff")
		}
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	max := opt.SampleRows
	if max <= 0 {
		max = 100
	}
	if max > len(records) {
		max = len(records)
	}
	kinds := inferKinds(len(names), records[:max])

	schema := sc.Schema{Columns: make([]sc.ColumnSchema, len(names))}
	for i := range names {
		schema.Columns[i] = sc.ColumnSchema{Name: names[i], Type: kinds[i], Nullable: true}
	}

	frame := sc.NewFrame(schema)
	for _, rec := range records {
		appendRecord(frame, schema, rec)
	}
	return frame, nil
}

type errEmptyFile struct{}

func (errEmptyFile) Error() string { return "empty file: no header row" }

func appendRecord(f *sc.Frame, schema sc.Schema, rec []string) {
	f.AppendNullRow()
	row := f.Rows() - 1
	for i, cs := range schema.Columns {
		if i >= len(rec) {
			continue
		}
		val := strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
		if val == "" {
			continue
		}
		switch cs.Type {
		case sc.KindFloat:
			if x, err := strconv.ParseFloat(val, 64); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		case sc.KindInt:
			if x, err := strconv.ParseInt(val, 10, 64); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		case sc.KindBool:
			if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		default:
			_ = f.SetCell(row, cs.Name, val)
		}
	}
}

var numre = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

func inferKinds(ncol int, rows [][]string) []sc.Kind {
	kinds := make([]sc.Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, str := 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			if numre.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
			} else {
				lv := strings.ToLower(v)
				if lv == "true" || lv == "false" {
					continue
				}
				str++
			}
		}
		// prefer float over int to be permissive
		if num > str {
			if integer == num {
				kinds[c] = sc.KindInt
			} else {
				kinds[c] = sc.KindFloat
			}
		} else {
			kinds[c] = sc.KindString
		}
	}
	return kinds
}

func sniffDelimiter(path string) (rune, bool, error) {
	sample, err := iox.Peek(path, 4096)
	if err != nil {
		return 0, false, err
	}
	if len(sample) == 0 {
		return ',', false, nil
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := -1
	for _, c := range candidates {
		cnt := 0
		for _, b := range sample {
			if b == c {
				cnt++
			}
		}
		if cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	quoteCount := 0
	for _, b := range sample {
		if b == '"' {
			quoteCount++
		}
	}
	return rune(best), quoteCount%2 != 0, nil
}
