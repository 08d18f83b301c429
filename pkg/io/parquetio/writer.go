package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

func parquetSchemaJSON(s sc.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	root := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case sc.KindFloat:
			tag += "DOUBLE"
		case sc.KindInt:
			tag += "INT64"
		case sc.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		root.Fields = append(root.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(root)
	return string(b)
}

// WriteAll writes a Frame to a Parquet file. Null cells are left unset in
// their (OPTIONAL) fields.
func WriteAll(path string, f *sc.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(f.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() { _ = writer.WriteStop(); _ = fw.Close() }()
	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, len(f.Schema().Columns))
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case sc.KindFloat:
				if v, ok := col.(*sc.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case sc.KindInt:
				if v, ok := col.(*sc.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case sc.KindBool:
				if v, ok := col.(*sc.BoolColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case sc.KindString:
				if v, ok := col.(*sc.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case sc.KindTime:
				if v, ok := col.(*sc.TimeColumn).Get(r); ok {
					rec[cs.Name] = v.Format("2006-01-02T15:04:05Z07:00")
				}
			}
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	return nil
}
