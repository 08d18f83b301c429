package sales

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Input.Path != DefaultInputPath || cfg.Output.Path != DefaultOutputPath {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Input.HasHeader {
		t.Fatal("input must default to having a header row")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	p := writeConfig(t, "run.yaml", "input:\n  path: in.csv\noutput:\n  path: out.jsonl\n  format: jsonl\n")
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.Path != "in.csv" || cfg.Output.Format != "jsonl" {
		t.Fatalf("got %+v", cfg)
	}
	if !cfg.Input.HasHeader {
		t.Fatal("absent fields must keep their defaults")
	}
}

func TestLoadConfigTOML(t *testing.T) {
	p := writeConfig(t, "run.toml", "[input]\npath = \"in.csv\"\ndelimiter = \";\"\n\n[output]\npath = \"out.csv\"\n")
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.Delimiter != ";" || cfg.Output.Path != "out.csv" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	p := writeConfig(t, "run.json", `{"input":{"path":"in.csv"},"output":{"path":"out.csv"}}`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.Path != "in.csv" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadConfigBadSyntax(t *testing.T) {
	p := writeConfig(t, "run.json", `{"input":`)
	if _, err := LoadConfig(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]string{
		"out.csv":        "csv",
		"out.jsonl":      "jsonl",
		"out.jsonl.gz":   "jsonl",
		"out.parquet":    "parquet",
		"out.txt":        "csv",
		"sales_clean.gz": "csv",
	}
	for path, want := range cases {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
