package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dirtydata/salescrub/pkg/profile"
	"github.com/dirtydata/salescrub/pkg/sales"
)

var version = "0.1.0-dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (JSON, YAML, or TOML)")
	inputPath := flag.String("input", "", "Override input path")
	outputPath := flag.String("output", "", "Override output path")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Println("salescrub", version)
		return
	}

	log := newLogger(*verbose)
	defer func() { _ = log.Sync() }()

	cfg := sales.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sales.LoadConfig(*configPath)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	out, err := sales.Run(context.Background(), cfg, log)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	fmt.Printf("cleaned data: %d rows x %d columns\n", out.Rows(), out.Cols())
	fmt.Print(profile.Render(profile.Describe(out)))
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}
