// Package main is a document conversion front end for the richtext
// engine. It reads Markdown or JSON, round-trips it through an
// in-memory document, and writes the requested output format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/richtext/internal/codec"
	"github.com/dshills/richtext/internal/config"
	"github.com/dshills/richtext/internal/engine"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	doc, err := load(opts, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Stats {
		printStats(doc)
		return 0
	}

	out, err := render(doc, opts.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Output == "" || opts.Output == "-" {
		fmt.Print(out)
		return 0
	}
	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", opts.Output, err)
		return 1
	}
	return 0
}

type options struct {
	ConfigPath string
	From       string
	To         string
	Output     string
	Input      string
	Stats      bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.From, "from", "", "Input format: md or json (default: by extension)")
	flag.StringVar(&opts.To, "to", "json", "Output format: md, json, or html")
	flag.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	flag.BoolVar(&opts.Stats, "stats", false, "Print document statistics instead of converting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "richtext - rich text document converter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: richtext [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  richtext doc.md                 Convert Markdown to JSON\n")
		fmt.Fprintf(os.Stderr, "  richtext -to html doc.json      Convert JSON to HTML\n")
		fmt.Fprintf(os.Stderr, "  richtext -stats doc.md          Show document statistics\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("richtext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Input = flag.Arg(0)
	return opts
}

func buildLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func load(opts options, cfg config.Config, logger *zap.Logger) (*engine.Document, error) {
	var src string
	if opts.Input == "" || opts.Input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		src = string(data)
	} else {
		data, err := os.ReadFile(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.Input, err)
		}
		src = string(data)
	}

	engOpts := []engine.Option{engine.WithLogger(logger)}
	if cfg.History.Capacity > 0 {
		engOpts = append(engOpts, engine.WithHistoryCapacity(cfg.History.Capacity))
	}
	if cfg.Limits.MaxDocumentSize > 0 {
		engOpts = append(engOpts, engine.WithMaxSize(cfg.Limits.MaxDocumentSize))
	}

	switch inputFormat(opts) {
	case "json":
		return codec.UnmarshalJSON(src, engOpts...)
	case "md":
		return codec.UnmarshalMarkdown(src, engOpts...)
	default:
		return nil, fmt.Errorf("unknown input format (use -from md or -from json)")
	}
}

func inputFormat(opts options) string {
	if opts.From != "" {
		return opts.From
	}
	switch strings.ToLower(filepath.Ext(opts.Input)) {
	case ".json":
		return "json"
	case ".md", ".markdown":
		return "md"
	}
	return ""
}

func render(doc *engine.Document, to string) (string, error) {
	switch to {
	case "json":
		return codec.MarshalJSON(doc)
	case "md", "markdown":
		return codec.MarshalMarkdown(doc), nil
	case "html":
		return codec.MarshalHTML(doc), nil
	default:
		return "", fmt.Errorf("unknown output format %q (use md, json, or html)", to)
	}
}

func printStats(doc *engine.Document) {
	s := doc.Stats()
	fmt.Printf("Characters:       %d\n", s.Characters)
	fmt.Printf("Format runs:      %d\n", s.Runs)
	fmt.Printf("Blocks:           %d\n", s.Blocks)
	fmt.Printf("Interned strings: %d\n", s.InternedStrings)
	fmt.Printf("Estimated bytes:  %d\n", s.EstimatedBytes)
}
