package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/goquery"
)

// Dependencies holds the services commands run against, bound via Kong.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractor    chatdump.Extractor
	Rewriter     chatdump.Rewriter
	Writer       chatdump.DocumentWriter
	Snapshotter  chatdump.Snapshotter
	Pages        chatdump.PageExtractor
	PageRewriter chatdump.Rewriter
	Dialects     *goquery.Registry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Export   ExportCmd   `cmd:"" help:"Export chat snapshots as markdown"`
	Dialects DialectsCmd `cmd:"" help:"List supported markup dialects"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Files             []string `arg:"" optional:"" help:"Snapshot HTML files to export"`
	Attach            string   `help:"Capture a live snapshot from this URL instead of reading files"`
	Count             int      `short:"n" default:"100" help:"How many of the newest messages to export"`
	Out               string   `short:"o" default:"." help:"Output directory"`
	UTC               bool     `help:"Render timestamps in UTC instead of local time"`
	Seconds           bool     `help:"Include seconds in timestamps"`
	NoDedupTimestamps bool     `help:"Repeat identical consecutive timestamps with separators"`
	NoQuoteSeparation bool     `help:"Do not insert a blank line between quotes and following prose"`
	PageFallback      bool     `help:"Export whole-page content when no messages are found"`
	PageEngine        string   `default:"trafilatura" enum:"trafilatura,readability" help:"Content extractor for --page-fallback"`
	Concurrency       int      `short:"c" default:"4" help:"Concurrent file exports"`
}

// DialectsCmd is the "dialects" subcommand.
type DialectsCmd struct{}
