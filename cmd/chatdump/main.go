package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/fs"
	"github.com/fwojciec/chatdump/goquery"
	"github.com/fwojciec/chatdump/htmltomarkdown"
	"github.com/fwojciec/chatdump/readability"
	"github.com/fwojciec/chatdump/rewrite"
	"github.com/fwojciec/chatdump/rod"
	chatslog "github.com/fwojciec/chatdump/slog"
	"github.com/fwojciec/chatdump/trafilatura"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Populated during Run().
	Extractor chatdump.Extractor
	Writer    chatdump.DocumentWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chatdump"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chatdump --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Kong accepts global flags before the subcommand, so the command is
	// only known after parsing.
	cmd = kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger.With("run", uuid.NewString())

	// Wire core services into dependencies
	registry := goquery.DefaultRegistry()
	m.Extractor = goquery.NewExtractorWithRegistry(registry)
	if cli.Verbose {
		m.Extractor = chatslog.NewLoggingExtractor(m.Extractor, deps.Logger)
	}
	deps.Extractor = m.Extractor
	deps.Dialects = registry

	// Wire command-specific dependencies based on command
	if cmd == "export" {
		var rewriteOpts []rewrite.Option
		if !cli.Export.NoQuoteSeparation {
			rewriteOpts = append(rewriteOpts, rewrite.WithQuoteSeparation())
		}
		deps.Rewriter = rewrite.New(rewriteOpts...)

		m.Writer = fs.NewWriter(cli.Export.Out)
		deps.Writer = m.Writer

		if cli.Export.Attach != "" {
			snapshotter, err := rod.NewSnapshotter()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer snapshotter.Close()

			deps.Snapshotter = snapshotter
			if cli.Verbose {
				deps.Snapshotter = chatslog.NewLoggingSnapshotter(deps.Snapshotter, deps.Logger)
			}
		}

		if cli.Export.PageFallback {
			switch cli.Export.PageEngine {
			case "readability":
				deps.Pages = readability.NewExtractor()
			default:
				deps.Pages = trafilatura.NewExtractor()
			}
			deps.PageRewriter = htmltomarkdown.NewRewriter()
		}
	}

	return kongCtx.Run(deps)
}
