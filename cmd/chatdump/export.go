package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	if c.Attach == "" && len(c.Files) == 0 {
		err := chatdump.Errorf(chatdump.EINVALID, "nothing to export: provide snapshot files or --attach")
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatdump.ErrorMessage(err))
		return err
	}

	count := c.Count
	if count <= 0 {
		count = chatdump.DefaultLimit
	}

	loc := time.Local
	if c.UTC {
		loc = time.UTC
	}

	assembler := &chatdump.Assembler{
		Rewriter:        deps.Rewriter,
		Location:        loc,
		WithSeconds:     c.Seconds,
		DedupTimestamps: !c.NoDedupTimestamps,
	}

	// Live capture exports a single page snapshot.
	if c.Attach != "" {
		if deps.Snapshotter == nil {
			err := chatdump.Errorf(chatdump.EINTERNAL, "no snapshotter configured for --attach")
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatdump.ErrorMessage(err))
			return err
		}
		snap, err := deps.Snapshotter.Snapshot(deps.Ctx, c.Attach)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", chatdump.ErrorMessage(err))
			return err
		}
		if err := c.exportSnapshot(deps, assembler, count, c.Attach, snap.HTML, snap.Title); err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", c.Attach, chatdump.ErrorMessage(err))
			return err
		}
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	var failed int

	for _, file := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "%s: %v\n", file, err)
				mu.Unlock()
				return nil
			}
			html := string(raw)
			if err := c.exportSnapshot(deps, assembler, count, file, html, goquery.PageTitle(html)); err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "%s: %s\n", file, chatdump.ErrorMessage(err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed == len(c.Files) {
		return chatdump.Errorf(chatdump.EINTERNAL, "all %d exports failed", failed)
	}
	return nil
}

// exportSnapshot runs the extract/assemble/write pipeline for one snapshot.
// The source argument names the snapshot origin for progress output only.
func (c *ExportCmd) exportSnapshot(deps *Dependencies, assembler *chatdump.Assembler, count int, source, html, pageTitle string) error {
	title := chatdump.ChannelTitle(pageTitle)
	if title == "" {
		title = "chat"
	}

	msgs, err := deps.Extractor.ExtractMessages(html)
	if err != nil {
		if chatdump.ErrorCode(err) == chatdump.ENOTFOUND && c.PageFallback && deps.Pages != nil {
			return c.exportPage(deps, source, html, title)
		}
		return err
	}

	window := chatdump.TailWindow(msgs, count)
	doc, err := assembler.Assemble(title, window)
	if err != nil {
		return err
	}

	if err := deps.Writer.WriteDocument(deps.Ctx, doc); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d messages from %s to %s (%s)\n",
		doc.Count, source, doc.Filename(), FormatBytes(len(doc.Render())))
	return nil
}

// exportPage writes the whole-page content of a snapshot that has no
// recognizable messages.
func (c *ExportCmd) exportPage(deps *Dependencies, source, html, title string) error {
	content, err := deps.Pages.ExtractPage(html)
	if err != nil {
		return err
	}
	if content.Title != "" {
		title = content.Title
	}

	body, err := deps.PageRewriter.Rewrite(content.ContentHTML)
	if err != nil {
		return err
	}

	doc := &chatdump.ExportDocument{
		Title: title,
		Count: 1,
		Body:  body,
	}

	if err := deps.Writer.WriteDocument(deps.Ctx, doc); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported page content from %s to %s\n", source, doc.Filename())
	return nil
}
