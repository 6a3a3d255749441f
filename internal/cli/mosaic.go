package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfmosaic/pdfmosaic/pkg/cache"
	"github.com/pdfmosaic/pdfmosaic/pkg/pdf"
	"github.com/pdfmosaic/pdfmosaic/pkg/pipeline"
	"github.com/pdfmosaic/pdfmosaic/pkg/sink"
)

// mosaicOpts holds the command-line flags for the root command.
type mosaicOpts struct {
	output  string // output image path (default: input name with .png)
	columns int    // grid column count; 0 means config/prompt
	width   int    // page width in pixels; 0 means config/prompt
	quality int    // JPEG quality
	noCache bool   // disable the rendered page cache
	refresh bool   // re-render pages even when cached
}

// mosaicCommand creates the root command that composes a PDF into a mosaic.
func (c *CLI) mosaicCommand() *cobra.Command {
	var opts mosaicOpts

	cmd := &cobra.Command{
		Use:   appName + " [file.pdf]",
		Short: "Compose the pages of a PDF into a single grid image",
		Long: `Compose the pages of a PDF into a single grid image.

Every page is rendered to a bitmap of the requested pixel width, preserving
its aspect ratio, and the pages are arranged row by row into a grid with the
requested column count. An incomplete last row is centered horizontally and
pages shorter than the tallest page are centered within their row.

Column count and page width are read from flags or the config file, and
prompted for interactively when neither is set. The output format follows the
output file extension (PNG by default).

Rendered pages are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMosaic(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image file (default: input name with .png)")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", 0, "grid column count (prompted when omitted)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "page width in pixels (prompted when omitted)")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "JPEG quality, 1-100 (default 95)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered page cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render pages even when cached")

	return cmd
}

// runMosaic opens the document, resolves the grid configuration, runs the
// pipeline, and writes the composed image.
func (c *CLI) runMosaic(ctx context.Context, input string, opts mosaicOpts) error {
	total := newProgress(c.Logger)

	doc, err := pdf.Open(input)
	if err != nil {
		return err
	}
	defer doc.Close()

	c.Logger.Info("opened document", "file", input, "pages", doc.PageCount())

	cfg := userConfig(c.Logger)
	columns, width, err := resolveGrid(opts, cfg)
	if err != nil {
		return err
	}

	quality := opts.quality
	if quality == 0 {
		quality = cfg.Quality
	}
	if quality == 0 {
		quality = sink.DefaultQuality
	}

	// The document content hash keys the page cache; if hashing fails the
	// run proceeds uncached.
	docHash := ""
	if !opts.noCache {
		if h, err := cache.HashFile(input); err == nil {
			docHash = h
		}
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	result, err := runner.Execute(ctx, doc, docHash, pipeline.Options{
		Columns:   columns,
		PageWidth: width,
		Refresh:   opts.refresh,
		Progress:  c.progressLogger(),
	})
	if err != nil {
		return err
	}

	out := outputPath(opts.output, input)
	if err := sink.Save(result.Mosaic.Image, out, quality); err != nil {
		return err
	}
	total.done("Mosaic written")

	printSuccess("Mosaic created")
	printFile(out)
	printStats(doc.PageCount(), result.Mosaic.Layout.Width, result.Mosaic.Layout.Height, result.Stats.CacheHits)

	return nil
}

// resolveGrid resolves column count and page width with precedence
// flags > config file > interactive prompt.
func resolveGrid(opts mosaicOpts, cfg Config) (columns, width int, err error) {
	columns = opts.columns
	if columns == 0 {
		columns = cfg.Columns
	}
	if columns == 0 {
		columns, err = askPositiveInt("How many columns should the grid have?")
		if err != nil {
			return 0, 0, err
		}
	}

	width = opts.width
	if width == 0 {
		width = cfg.Width
	}
	if width == 0 {
		width, err = askPositiveInt("What should be the width in pixels of each page?")
		if err != nil {
			return 0, 0, err
		}
	}

	return columns, width, nil
}

// outputPath derives the output file path from the --output flag and the
// input path. Without a flag the mosaic lands in the working directory as
// the input's base name with a .png extension.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// progressLogger maps pipeline events to per-page log lines.
func (c *CLI) progressLogger() pipeline.Progress {
	return func(e pipeline.Event) {
		switch ev := e.(type) {
		case pipeline.PageRendered:
			if ev.Cached {
				c.Logger.Infof("Processing page %d/%d (%dx%d, cached)", ev.Page+1, ev.Total, ev.Width, ev.Height)
			} else {
				c.Logger.Infof("Processing page %d/%d (%dx%d)", ev.Page+1, ev.Total, ev.Width, ev.Height)
			}
		case pipeline.PagePlaced:
			c.Logger.Infof("Placed page %d at position (%d, %d)", ev.Page+1, ev.X, ev.Y)
		}
	}
}
