// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// read URLs → fetch titles → segment → render → write.
//
// It handles flag validation, renderer selection and the input sources
// (arguments, --file or stdin).
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/core/digest"
	"github.com/gaurav-prasanna/headlink/core/extract"
	"github.com/gaurav-prasanna/headlink/core/fetch"
	"github.com/gaurav-prasanna/headlink/core/output"
	"github.com/gaurav-prasanna/headlink/core/render"
	"github.com/gaurav-prasanna/headlink/urllist"
)

// Flag variables.
var (
	flagFile        string
	flagHTML        bool
	flagMarkdown    bool
	flagJSON        bool
	flagPDF         bool
	flagPreview     bool
	flagDedupe      bool
	flagConcurrency int
	flagOutputDir   string
	flagName        string
)

var generateCmd = &cobra.Command{
	Use:   "generate [url...]",
	Short: "Fetch titles for article URLs and render linked sentences",
	Long: `Generate fetches the page title of every URL, segments each title and
renders the result in the chosen format (HTML by default).

URLs are taken from the arguments, from --file, or from stdin, one per line.
Titles that could not be fetched are skipped.

Examples:
  headlink generate https://example.com/a https://example.com/b
  headlink generate --file links.txt --markdown --output_dir ./out
  cat links.txt | headlink generate --json --output_dir -`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&flagFile, "file", "", "Read URLs from a file, one per line")

	// Output format flags (mutually exclusive).
	generateCmd.Flags().BoolVar(&flagHTML, "html", false, "Output HTML (default)")
	generateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	generateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	generateCmd.Flags().BoolVar(&flagPreview, "preview", false, "HTML only: note skipped links instead of leaving blank lines")
	generateCmd.Flags().BoolVar(&flagDedupe, "dedupe", false, "Drop repeated URLs, keeping the first")
	generateCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Parallel title fetches (overrides fetch.concurrency)")

	generateCmd.Flags().StringVar(&flagOutputDir, "output_dir", output.Stdout, `Output directory, or "-" for stdout`)
	generateCmd.Flags().StringVar(&flagName, "name", "", "Output file name (default: links-<timestamp>)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	urls, err := readURLs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given: pass them as arguments, with --file, or on stdin")
	}
	for _, invalid := range urllist.Invalid(urls) {
		log.Warn(invalid)
	}
	if flagDedupe {
		before := len(urls)
		urls = urllist.Dedupe(urls)
		if dropped := before - len(urls); dropped > 0 {
			log.Infof("Dropped %d repeated URLs", dropped)
		}
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	var writer *output.Writer
	if flagOutputDir == output.Stdout {
		writer = output.NewStream(cmd.OutOrStdout())
	} else {
		writer, err = output.New(flagOutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	concurrency := cfg.Fetch.Concurrency
	if flagConcurrency > 0 {
		concurrency = flagConcurrency
	}

	titles := fetch.NewTitleFetcher(fetch.New(fetch.OptionsFromConfig(cfg.Fetch)), extract.New())
	return generate(cmd.Context(), urls, titles, concurrency, renderer, writer)
}

// generate runs the fetch → digest → render → write stages.
func generate(
	ctx context.Context,
	urls []string,
	titles core.TitleSource,
	concurrency int,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	log.Infof("Found %d URLs to process", len(urls))

	links := fetch.All(ctx, titles, urls, concurrency)
	d := digest.Build(links)

	rendered := len(d.Rendered())
	if skipped := len(d.Items) - rendered; skipped > 0 {
		log.Warnf("%d/%d links skipped", skipped, len(d.Items))
	}

	data, err := renderer.Render(d)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(flagName, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != output.Stdout {
		log.Infof("Written: %s", path)
	}
	return nil
}

// readURLs collects URLs from args, then --file, then stdin.
func readURLs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if flagFile != "" {
		f, err := os.Open(flagFile)
		if err != nil {
			return nil, fmt.Errorf("opening URL file: %w", err)
		}
		defer f.Close()
		return urllist.ParseList(f)
	}
	return urllist.ParseList(stdin)
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagHTML, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	if flagPreview && (flagMarkdown || flagJSON || flagPDF) {
		return fmt.Errorf("--preview only applies to HTML output")
	}
	if flagConcurrency < 0 {
		return fmt.Errorf("--concurrency must not be negative")
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewHTMLRenderer(flagPreview), nil
	}
}
