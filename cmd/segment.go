// Package cmd — segment command.
// Segments a single title without touching the network.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/headlink/core/segment"
	"github.com/gaurav-prasanna/headlink/urllist"
)

var flagSegmentURL string

var segmentCmd = &cobra.Command{
	Use:   "segment <title>",
	Short: "Render one title as a linked HTML sentence",
	Long: `Segment splits a title into bold, plain and linked parts and prints the
HTML fragment. All arguments are joined into the title.

Examples:
  headlink segment "Breaking News Update" --url https://example.com/story`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().StringVar(&flagSegmentURL, "url", "", "Article URL the tail links to (required)")
	_ = segmentCmd.MarkFlagRequired("url")
}

func runSegment(cmd *cobra.Command, args []string) error {
	if err := urllist.Validate(flagSegmentURL); err != nil {
		log.Warn(err)
	}
	title := strings.Join(args, " ")
	_, err := fmt.Fprintln(cmd.OutOrStdout(), segment.Segment(title, flagSegmentURL))
	return err
}
