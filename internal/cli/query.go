package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/statext/gram/internal/corpus"
	"github.com/statext/gram/ir"
)

// defaultStopwords covers the common English function words that carry
// no weight in a term-frequency query.
const defaultStopwords = `a an and are as at be by for from has he in is it its
of on that the to was were will with`

func (c *CLI) newQueryCommand() *cobra.Command {
	var top int
	var ext string
	var stopwords string

	cmd := &cobra.Command{
		Use:   "query <dir> <terms...>",
		Short: "Search a directory of documents by term frequency",
		Args:  cobra.MinimumNArgs(2),
		Example: `  gram query ./man rm file
  gram query ./docs search engine --ext .html --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.ReadDir(args[0], ext)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				return fmt.Errorf("no %s documents in %s", ext, args[0])
			}

			start := time.Now()
			s := ir.New(stopwords)
			for _, doc := range docs {
				s.IndexDocument(doc.Text, doc.Name)
			}
			slog.Debug("Indexed", "documents", s.Len(), "duration", time.Since(start))

			query := strings.Join(args[1:], " ")
			results := s.Query(query, top)
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, r := range results {
				doc := s.Document(r.DocID)
				fmt.Printf("%5.2f | %-25s | %s\n", r.Score, doc.URL, doc.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of results to show")
	cmd.Flags().StringVar(&ext, "ext", ".txt", "Document file extension")
	cmd.Flags().StringVar(&stopwords, "stopwords", defaultStopwords, "Space-separated words to ignore")
	return cmd
}
