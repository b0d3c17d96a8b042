package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/statext/gram"
	"github.com/statext/gram/freq"
	"github.com/statext/gram/internal/corpus"
)

func (c *CLI) newCompareCommand() *cobra.Command {
	var top int
	var order int

	cmd := &cobra.Command{
		Use:   "compare <corpus-a> <corpus-b>",
		Short: "Compare two corpora by their most frequent words or n-grams",
		Args:  cobra.ExactArgs(2),
		Example: `  gram compare bleakhouse.txt moonstone.txt
  gram compare bleakhouse.txt moonstone.txt --order 2 --top 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := make([][]string, 2)
			for i, path := range args {
				text, err := corpus.ReadFile(path)
				if err != nil {
					return err
				}
				m := gram.Train(text)
				var entries []freq.Entry[string]
				switch order {
				case 1:
					entries = m.Words.Top(top)
				case 2:
					entries = m.Pairs.Top(top)
				case 3:
					entries = m.Triples.Top(top)
				default:
					return fmt.Errorf("unsupported order %d, want 1, 2 or 3", order)
				}
				slog.Debug("Corpus ranked", "corpus", path, "entries", len(entries))
				for _, e := range entries {
					lists[i] = append(lists[i], e.Obs)
				}
			}

			sim := gram.Similarity(lists[0], lists[1])
			fmt.Printf("score:        %.4f\n", sim.Score)
			fmt.Printf("matches:      %d/%d\n", sim.Matches, len(lists[0]))
			fmt.Printf("displacement: %d\n", sim.Displacement)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of entries to compare")
	cmd.Flags().IntVar(&order, "order", 1, "N-gram order (1, 2 or 3)")
	return cmd
}
