package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/statext/gram"
	"github.com/statext/gram/freq"
	"github.com/statext/gram/internal/corpus"
)

func (c *CLI) newStatsCommand() *cobra.Command {
	var top int
	var order int

	cmd := &cobra.Command{
		Use:   "stats <corpus>",
		Short: "Show the most frequent words or n-grams of a corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  gram stats moonstone.txt
  gram stats moonstone.txt --order 2 --top 20
  gram stats page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			m := gram.Train(text)
			slog.Debug("Model trained", "corpus", args[0], "duration", time.Since(start))

			switch order {
			case 1:
				printTop(m.Words.Top(top), m.Words.Size())
			case 2:
				printTop(m.Pairs.Top(top), m.Pairs.Size())
			case 3:
				printTop(m.Triples.Top(top), m.Triples.Size())
			default:
				return fmt.Errorf("unsupported order %d, want 1, 2 or 3", order)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of entries to show")
	cmd.Flags().IntVar(&order, "order", 1, "N-gram order (1, 2 or 3)")
	return cmd
}

func printTop(entries []freq.Entry[string], total int) {
	fmt.Printf("%d tokens\n", total)
	for _, e := range entries {
		fmt.Printf("%7d  %s\n", e.Count, e.Obs)
	}
}
