package cli

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"github.com/statext/gram"
	"github.com/statext/gram/internal/corpus"
)

func (c *CLI) newGenerateCommand() *cobra.Command {
	var words int
	var order int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate <corpus>",
		Short: "Generate random text in the style of a corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  gram generate moonstone.txt
  gram generate moonstone.txt --order 3 --words 50
  gram generate moonstone.txt --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			m := gram.Train(text)
			slog.Debug("Model trained", "corpus", args[0], "duration", time.Since(start))

			if seed != 0 {
				m.SetRand(rand.New(rand.NewPCG(seed, 0)))
			}
			fmt.Println(m.Generate(order, words))
			return nil
		},
	}

	cmd.Flags().IntVar(&words, "words", 20, "Number of words to generate")
	cmd.Flags().IntVar(&order, "order", 2, "N-gram order (1, 2 or 3)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 for nondeterministic output)")
	return cmd
}
