package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/statext/gram"
	"github.com/statext/gram/internal/corpus"
)

func (c *CLI) newSegmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment <corpus> <text>",
		Short: "Split text with no spaces into the most probable words",
		Args:  cobra.ExactArgs(2),
		Example: `  gram segment moonstone.txt itiseasytoreadwordswithoutspaces
  gram segment moonstone.txt wheninthecourseofhumanevents -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			m := gram.Train(text)
			slog.Debug("Model trained", "corpus", args[0], "duration", time.Since(start))

			words, p := m.Segment(args[1])
			slog.Debug("Segmented", "words", len(words), "probability", p)
			fmt.Println(strings.Join(words, " "))
			return nil
		},
	}
	return cmd
}
