package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/statext/gram/cipher"
	"github.com/statext/gram/internal/corpus"
)

func (c *CLI) newDecodeCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "decode <corpus> [text]",
		Short: "Decode an enciphered message using a training corpus",
		Args:  cobra.RangeArgs(1, 2),
		Example: `  gram decode flatland.txt "Guvf vf n frperg zrffntr."
  gram decode flatland.txt "Kyzj zj r jvtivk dvjjrxv." --method shift
  gram decode flatland.txt "..." --method perm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			training, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}
			text, err := textArg(args[1:])
			if err != nil {
				return err
			}

			start := time.Now()
			switch method {
			case "shift":
				d := cipher.NewShiftDecoder(training)
				plain := d.Decode(text)
				slog.Debug("Decoded", "method", method, "duration", time.Since(start))
				fmt.Println(plain)
			case "perm":
				d := cipher.NewPermutationDecoder(training)
				plain, err := d.Decode(text)
				if err != nil {
					return err
				}
				slog.Debug("Decoded", "method", method, "duration", time.Since(start))
				fmt.Println(plain)
			default:
				return fmt.Errorf("unsupported method %q, want shift or perm", method)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "shift", "Decoding method (shift or perm)")
	return cmd
}
