package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statext/gram/cipher"
)

func (c *CLI) newEncodeCommand() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text with a shift cipher",
		Args:  cobra.MaximumNArgs(1),
		Example: `  gram encode "This is a secret message."
  gram encode "This is a secret message." --shift 3
  echo "secret" | gram encode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args)
			if err != nil {
				return err
			}
			fmt.Println(cipher.Encode(text, cipher.Shift(shift)))
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 13, "Shift amount (13 is rot13)")
	return cmd
}

// textArg returns the single positional argument, or stdin when no
// argument was given.
func textArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("stdin is empty")
	}
	return text, nil
}
