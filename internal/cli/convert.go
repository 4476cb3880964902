package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spriteops/asejson/pkg/aseprite"
)

// convertCommand creates the convert command which rewrites a document
// into the canonical encoding.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a document into the canonical encoding",
		Long: `Rewrite a sprite-sheet document into the canonical encoding.

Both export shapes are accepted; the output always carries frames as an
array, lowercase color codes, and explicit empty lists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := aseprite.DecodeFile(args[0])
			if err != nil {
				return err
			}

			var out []byte
			if compact {
				out, err = aseprite.EncodeCompact(sheet)
			} else {
				out, err = aseprite.EncodeBytes(sheet)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			printSuccess("Converted %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON without indentation")
	return cmd
}
