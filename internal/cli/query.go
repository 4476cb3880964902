package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/spriteops/asejson/pkg/aseprite"
)

// queryCommand creates the query command which extracts a value from
// the canonical encoding by path.
func (c *CLI) queryCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "query <file> <path>",
		Short: "Extract a value from a document by path",
		Long: `Extract a value from a sprite-sheet document by path.

The document is canonicalized before lookup, so paths are stable across
both export shapes: frames are always an array and metadata lists are
always present.

Examples:
  asejson query sheet.json frames.0.duration
  asejson query sheet.json meta.frameTags.#.name
  asejson query sheet.json 'meta.slices.#(name=="hitbox").keys.0.bounds'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := aseprite.DecodeFile(args[0])
			if err != nil {
				return err
			}
			doc, err := aseprite.EncodeBytes(sheet)
			if err != nil {
				return err
			}

			res := gjson.GetBytes(doc, args[1])
			if !res.Exists() {
				return fmt.Errorf("no value at path %q", args[1])
			}
			if raw {
				fmt.Println(res.Raw)
				return nil
			}
			fmt.Println(res.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw JSON value instead of its string form")
	return cmd
}
