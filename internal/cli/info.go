package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spriteops/asejson/pkg/aseprite"
)

// infoCommand creates the info command which summarizes a sheet's
// frames and metadata.
func (c *CLI) infoCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a sprite-sheet document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := aseprite.DecodeFile(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				out, err := aseprite.EncodeBytes(sheet)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(out)
				return err
			}

			printInfo("%s", StyleTitle.Render(args[0]))
			printSheetStats(len(sheet.Frames), len(sheet.Meta.FrameTags), len(sheet.Meta.Layers), len(sheet.Meta.Slices))
			fmt.Println()

			printKeyValue("app", sheet.Meta.App)
			printKeyValue("version", sheet.Meta.Version)
			if sheet.Meta.Image != nil {
				printKeyValue("image", *sheet.Meta.Image)
			}
			printKeyValue("format", sheet.Meta.Format)
			printKeyValue("size", fmt.Sprintf("%dx%d", sheet.Meta.Size.W, sheet.Meta.Size.H))
			printKeyValue("scale", sheet.Meta.Scale)
			printKeyValue("duration", (time.Duration(sheet.TotalDuration()) * time.Millisecond).String())

			for _, tag := range sheet.Meta.FrameTags {
				printDetail("tag %q: frames %d-%d (%s)", tag.Name, tag.From, tag.To, tag.Direction)
			}
			for _, slice := range sheet.Meta.Slices {
				printDetail("slice %q: %d keys, color %s", slice.Name, len(slice.Keys), slice.Color)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the canonical JSON document instead of a summary")
	return cmd
}
