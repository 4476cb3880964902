package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spriteops/asejson/pkg/aseprite"
	"github.com/spriteops/asejson/pkg/errors"
)

// validateResult is the outcome of checking one file.
type validateResult struct {
	sheet    *aseprite.SpritesheetData
	problems []aseprite.Problem
	err      error
}

// validateCommand creates the validate command. Files are decoded and
// linted concurrently; results print in argument order.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate sprite-sheet documents",
		Long: `Validate one or more sprite-sheet documents.

A file passes when it decodes cleanly. With --strict, lint findings
(out-of-range tags, duplicate names, dangling layer groups) also fail
the file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			results := make([]validateResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.NumCPU())
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					sheet, err := aseprite.DecodeFile(path)
					if err != nil {
						results[i] = validateResult{err: err}
						return nil
					}
					results[i] = validateResult{sheet: sheet, problems: aseprite.Lint(sheet)}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for i, res := range results {
				switch {
				case res.err != nil:
					failed++
					printError("%s", args[i])
					printDetail("%s", errors.UserMessage(res.err))
				case strict && len(res.problems) > 0:
					failed++
					printError("%s", args[i])
					for _, p := range res.problems {
						printDetail("%s: %s", p.Path, p.Message)
					}
				case len(res.problems) > 0:
					printWarning("%s", args[i])
					for _, p := range res.problems {
						printDetail("%s: %s", p.Path, p.Message)
					}
				default:
					printSuccess("%s", args[i])
					printSheetStats(len(res.sheet.Frames), len(res.sheet.Meta.FrameTags),
						len(res.sheet.Meta.Layers), len(res.sheet.Meta.Slices))
				}
			}

			prog.done(fmt.Sprintf("Validated %d sheets", len(args)))
			if failed > 0 {
				return fmt.Errorf("%d of %d sheets failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat lint findings as failures")
	return cmd
}
