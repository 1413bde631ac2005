package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lyrix/internal/content"
	"lyrix/internal/ui/views"
	"lyrix/internal/viewer"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		index    int
		color    bool
		copyText bool
	)

	cmd := &cobra.Command{
		Use:   "show <query>",
		Short: "Print the lyrics of a matching entry",
		Long: `Print the lyrics of the first entry matching the query, or the
--index'th match. The raw text is printed unless --color is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")
			results, err := a.search(cmd.Context(), q, nil)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no lyrics match %q", q)
			}
			if index < 1 || index > len(results) {
				return fmt.Errorf("--index must be between 1 and %d", len(results))
			}

			resolved, err := a.resolver().Resolve(cmd.Context(), results[index-1])
			if err != nil {
				return err
			}

			if copyText {
				if err := viewer.NewClipboard(a.cfg.Viewer.Clipboard).WriteText(resolved.RawText); err != nil {
					return fmt.Errorf("failed to copy: %w", err)
				}
			}

			out := resolved.RawText
			if color {
				out = content.Render(resolved.Formatted, views.NewStyles().Timestamp)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "n", 1, "which match to show, starting at 1")
	cmd.Flags().BoolVar(&color, "color", false, "highlight timestamps")
	cmd.Flags().BoolVarP(&copyText, "copy", "y", false, "also copy the raw lyrics to the clipboard")
	return cmd
}
