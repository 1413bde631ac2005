package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lyrix/internal/domain"
	"lyrix/internal/query"
)

func newSearchCmd(a *app) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print catalog entries matching a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.search(cmd.Context(), strings.Join(args, " "), fields)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range results {
				a.printEntry(w, e)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "fields to match: filename, title, artist (default is search.fields)")
	return cmd
}

// search loads the catalog and runs one query over it
func (a *app) search(ctx context.Context, q string, fields []string) ([]domain.CatalogEntry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	entries, err := a.loader().Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		fields = a.cfg.Search.Fields
	}
	engine := query.NewEngine(query.ParseFields(fields), a.cfg.Search.MinLength)
	return engine.Search(entries, q), nil
}

func (a *app) printEntry(w *tabwriter.Writer, e domain.CatalogEntry) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", e.Title, e.Artist, e.Filename)
}
