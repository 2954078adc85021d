package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/core/services"
	"github.com/spf13/cobra"
)

func newBackfillMilesCommand() *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "backfill-miles",
		Short: "Fill missing session miles from each client's default miles",
		Long: `Lists every work session with no miles whose client has default miles set.
Nothing is saved unless --apply is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBackfillMiles(cmd.Context(), cmd.OutOrStdout(), apply)
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "save the filled-in miles")
	return cmd
}

func runBackfillMiles(ctx context.Context, out io.Writer, apply bool) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	changed, err := services.NewServiceContainer(cfg, repos).Session.BackfillMiles(ctx, apply)
	if err != nil {
		return err
	}
	printBackfill(out, changed, apply)
	return nil
}

func printBackfill(out io.Writer, changed []domain.WorkSession, apply bool) {
	for _, s := range changed {
		fmt.Fprintf(out, "%s  %s  client=%s  miles=%s\n", s.ID, s.Date.Format(domain.DateLayout), s.ClientID, s.Miles.String())
	}
	switch {
	case len(changed) == 0:
		fmt.Fprintln(out, "No sessions need miles.")
	case apply:
		fmt.Fprintf(out, "Updated %d session(s).\n", len(changed))
	default:
		fmt.Fprintf(out, "%d session(s) would change. Re-run with --apply to save.\n", len(changed))
	}
}
