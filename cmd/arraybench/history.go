package main

import (
	"errors"

	"arraybench/internal/config"
	"arraybench/internal/ui"

	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("history is disabled: set history_db in the config or ARRAYBENCH_HISTORY_DB")

func newHistoryCmd(cfgFile *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded in the history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.HistoryDB == "" {
				return errHistoryDisabled
			}

			store, err := newStoreFunc(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.LoadAll()
			if err != nil {
				return err
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[:limit]
			}
			return ui.RenderHistory(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show (0 for all)")
	return cmd
}
