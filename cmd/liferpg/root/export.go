package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile snapshot as JSON for chart/report consumers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := store.Load(ctx)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile yet; run any liferpg command first")
			}

			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal profile: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Snapshot written to %s\n", ui.IconChart, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "life_rpg_personal.json", "Output file")
	return cmd
}
