package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/deepscan"
	"github.com/wbuf81/oscar/internal/history"
	"github.com/wbuf81/oscar/internal/page"
	"github.com/wbuf81/oscar/internal/scan"
)

// scanCmd runs a one-off compliance scan over a captured page snapshot
var scanCmd = &cobra.Command{
	Use:   "scan <snapshot.json>",
	Short: "scan a captured page snapshot and print its compliance checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.Context(), args[0])
	},
}

// init registers the scan command and its flags on the root command
func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("deep", false, "fetch discovered policy documents and scan their text for missing items")
	scanCmd.Flags().Bool("json", false, "print the raw scan record as JSON")
	scanCmd.Flags().String("settings", "", "scan settings file overriding category weights and custom items")
}

// runScan loads the snapshot, scans it, optionally deep scans, and renders
// the result
func runScan(ctx context.Context, snapshotPath string) error {
	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snap page.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	if snap.URL == "" {
		return fmt.Errorf("snapshot %s has no url", snapshotPath)
	}

	c := catalog.Default()

	cfg, err := loadSettings(c, k.String("settings"))
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	fetcher, err := deepscan.NewHTTPFetcher(c.Limits())
	if err != nil {
		return fmt.Errorf("setting up document fetcher: %w", err)
	}

	hist := history.New()
	orchestrator := scan.New(c, cfg, hist, fetcher)

	rec := orchestrator.Scan(snap)

	if k.Bool("deep") && orchestrator.CanDeepScan(rec) {
		rec, err = orchestrator.DeepScan(ctx, rec.ID)
		if err != nil {
			return fmt.Errorf("deep scan: %w", err)
		}
	}

	if k.Bool("json") {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}

		fmt.Println(string(out))

		return nil
	}

	fmt.Print(renderRecord(c, rec))

	return nil
}
