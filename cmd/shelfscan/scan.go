package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfscan/internal/reconcile"
	"github.com/vmunix/shelfscan/internal/vision"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Detect games in a shelf photo and match them",
	Long: `Detect games in a shelf photo and match them against the catalog.

The image is sent to the configured vision service, which returns the
titles it can read off the spines. Detected titles then go through the
same reconcile pipeline as 'shelfscan reconcile'.

Requires vision.url in the config.

Examples:
  shelfscan scan shelf.jpg
  shelfscan scan --user alice shelf.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runScanCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if e.cfg.Vision.URL == "" {
		return fmt.Errorf("vision.url not configured: set it in the config file to use scan")
	}

	encoded, err := vision.EncodeImage(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	client := vision.NewClient(e.cfg.Vision.URL, vision.WithTimeout(e.cfg.Vision.Timeout))
	detections, err := client.Analyze(cmd.Context(), encoded)
	if err != nil {
		if errors.Is(err, vision.ErrNoGamesDetected) {
			fmt.Println("No games detected in image")
			return nil
		}
		return fmt.Errorf("analyze failed: %w", err)
	}

	e.log.Info("image analyzed", "detections", len(detections))

	titles := make([]reconcile.DetectedTitle, len(detections))
	for i, d := range detections {
		titles[i] = reconcile.DetectedTitle{Title: d.Title, BGGID: d.BGGID}
	}

	results, err := newReconciler(e).Reconcile(cmd.Context(), userID, titles)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	printResults(results)
	return nil
}
