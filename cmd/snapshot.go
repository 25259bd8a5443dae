// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/cli"
	"github.com/retr0h/audittrail/internal/snapshot"
)

var snapshotDir string

// snapshotCmd represents the snapshot command.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Take a snapshot of the audit log",
	Long: `Drain the audit log into a timestamped JSON Lines file.

Runs a single snapshot immediately, independent of the scheduler.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		cfg := appConfig.Snapshot
		if snapshotDir != "" {
			cfg.Dir = snapshotDir
		}

		// Schedule placeholder so construction validates; the scheduler
		// never starts for a one-shot run.
		if cfg.Schedule == "" {
			cfg.Schedule = "@daily"
		}

		scheduler, err := snapshot.New(logger, cfg, bundle.store.Fetch)
		if err != nil {
			cli.LogFatal(logger, "failed to create snapshot scheduler", err)
		}

		result, err := scheduler.RunNow(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to take snapshot", err)
		}

		if jsonOutput {
			printJSON(map[string]any{
				"exported": result.ExportedEntries,
				"total":    result.TotalEntries,
				"dir":      cfg.Dir,
			})
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Entries", strconv.Itoa(result.ExportedEntries),
			"Directory", cfg.Dir,
		)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().
		StringVar(&snapshotDir, "dir", "", "Directory to write the snapshot into (overrides config)")
}
