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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/cli"
)

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Get one audit entry",
	Long: `Get a single audit entry by ID.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		entry, err := bundle.store.GetLog(ctx, args[0])
		if err != nil {
			cli.LogFatal(logger, "failed to get audit entry", err, "id", args[0])
		}

		if jsonOutput {
			printJSON(entry)
			return
		}

		details := ""
		if entry.Details != nil {
			if data, err := json.Marshal(entry.Details); err == nil {
				details = string(data)
			}
		}

		fmt.Println()
		cli.PrintKV(
			"ID", entry.ID,
			"Timestamp", entry.Timestamp.Format("2006-01-02 15:04:05"),
			"User", entry.UserID,
			"Action", string(entry.Action),
			"Entity", entry.Entity,
			"Reason", entry.Reason,
			"Correlation", entry.CorrelationID,
			"Details", details,
		)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
