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
	"time"

	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/cli"
)

var (
	listPage          int
	listPageSize      int
	listUsers         []string
	listActions       []string
	listEntities      []string
	listCorrelationID string
	listFrom          string
	listTo            string
	listSearch        string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries",
	Long: `List audit entries, newest first, with filtering and pagination.

All filters combine with a logical AND.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		query := audit.Query{
			Page:          listPage,
			PageSize:      listPageSize,
			UserIDs:       listUsers,
			Entities:      listEntities,
			CorrelationID: listCorrelationID,
			Text:          listSearch,
		}

		for _, raw := range listActions {
			query.Actions = append(query.Actions, audit.Action(raw))
		}

		if listFrom != "" {
			from, err := time.Parse(time.RFC3339, listFrom)
			if err != nil {
				cli.LogFatal(logger, "invalid --from timestamp", err)
			}
			query.From = &from
		}

		if listTo != "" {
			to, err := time.Parse(time.RFC3339, listTo)
			if err != nil {
				cli.LogFatal(logger, "invalid --to timestamp", err)
			}
			query.To = &to
		}

		page, err := bundle.store.GetLogs(ctx, query)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit entries", err)
		}

		if jsonOutput {
			printJSON(page)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Total", strconv.Itoa(page.Total),
			"Page", fmt.Sprintf("%d/%d", page.Page, page.TotalPages),
		)

		if len(page.Items) == 0 {
			fmt.Println("  No audit entries found.")
			return
		}

		now := time.Now().UTC()
		rows := make([][]string, 0, len(page.Items))
		for _, entry := range page.Items {
			rows = append(rows, []string{
				entry.ID,
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				cli.FormatAge(now.Sub(entry.Timestamp)),
				entry.UserID,
				string(entry.Action),
				entry.Entity,
				entry.Reason,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Audit Entries",
				Headers: []string{
					"ID",
					"TIMESTAMP",
					"AGE",
					"USER",
					"ACTION",
					"ENTITY",
					"REASON",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listPage, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", audit.DefaultPageSize, "Entries per page")
	listCmd.Flags().StringArrayVar(&listUsers, "user", nil, "Filter by user ID (repeatable)")
	listCmd.Flags().StringArrayVar(&listActions, "action", nil, "Filter by action type (repeatable)")
	listCmd.Flags().StringArrayVar(&listEntities, "entity", nil, "Filter by entity (repeatable)")
	listCmd.Flags().
		StringVar(&listCorrelationID, "correlation-id", "", "Filter by exact correlation ID")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Inclusive lower bound (RFC 3339)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Inclusive upper bound (RFC 3339)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive text search")
}
