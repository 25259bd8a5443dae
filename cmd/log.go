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
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/cli"
)

var (
	logUser          string
	logAction        string
	logEntity        string
	logReason        string
	logCorrelationID string
	logDetails       string
	logBefore        string
	logAfter         string
	logMetadata      []string
)

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record an audit entry",
	Long: `Record one audit entry against the configured store.

Details, before, and after accept inline JSON. Metadata takes repeated
key=value pairs merged over the environment defaults.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		metadata, err := parseMetadata(logMetadata)
		if err != nil {
			cli.LogFatal(logger, "invalid metadata", err)
		}

		action := audit.Action(strings.ToUpper(logAction))

		entry, err := bundle.store.LogAction(
			ctx,
			logUser,
			action,
			logEntity,
			audit.DecodeDetails(logEntity, action, json.RawMessage(logDetails)),
			audit.Options{
				Reason:        logReason,
				Before:        rawOrNil(logBefore),
				After:         rawOrNil(logAfter),
				CorrelationID: logCorrelationID,
				Metadata:      metadata,
			},
		)
		if err != nil {
			cli.LogFatal(logger, "failed to record audit entry", err)
		}

		if jsonOutput {
			printJSON(entry)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"ID", entry.ID,
			"Timestamp", entry.Timestamp.Format("2006-01-02 15:04:05"),
			"User", entry.UserID,
			"Action", string(entry.Action),
			"Entity", entry.Entity,
			"Correlation", entry.CorrelationID,
		)
	},
}

// parseMetadata converts repeated key=value flags into a map.
func parseMetadata(
	pairs []string,
) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("metadata %q is not key=value", pair)
		}
		metadata[key] = value
	}

	return metadata, nil
}

// rawOrNil treats an empty flag as an absent snapshot.
func rawOrNil(
	s string,
) json.RawMessage {
	if s == "" {
		return nil
	}

	return json.RawMessage(s)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(
	v any,
) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cli.LogFatal(logger, "failed to encode output", err)
	}

	fmt.Println(string(data))
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&logUser, "user", "", "Acting user ID")
	logCmd.Flags().StringVar(&logAction, "action", "", "Action type: CREATE, READ, UPDATE, or DELETE")
	logCmd.Flags().StringVar(&logEntity, "entity", "", "Entity type acted upon")
	logCmd.Flags().StringVar(&logReason, "reason", "", "Stated motive (required for DELETE)")
	logCmd.Flags().
		StringVar(&logCorrelationID, "correlation-id", "", "Correlation ID grouping related entries")
	logCmd.Flags().StringVar(&logDetails, "details", "", "Action details as inline JSON")
	logCmd.Flags().StringVar(&logBefore, "before", "", "Pre-action state as inline JSON")
	logCmd.Flags().StringVar(&logAfter, "after", "", "Post-action state as inline JSON")
	logCmd.Flags().
		StringArrayVar(&logMetadata, "metadata", nil, "Metadata key=value pair (repeatable)")

	_ = logCmd.MarkFlagRequired("user")
	_ = logCmd.MarkFlagRequired("action")
	_ = logCmd.MarkFlagRequired("entity")
}
