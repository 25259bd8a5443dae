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
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/cli"
)

var (
	clearUsername string
	clearPassword string
	clearReason   string
	clearComment  string
)

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the audit trail",
	Long: `Clear every audit entry after verifying admin credentials.

The clear is countersigned: the fresh log's first entry carries a
signature payload binding the signer, reason, and instant of the clear.
Prompts for the password when --password is not given.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		password := clearPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				cli.LogFatal(logger, "failed to read password", err)
			}
			password = string(raw)
		}

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		binder := setupBinder(logger)

		if err := binder.VerifyCredentials(ctx, clearUsername, password); err != nil {
			bundle.store.RecordError(ctx, err, audit.ErrorContext{
				Name:   "clearAuthorizationFailed",
				UserID: clearUsername,
			})
			cli.LogFatal(logger, "invalid credentials", err)
		}

		payload, err := binder.CreatePayload(clearUsername, clearReason, clearComment)
		if err != nil {
			cli.LogFatal(logger, "failed to create signature payload", err)
		}

		result, err := bundle.store.ClearLogs(ctx, audit.Credentials{
			Username: clearUsername,
			Password: password,
		})
		if err != nil {
			cli.LogFatal(logger, "failed to clear audit log", err)
		}

		if _, err := bundle.store.LogAction(
			ctx,
			clearUsername,
			audit.ActionDelete,
			"audit",
			audit.LogClearDetails{
				Signature:      *payload,
				EntriesCleared: result.Cleared,
			},
			audit.Options{Reason: clearReason},
		); err != nil {
			logger.Error("failed to record audit log clear", "error", err)
		}

		if jsonOutput {
			printJSON(map[string]any{
				"cleared":   result.Cleared,
				"timestamp": result.Timestamp,
				"signature": payload,
			})
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Cleared", strconv.Itoa(result.Cleared),
			"Signer", payload.SignerID,
			"Signature", payload.SignatureHash,
			"Timestamp", result.Timestamp.Format("2006-01-02 15:04:05"),
		)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringVar(&clearUsername, "username", "", "Countersigning admin username")
	clearCmd.Flags().
		StringVar(&clearPassword, "password", "", "Admin password (prompted when omitted)")
	clearCmd.Flags().StringVar(&clearReason, "reason", "", "Stated motive for the clear")
	clearCmd.Flags().StringVar(&clearComment, "comment", "", "Optional free-text context")

	_ = clearCmd.MarkFlagRequired("username")
	_ = clearCmd.MarkFlagRequired("reason")
}
