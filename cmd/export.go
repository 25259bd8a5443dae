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

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/cli"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit trail",
	Long: `Export the full audit trail as JSON or CSV.

Writes to a timestamped file in the working directory unless --output
names a path. Use --output - to write to stdout.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		bundle := setupAuditStore(ctx, logger)
		defer bundle.cleanup()

		exported, err := bundle.store.ExportLogs(ctx, exportFormat)
		if err != nil {
			cli.LogFatal(logger, "failed to export audit log", err, "format", exportFormat)
		}

		if exportOutput == "-" {
			fmt.Print(string(exported.Content))
			return
		}

		path := exportOutput
		if path == "" {
			path = exported.Filename
		}

		if err := afero.WriteFile(appFs, path, exported.Content, 0o644); err != nil {
			cli.LogFatal(logger, "failed to write export file", err, "path", path)
		}

		fmt.Println()
		cli.PrintKV(
			"File", path,
			"Format", exportFormat,
			"Size", cli.FormatBytes(len(exported.Content)),
		)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringVar(&exportFormat, "format", audit.FormatJSON, "Export format: json or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path, or - for stdout")
}
