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
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/retr0h/audittrail/internal/api"
	"github.com/retr0h/audittrail/internal/cli"
	"github.com/retr0h/audittrail/internal/telemetry"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// CreateHandlers initializes handlers and returns a slice of functions to register them.
	CreateHandlers() []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// setupAPIServer builds the audit store, binder, and API server. It is used
// by the standalone server start and combined start commands.
func setupAPIServer(
	ctx context.Context,
	log *slog.Logger,
	metricsHandler http.Handler,
) (ServerManager, *storeBundle) {
	bundle := setupAuditStore(ctx, log)

	var sm ServerManager = api.New(
		appConfig,
		log,
		api.WithAuditStore(bundle.store),
		api.WithBinder(setupBinder(log)),
		api.WithMetricsHandler(metricsHandler),
		api.WithVersion(version),
	)
	sm.RegisterHandlers(sm.CreateHandlers())

	return sm, bundle
}

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"audittrail",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		metricsHandler, _, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize meter", err)
		}

		sm, bundle := setupAPIServer(ctx, logger.With("component", "api"), metricsHandler)

		sm.Start()
		cli.RunServer(ctx, sm, func() {
			_ = shutdownMeter(context.Background())
			_ = shutdownTracer(context.Background())
			bundle.cleanup()
		})
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
