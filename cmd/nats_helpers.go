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
	"time"

	"github.com/nats-io/nats-server/v2/server"

	"github.com/retr0h/audittrail/internal/cli"
)

// natsReadyTimeout bounds how long startup waits for the embedded server
// to accept connections.
const natsReadyTimeout = 10 * time.Second

// natsLifecycle adapts the embedded NATS server to the Lifecycle interface.
type natsLifecycle struct {
	server *server.Server
}

func (n *natsLifecycle) Start() {}

func (n *natsLifecycle) Stop(_ context.Context) {
	n.server.Shutdown()
	n.server.WaitForShutdown()
}

// setupNATSServer starts the embedded NATS server with JetStream enabled
// and blocks until it is ready for connections.
func setupNATSServer(
	log *slog.Logger,
) *server.Server {
	opts := &server.Options{
		Host:      appConfig.NATS.Server.Host,
		Port:      appConfig.NATS.Server.Port,
		JetStream: true,
		StoreDir:  appConfig.NATS.Server.StoreDir,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		cli.LogFatal(log, "failed to create NATS server", err)
	}

	ns.Start()

	if !ns.ReadyForConnections(natsReadyTimeout) {
		cli.LogFatal(log, "NATS server not ready for connections", nil)
	}

	log.Info(
		"embedded NATS server started",
		slog.String("host", opts.Host),
		slog.Int("port", opts.Port),
		slog.String("store_dir", opts.StoreDir),
	)

	return ns
}
