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

	natsclient "github.com/osapi-io/nats-client/pkg/client"
	"github.com/redis/go-redis/v9"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/cli"
	"github.com/retr0h/audittrail/internal/hostinfo"
	"github.com/retr0h/audittrail/internal/identity"
	"github.com/retr0h/audittrail/internal/messaging"
	"github.com/retr0h/audittrail/internal/signature"
	"github.com/retr0h/audittrail/internal/store"
)

// storeBundle holds the audit store and the connections backing it.
type storeBundle struct {
	store   *audit.Store
	cleanup func()
}

// setupAuditStore builds the audit store over the configured backend,
// probing it and degrading to in-memory when it cannot serve. The
// returned cleanup closes any connection the backend holds.
func setupAuditStore(
	ctx context.Context,
	log *slog.Logger,
) *storeBundle {
	durable, cleanup := buildBackend(ctx, log)
	backend := store.Select(ctx, log, durable)

	opts := []audit.Option{
		audit.WithMetadataProvider(hostinfo.New(log, version)),
	}
	if key := appConfig.Store.Key; key != "" {
		opts = append(opts, audit.WithLogKey(key))
	}

	return &storeBundle{
		store:   audit.New(log, backend, opts...),
		cleanup: cleanup,
	}
}

// buildBackend constructs the configured durable backend, or nil for the
// in-memory one. The cleanup func is always safe to call.
func buildBackend(
	ctx context.Context,
	log *slog.Logger,
) (store.Backend, func()) {
	noop := func() {}

	switch appConfig.Store.Backend {
	case "file":
		return store.NewFile(appFs, appConfig.Store.File.Dir), noop
	case "nats":
		var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
			Host: appConfig.NATS.Connection.Host,
			Port: appConfig.NATS.Connection.Port,
			Auth: cli.BuildNATSAuthOptions(appConfig.NATS.Connection.Auth),
			Name: appConfig.NATS.Connection.ClientName,
		})

		if err := nc.Connect(); err != nil {
			log.Warn("cannot connect to NATS", slog.String("error", err.Error()))
			return nil, noop
		}

		kv, err := nc.CreateOrUpdateKVBucketWithConfig(
			ctx,
			cli.BuildAuditKVConfig(appConfig.NATS.Audit),
		)
		if err != nil {
			log.Warn("cannot create audit KV bucket", slog.String("error", err.Error()))
			cli.CloseNATSClient(nc)
			return nil, noop
		}

		return store.NewNATS(log, kv), func() { cli.CloseNATSClient(nc) }
	case "redis":
		redisOpts, err := redis.ParseURL(appConfig.Store.Redis.URL)
		if err != nil {
			log.Warn("cannot parse redis url", slog.String("error", err.Error()))
			return nil, noop
		}

		client := redis.NewClient(redisOpts)

		return store.NewRedis(client, appConfig.Store.Redis.Prefix),
			func() { _ = client.Close() }
	default:
		return nil, noop
	}
}

// setupBinder builds the signature binder over the configured admin table.
func setupBinder(
	log *slog.Logger,
) *signature.Binder {
	hashes := make(map[string]string, len(appConfig.Security.Admins))
	for _, admin := range appConfig.Security.Admins {
		hashes[admin.Username] = admin.PasswordHash
	}

	return signature.New(log, identity.NewStaticVerifier(log, hashes))
}
