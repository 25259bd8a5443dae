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

// Package hostinfo resolves environment details stamped onto audit entries.
package hostinfo

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// hostInfoFn is the function used to get host info (injectable for testing).
var hostInfoFn = host.Info

// Provider resolves environment metadata for audit entries.
type Provider struct {
	logger  *slog.Logger
	version string
}

// New creates a Provider stamping the given application version.
func New(
	logger *slog.Logger,
	version string,
) *Provider {
	return &Provider{
		logger:  logger,
		version: version,
	}
}

// ClientSignature returns the short client identifier, e.g.
// "audittrail/1.2.0 (linux/amd64)".
func (p *Provider) ClientSignature() string {
	return fmt.Sprintf("audittrail/%s (%s/%s)", p.version, runtime.GOOS, runtime.GOARCH)
}

// MetadataDefaults returns environment values merged into every recorded
// entry's metadata. Per-entry metadata provided by callers overrides any
// of these keys. Host lookup failures degrade to the static values.
func (p *Provider) MetadataDefaults() map[string]string {
	defaults := map[string]string{
		"appVersion":      p.version,
		"clientSignature": p.ClientSignature(),
	}

	info, err := hostInfoFn()
	if err != nil {
		p.logger.Warn(
			"cannot resolve host info",
			slog.String("error", err.Error()),
		)
		return defaults
	}

	if info.Hostname != "" {
		defaults["hostname"] = info.Hostname
	}

	platform := info.Platform
	if platform == "" {
		platform = info.OS
	}
	if info.PlatformVersion != "" {
		platform = platform + " " + info.PlatformVersion
	}
	if platform != "" {
		defaults["platform"] = platform
	}

	return defaults
}
