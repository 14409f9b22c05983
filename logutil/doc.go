// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logger shared by urictl, the parse
// service and the MCP tool. It wraps log/slog with a process-wide logger and
// component-scoped helpers.
//
// The uri package itself never logs.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("parsing input", "input", raw)
//	logutil.Info("server listening", "addr", addr)
//	logutil.Warn("rate limit exceeded", "remote", r.RemoteAddr)
//	logutil.Error("parse failed", "error", err)
//
// # Component Loggers
//
//	log := logutil.NewLogger("server").WithOperation("parse")
//	log.WithRequest(requestID).Info("parsed", "scheme", c.Scheme)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URICTL_DEBUG=true
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are written as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"parsed","scheme":"http"}
//
// Otherwise the text handler is used:
//
//	time=2024-01-15T10:30:00Z level=INFO msg=parsed scheme=http
package logutil
