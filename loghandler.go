// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"log/slog"

	"github.com/retryware/httpr/classify"
	"github.com/retryware/httpr/request"
)

// LogAttempts returns an event handler that logs the outcome of every
// request attempt to logger using structured logging. Install it on
// the AfterAttempt event:
//
//	handlers := &httpr.HandlerGroup{}
//	handlers.PushBack(httpr.AfterAttempt, httpr.LogAttempts(slog.Default()))
//
// Successful attempts log at Debug level; failed attempts log at Warn
// level with the failure category assigned by the default classifier.
//
// The client itself never logs. Logging is strictly an opt-in handler
// concern, so installing nothing keeps the library silent.
func LogAttempts(logger *slog.Logger) Handler {
	if logger == nil {
		panic("httpr: nil logger")
	}
	return HandlerFunc(func(evt Event, e *request.Execution) {
		if evt != AfterAttempt {
			return
		}
		attrs := []any{
			slog.String("method", e.Plan.Method),
			slog.String("url", e.Plan.URL.String()),
			slog.Int("attempt", e.Attempt),
		}
		cat := classify.Categorize(e.Response, e.Err)
		if e.Err != nil {
			attrs = append(attrs,
				slog.String("category", cat.String()),
				slog.String("error", e.Err.Error()))
			logger.Warn("attempt failed", attrs...)
			return
		}
		attrs = append(attrs, slog.Int("status", e.StatusCode()))
		if cat == classify.NonRetryable {
			logger.Debug("attempt completed", attrs...)
		} else {
			attrs = append(attrs, slog.String("category", cat.String()))
			logger.Warn("attempt failed", attrs...)
		}
	})
}
