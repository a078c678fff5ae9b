// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package classify assigns the outcome of an HTTP request attempt to
// exactly one failure category: rate-limited, server error, network
// error, timeout, or non-retryable. This is the decision input for
// retry policies, and is also handy for bucketing error metrics.
//
// Package classify depends only on the standard library, so it brings
// no significant dependencies when imported standalone.
package classify
