// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for setting per-attempt HTTP
// timeouts during a request plan execution, including on retries. The
// generic Policy interface is provided along with the built-in
// policies Fixed, Adaptive, and Infinite.
package timeout
