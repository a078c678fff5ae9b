// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides flexible policies deciding whether to retry
// failed HTTP request attempts, and how long to wait before retrying.
//
// The interface Policy defines a retry policy as the composition of a
// decision-maker, Decider, and a wait time calculator, Waiter. A
// policy covering the common transient-failure cases comes ready-made:
//
//	policy, err := retry.NewTransientPolicy()
//
// and is tuned with options:
//
//	policy, err := retry.NewTransientPolicy(
//		retry.WithMaxAttempts(5),
//		retry.WithServerErrorCodes(500, 503),
//		retry.WithWaitMax(30*time.Second))
//
// Custom policies are assembled from parts with NewPolicy:
//
//	decider := retry.Times(3).
//		And(retry.Before(5 * time.Second)).
//		And(retry.StatusCode(500).Or(retry.Transient))
//	waiter := retry.NewRetryAfterWaiter(
//		retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now()))
//	policy := retry.NewPolicy(decider, waiter)
//
// Wait strategies compose by fallback chaining: a ConditionalWaiter
// such as NewHeaderWaiter may decline to produce a wait, in which case
// WithFallback consults the next strategy in the chain. Declining is
// distinct from a deliberate zero-length wait.
//
// If the built-in functionality is insufficient, fully custom retry
// policies can be created via custom implementations of Decider,
// Waiter, or Policy.
package retry
