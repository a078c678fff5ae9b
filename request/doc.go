// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (a logical HTTP request
which may be attempted more than once) and Execution (the state of one
plan execution, including the outcome of the most recent attempt).

A Plan is created with NewPlan or NewPlanWithContext and executed by a
client such as httpr.Client. An Execution is created by the executing
client and consumed by retry deciders, waiters, timeout policies, and
event handlers.
*/
package request
