// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/retryware/httpr/classify"
	"github.com/retryware/httpr/request"
)

// NewCategoryWaiter constructs a Waiter that dispatches to a
// category-specific wait strategy: the most recent attempt outcome is
// categorized by cls and the waiter mapped to that category computes
// the wait.
//
// A category with no entry in table waits zero. In a policy built by
// NewPolicy this does not normally occur, because the decider has
// already restricted retries to categories the caller mapped.
//
// The table is copied, so the returned Waiter is immutable and safe
// for concurrent use.
func NewCategoryWaiter(cls classify.Classifier, table map[classify.Category]Waiter) Waiter {
	t2 := make(map[classify.Category]Waiter, len(table))
	for cat, w := range table {
		if w == nil {
			panic("httpr/retry: nil waiter for category " + cat.String())
		}
		t2[cat] = w
	}
	return categoryWaiter{cls: cls, table: t2}
}

type categoryWaiter struct {
	cls   classify.Classifier
	table map[classify.Category]Waiter
}

func (w categoryWaiter) Wait(e *request.Execution) time.Duration {
	cat := w.cls.Categorize(e.Response, e.Err)
	if waiter, ok := w.table[cat]; ok {
		return waiter.Wait(e)
	}
	return 0
}
