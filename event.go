// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with
// custom functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts. When it fires, the execution is non-nil
	// but only its plan field is set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual request attempt. When it fires, the execution's
	// request field is set to the HTTP request that WILL BE sent after
	// all BeforeAttempt handlers have finished.
	//
	// BeforeAttempt handlers may modify the execution's request, thus
	// changing the HTTP request that will be sent. Handlers should
	// clone request fields of reference type (URL and Header) before
	// changing them, as these fields initially reference the
	// same-named fields in the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after an attempt
	// produced an HTTP response (as opposed to an error) but before
	// the response body is read and buffered.
	//
	// BeforeReadBody never fires if the attempt ended in error, but
	// always fires when a response is received, regardless of status
	// code and regardless of whether the body is empty.
	BeforeReadBody
	// AfterAttemptTimeout identifies the event that occurs after a
	// request attempt failed because of a timeout. When it fires, the
	// execution's error field is set to the timeout error and its
	// attempt timeout counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after a request
	// attempt concluded, successfully or not. It fires on every
	// attempt, before the retry policy is consulted for a retry
	// decision. At least one of the execution's response and error
	// fields is non-nil; both are non-nil only if the error occurred
	// while reading the response body.
	AfterAttempt
	// AfterPlanTimeout identifies the event that occurs after a
	// timeout at the plan level, i.e. the deadline on the plan's own
	// context was exceeded. A plan timeout can be detected either at
	// the same time as an attempt timeout, or during the retry wait
	// period. AfterPlanTimeout always occurs after AfterAttempt.
	AfterPlanTimeout
	// AfterExecutionEnd identifies the event that occurs after the
	// plan execution ends. The execution is in its final state except
	// that the end time is now set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of event types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// request plan execution by Client, in the order in which they would
// occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterPlanTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
