package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Message is an item consumed in a controlling loop.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// Controller defines one unit of controlling logic, invoked once per
// loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}

// TimeSource provides the time for controlling logic.
type TimeSource interface {
	Time() time.Time
}

// ControlContext provides the context of the current iteration.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// Phase gets the phase currently executing.
	Phase() int
	// Messages retrieves the messages collected when this iteration
	// started.
	Messages() MessageStore
	// PostRun injects one-shot hooks after the current phase. If called
	// from a post-run hook, the new hooks run next iteration.
	PostRun(hooks ...Controller)

	LoopControl
}

// Phases is the total number of loop phases.
const Phases int = 8

// Predefined phases, executed in ascending order every iteration.
const (
	PhFirst    int = 0
	PhSense    int = 1
	PhControl  int = 3
	PhActuate  int = 5
	PhPostProc int = 6
	PhIdle     int = Phases - 1
)

// LoopControl exposes access to the controlling loop.
type LoopControl interface {
	// PreRunAt injects one-shot hooks before the specified phase of the
	// next iteration.
	PreRunAt(phase int, controllers ...Controller)
	// PostRunAt injects one-shot hooks after the specified phase.
	PostRunAt(phase int, controllers ...Controller)
	// PostMessage enqueues the message for the next iteration.
	PostMessage(Message)
	// TriggerNext schedules the next iteration immediately after the
	// current one.
	TriggerNext()
}

// MessageStore provides access to the messages of one iteration.
type MessageStore interface {
	// ProcessMessages runs a processor over all pending messages.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender appends messages to a store.
type MessageAppender interface {
	// AddMessages appends messages for the next processing cycle.
	AddMessages(msgs ...Message)
}

// MessageProcessor is used by MessageStore to process messages.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for the current message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being processed.
	CurrentMessage() Message
	// MessageTaken marks the message processed, removing it from the
	// store.
	MessageTaken()
	// StopProcessing skips examination of further messages.
	StopProcessing()

	MessageAppender
}
