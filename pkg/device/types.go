// Package device models a running sensor link as an addressable
// device: it can register itself to a registry, publish events, and
// process commands received from connected tooling.
package device

import (
	"context"

	fx "github.com/sensorlink/seglink.go/pkg/framework"
)

// Registrar registers a device to a registry. It integrates with the
// framework loop and routes received commands as loop messages.
type Registrar interface {
	// SendEvent publishes an event to whoever is listening.
	SendEvent(context.Context, fx.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fx.Message
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a Message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// Ref is a reference to a device.
type Ref struct {
	// Type is the device type.
	Type string
	// ID is the unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r Ref) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates Ref is valid.
func (r Ref) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// Meta provides metadata of a device.
type Meta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// Info provides information of a registered device.
type Info struct {
	Ref  Ref
	Meta Meta
}

// Connector is used by tooling to reach a device.
type Connector interface {
	// Discover enumerates registered devices.
	Discover(context.Context) ([]Info, error)
	// Connect connects to the specified device.
	Connect(context.Context, Ref) (Conn, error)
}

// Conn is the connection to a device.
type Conn interface {
	// DoCommand executes a command.
	DoCommand(fx.Message) CommandFuture
}

// Result represents the result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of a sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}
