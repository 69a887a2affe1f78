package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	fx "github.com/sensorlink/seglink.go/pkg/framework"
	pb "github.com/sensorlink/seglink.go/pkg/proto/seglink/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing a command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// PotSet command moves the simulated potentiometer wiper to a position
// in 0..1.
type PotSet struct {
	pb.PotSet
}

// NewMessage implements Message.
func (m *PotSet) NewMessage() fx.Message { return &PotSet{} }

// TypeID implements SerializableMessage.
func (m *PotSet) TypeID() uint32 { return PotSetTypeID }

// Serializable implements SerializableMessage.
func (m *PotSet) Serializable() proto.Message { return &m.PotSet }

// StatsQuery command.
type StatsQuery struct {
	pb.StatsQuery
}

// NewMessage implements Message.
func (m *StatsQuery) NewMessage() fx.Message { return &StatsQuery{} }

// TypeID implements SerializableMessage.
func (m *StatsQuery) TypeID() uint32 { return StatsQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatsQuery) Serializable() proto.Message { return &m.StatsQuery }

// Stats response.
type Stats struct {
	pb.Stats
}

// NewMessage implements Message.
func (m *Stats) NewMessage() fx.Message { return &Stats{} }

// TypeID implements SerializableMessage.
func (m *Stats) TypeID() uint32 { return StatsTypeID }

// Serializable implements SerializableMessage.
func (m *Stats) Serializable() proto.Message { return &m.Stats }

// DisplayChanged event, emitted when the displayed digit changes.
type DisplayChanged struct {
	pb.DisplayChanged
}

// NewMessage implements Message.
func (m *DisplayChanged) NewMessage() fx.Message { return &DisplayChanged{} }

// TypeID implements SerializableMessage.
func (m *DisplayChanged) TypeID() uint32 { return DisplayChangedTypeID }

// Serializable implements SerializableMessage.
func (m *DisplayChanged) Serializable() proto.Message { return &m.DisplayChanged }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupLink    uint32 = 0x00010000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID      uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	PotSetTypeID         uint32 = GroupLink | 0x0000
	StatsQueryTypeID     uint32 = GroupLink | 0x0001
	StatsTypeID          uint32 = StatsQueryTypeID | TypeIDMaskReply
	DisplayChangedTypeID uint32 = TypeIDKindEvent | GroupLink | 0x0000
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
