// Messages defined in msgs.proto, maintained by hand to keep the build
// free of a protoc step. Field numbers and wire types must stay in sync
// with the proto file.

package v1

import (
	proto "github.com/golang/protobuf/proto"
)

// Typed is the envelope for all messages on the wire.
type Typed struct {
	TypeId   uint32 `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Sequence uint32 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Message  []byte `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

// CommandOK is the generic success reply.
type CommandOK struct {
}

func (m *CommandOK) Reset()         { *m = CommandOK{} }
func (m *CommandOK) String() string { return proto.CompactTextString(m) }
func (*CommandOK) ProtoMessage()    {}

// CommandErr is the generic failure reply.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CommandErr) Reset()         { *m = CommandErr{} }
func (m *CommandErr) String() string { return proto.CompactTextString(m) }
func (*CommandErr) ProtoMessage()    {}

// PotSet moves the simulated potentiometer wiper.
type PotSet struct {
	Position float32 `protobuf:"fixed32,1,opt,name=position,proto3" json:"position,omitempty"`
}

func (m *PotSet) Reset()         { *m = PotSet{} }
func (m *PotSet) String() string { return proto.CompactTextString(m) }
func (*PotSet) ProtoMessage()    {}

// StatsQuery asks for link diagnostics.
type StatsQuery struct {
}

func (m *StatsQuery) Reset()         { *m = StatsQuery{} }
func (m *StatsQuery) String() string { return proto.CompactTextString(m) }
func (*StatsQuery) ProtoMessage()    {}

// Stats reports link diagnostics.
type Stats struct {
	Sample uint32 `protobuf:"varint,1,opt,name=sample,proto3" json:"sample,omitempty"`
	Frames uint64 `protobuf:"varint,2,opt,name=frames,proto3" json:"frames,omitempty"`
	Digit  uint32 `protobuf:"varint,3,opt,name=digit,proto3" json:"digit,omitempty"`
}

func (m *Stats) Reset()         { *m = Stats{} }
func (m *Stats) String() string { return proto.CompactTextString(m) }
func (*Stats) ProtoMessage()    {}

// DisplayChanged is emitted when the displayed digit changes.
type DisplayChanged struct {
	Digit   uint32 `protobuf:"varint,1,opt,name=digit,proto3" json:"digit,omitempty"`
	Sample  uint32 `protobuf:"varint,2,opt,name=sample,proto3" json:"sample,omitempty"`
	Pattern uint32 `protobuf:"varint,3,opt,name=pattern,proto3" json:"pattern,omitempty"`
}

func (m *DisplayChanged) Reset()         { *m = DisplayChanged{} }
func (m *DisplayChanged) String() string { return proto.CompactTextString(m) }
func (*DisplayChanged) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Typed)(nil), "seglink.v1.Typed")
	proto.RegisterType((*CommandOK)(nil), "seglink.v1.CommandOK")
	proto.RegisterType((*CommandErr)(nil), "seglink.v1.CommandErr")
	proto.RegisterType((*PotSet)(nil), "seglink.v1.PotSet")
	proto.RegisterType((*StatsQuery)(nil), "seglink.v1.StatsQuery")
	proto.RegisterType((*Stats)(nil), "seglink.v1.Stats")
	proto.RegisterType((*DisplayChanged)(nil), "seglink.v1.DisplayChanged")
}
