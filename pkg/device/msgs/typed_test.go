package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/sensorlink/seglink.go/pkg/framework"
	pb "github.com/sensorlink/seglink.go/pkg/proto/seglink/v1"
)

func TestTypedRoundTrip(t *testing.T) {
	src := &DisplayChanged{DisplayChanged: pb.DisplayChanged{Digit: 5, Sample: 150, Pattern: 0x05}}
	typed, err := TypedFrom(src)
	require.NoError(t, err)
	require.True(t, typed.IsEvent())
	require.False(t, typed.IsCommand())

	encoded, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(encoded)
	require.NoError(t, err)
	require.Equal(t, DisplayChangedTypeID, decoded.TypeId)

	msg, err := decoded.Decode()
	require.NoError(t, err)
	event, ok := msg.(*DisplayChanged)
	require.True(t, ok)
	require.Equal(t, uint32(5), event.Digit)
	require.Equal(t, uint32(150), event.Sample)
	require.Equal(t, uint32(0x05), event.Pattern)
}

func TestTypedKinds(t *testing.T) {
	testCases := []struct {
		msg     SerializableMessage
		command bool
	}{
		{&PotSet{}, true},
		{&StatsQuery{}, true},
		{&Stats{}, true},
		{&CommandOK{}, true},
		{&DisplayChanged{}, false},
	}
	for _, tc := range testCases {
		typed, err := TypedFrom(tc.msg)
		require.NoError(t, err)
		require.Equal(t, tc.command, typed.IsCommand())
	}
}

func TestTypedUnknown(t *testing.T) {
	typed := &Typed{}
	typed.TypeId = GroupCustom | 0x0001
	_, err := typed.Decode()
	require.IsType(t, &ErrUnknownType{}, err)
}

func TestTypedNotSerializable(t *testing.T) {
	_, err := TypedFrom(&notSerializable{})
	require.Equal(t, ErrNotSerializable, err)
}

type notSerializable struct{}

func (m *notSerializable) NewMessage() fx.Message { return &notSerializable{} }
