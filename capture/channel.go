// Package capture describes the acquisition-side inputs of a bitrow stream:
// the ordered channel list of the capture device and the chunked packed-bit
// sample data it produces.
//
// The types here are plain values owned by the caller. Encoders read them at
// construction or per chunk and never mutate them.
package capture

// ChannelKind classifies a capture channel.
type ChannelKind uint8

const (
	// KindLogic is a digital (binary) signal channel.
	KindLogic ChannelKind = 0x1

	// KindAnalog is an analog signal channel. Analog channels never
	// contribute bits to a packed logic sample.
	KindAnalog ChannelKind = 0x2
)

func (k ChannelKind) String() string {
	switch k {
	case KindLogic:
		return "Logic"
	case KindAnalog:
		return "Analog"
	default:
		return "Unknown"
	}
}

// Channel is one entry of a capture device's ordered channel list.
type Channel struct {
	// Name is the channel's display name, used in output headers.
	Name string

	// Kind classifies the channel. Only logic channels carry sample bits.
	Kind ChannelKind

	// Enabled reports whether the channel is selected for output.
	Enabled bool
}

// SelectLogic returns the bit positions of all enabled logic channels, in
// channel list order.
//
// A channel's bit position inside a packed sample unit equals its index in
// the full channel list, disabled and analog channels included. The packed
// unit reserves a bit slot for every channel, so skipped channels still
// shift the positions of the ones after them.
//
// The returned slice is empty when no enabled logic channel exists.
func SelectLogic(channels []Channel) []int {
	selection := make([]int, 0, len(channels))
	for i, ch := range channels {
		if ch.Kind != KindLogic || !ch.Enabled {
			continue
		}
		selection = append(selection, i)
	}

	return selection
}

// LogicNames returns the names of all enabled logic channels, in channel
// list order. The result parallels SelectLogic.
func LogicNames(channels []Channel) []string {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		if ch.Kind != KindLogic || !ch.Enabled {
			continue
		}
		names = append(names, ch.Name)
	}

	return names
}
