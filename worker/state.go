package worker

// State is the bootstrap progress of one worker lifetime. It only moves forward, one step at a time.
type State uint32

const (
	StateUninitialized State = iota
	StateSDKReady
	StateChannelActive
	StateListening
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSDKReady:
		return "sdk_ready"
	case StateChannelActive:
		return "channel_active"
	case StateListening:
		return "listening"
	default:
		return "unknown"
	}
}
