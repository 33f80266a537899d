// ABOUTME: Transport state definitions
// ABOUTME: Idle/Playing/Paused/Stopped states of a player
package player

// State is the transport state of a Player.
type State int32

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
