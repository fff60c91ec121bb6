package model

// TransportState represents whether the loaded source is being played
type TransportState string

const (
	// TransportStopped means no player process is live
	TransportStopped TransportState = "Stopped"

	// TransportPlaying means a player process is live and the tick is running
	TransportPlaying TransportState = "Playing"
)

// String returns the string representation of TransportState
func (ts TransportState) String() string {
	return string(ts)
}

// IsActive returns true if the transport is playing
func (ts TransportState) IsActive() bool {
	return ts == TransportPlaying
}
