package domain

import "time"

// FloorStatus tracks a player's trip to the CTF floor.
// Everyone starts Neutral (the default, never stored until a first transition).
// A player becomes WantsToGo once they ask for it, and OnTheFloor once an
// administrator admits them.
type FloorStatus int

const (
	Neutral FloorStatus = iota
	WantsToGo
	OnTheFloor
)

func (s FloorStatus) String() string {
	switch s {
	case WantsToGo:
		return "Wants to go"
	case OnTheFloor:
		return "On the floor"
	default:
		return "Neutral"
	}
}

// IsValid reports whether s is one of the three known statuses.
func (s FloorStatus) IsValid() bool {
	return s == Neutral || s == WantsToGo || s == OnTheFloor
}

type FloorRecord struct {
	ParticipantID string
	Status        FloorStatus
	OnFloorAt     *time.Time
}

// FloorBuckets partitions floor records by status, in display order.
type FloorBuckets struct {
	WantsToGo  []FloorRecord
	OnTheFloor []FloorRecord
	Neutral    []FloorRecord
}
