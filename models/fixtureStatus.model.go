package models

// FixtureStatus is the short status code reported by the football feed.
type FixtureStatus string

const (
	StatusTBD  FixtureStatus = "TBD"  // Time To Be Defined
	StatusNS   FixtureStatus = "NS"   // Not Started
	Status1H   FixtureStatus = "1H"   // First Half, Kick Off
	StatusHT   FixtureStatus = "HT"   // Halftime
	Status2H   FixtureStatus = "2H"   // Second Half
	StatusET   FixtureStatus = "ET"   // Extra Time
	StatusBT   FixtureStatus = "BT"   // Break Time
	StatusP    FixtureStatus = "P"    // Penalty In Progress
	StatusSUSP FixtureStatus = "SUSP" // Match Suspended
	StatusINT  FixtureStatus = "INT"  // Match Interrupted
	StatusFT   FixtureStatus = "FT"   // Match Finished
	StatusAET  FixtureStatus = "AET"  // Match Finished After Extra Time
	StatusPEN  FixtureStatus = "PEN"  // Match Finished After Penalty Shootout
	StatusPST  FixtureStatus = "PST"  // Match Postponed
	StatusCANC FixtureStatus = "CANC" // Match Cancelled
	StatusABD  FixtureStatus = "ABD"  // Match Abandoned
	StatusAWD  FixtureStatus = "AWD"  // Technical Loss
	StatusWO   FixtureStatus = "WO"   // WalkOver
	StatusLIVE FixtureStatus = "LIVE" // In Progress

	// StatusUnknown is stored when the feed reports a code we do not recognize.
	StatusUnknown FixtureStatus = ""
)

var knownStatuses = map[string]FixtureStatus{
	"TBD": StatusTBD, "NS": StatusNS, "1H": Status1H, "HT": StatusHT,
	"2H": Status2H, "ET": StatusET, "BT": StatusBT, "P": StatusP,
	"SUSP": StatusSUSP, "INT": StatusINT, "FT": StatusFT, "AET": StatusAET,
	"PEN": StatusPEN, "PST": StatusPST, "CANC": StatusCANC, "ABD": StatusABD,
	"AWD": StatusAWD, "WO": StatusWO, "LIVE": StatusLIVE,
}

// ParseFixtureStatus maps a feed short code to a FixtureStatus.
// Unrecognized codes map to StatusUnknown rather than failing the sync.
func ParseFixtureStatus(code string) FixtureStatus {
	if status, ok := knownStatuses[code]; ok {
		return status
	}
	return StatusUnknown
}

// IsFinished reports whether the status is one of the finished-type codes.
func (s FixtureStatus) IsFinished() bool {
	return s == StatusFT || s == StatusAET || s == StatusPEN
}
