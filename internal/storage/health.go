package storage

import "os"

// Health contains information about the health status of the session
// log file. It distinguishes "empty because new" from "empty because
// the file was corrupt and reset".
type Health struct {
	Exists        bool // Whether the backing file exists
	Recovered     bool // Whether the file existed but was unparsable
	ValidSessions int  // Number of well-formed records
	Dropped       int  // Number of malformed records discarded
}

// Validate analyzes the session log file and returns health status
// information. Returns an empty health status if the file doesn't exist.
func Validate(path string) Health {
	health := Health{}

	if _, err := os.Stat(path); err == nil {
		health.Exists = true
	}

	st := Open(path)
	health.Recovered = st.Recovered()
	health.ValidSessions = len(st.Sessions())
	health.Dropped = st.Dropped()

	return health
}
