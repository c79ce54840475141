package session

// State is a step of the convert-then-upload workflow.
type State int

const (
	Idle State = iota
	Converting
	Converted
	Uploading
	Uploaded
)

var stateNames = map[State]string{
	Idle:       "idle",
	Converting: "converting",
	Converted:  "converted",
	Uploading:  "uploading",
	Uploaded:   "uploaded",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseState is the inverse of [State.String]. Unknown names yield [Idle].
func ParseState(name string) State {
	for s, n := range stateNames {
		if n == name {
			return s
		}
	}
	return Idle
}

// Busy reports whether a remote call is in flight.
func (s State) Busy() bool {
	return s == Converting || s == Uploading
}

// HasMarkdown reports whether the state carries converted Markdown.
func (s State) HasMarkdown() bool {
	return s == Converted || s == Uploading || s == Uploaded
}
