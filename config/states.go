package config

// StateID identifies an animation sheet
type StateID int

const (
	StateNone StateID = iota - 1
	StateKaboom
)

// StateToFileName maps StateID to the corresponding sprite sheet name.
var StateToFileName = map[StateID]string{
	StateKaboom: "kaboom",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
