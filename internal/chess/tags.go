package chess

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Results lists the game termination markers passed through unchanged.
var Results = []string{"1-0", "0-1", "1/2-1/2", "*"}

// IsResult returns true if s is a game termination marker.
func IsResult(s string) bool {
	for _, r := range Results {
		if r == s {
			return true
		}
	}
	return false
}
