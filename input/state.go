package input

// InputMode selects which key table the parser consults
// Kept in sync by the app as overlays open and close
type InputMode uint8

const (
	ModePlay       InputMode = iota // Menu, ready, playing and game-over screens
	ModeCollection                  // Collection overlay open
	ModeConfirm                     // Erase confirmation pending
)

func (m InputMode) String() string {
	switch m {
	case ModeCollection:
		return "collection"
	case ModeConfirm:
		return "confirm"
	}
	return "play"
}
