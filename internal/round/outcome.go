package round

import "fmt"

// Outcome is what a single Tick reports to the host.
type Outcome int

const (
	None Outcome = iota
	Collision
	Win
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Collision:
		return "collision"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*o = None
	case "collision":
		*o = Collision
	case "win":
		*o = Win
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}
