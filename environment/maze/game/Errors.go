package game

import "fmt"

// MalformedMapError is returned when a tile map violates the structure
// required by its legend. Row and Col locate the offending cell and are
// -1 when the violation concerns the map as a whole.
type MalformedMapError struct {
	Row, Col int
	Reason   string
}

func (e *MalformedMapError) Error() string {
	if e.Row < 0 {
		return "malformed map: " + e.Reason
	}
	if e.Col < 0 {
		return fmt.Sprintf("malformed map: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed map: row %d, col %d: %s", e.Row, e.Col,
		e.Reason)
}

// InvalidStateError is returned when an episode is stepped after it has
// terminated. The episode must be reset before it can be stepped again.
type InvalidStateError struct {
	Turn int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: episode terminated at turn %d, "+
		"reset required", e.Turn)
}
