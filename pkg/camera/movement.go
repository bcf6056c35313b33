package camera

import (
	"fmt"
	"strconv"
	"strings"
)

// Movement is a discrete keyboard reposition of an exposure camera. The
// numeric values match the direction codes of the browser key handler.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

var movementNames = map[Movement]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
}

func (m Movement) String() string {
	if name, ok := movementNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Movement(%d)", int(m))
}

// ParseMovement accepts a movement name (forward, backward, left, right,
// case-insensitive) or its numeric code 0-3
func ParseMovement(s string) (Movement, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range movementNames {
		if s == name {
			return m, nil
		}
	}

	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown movement %q", s)
	}
	if _, ok := movementNames[Movement(code)]; !ok {
		return 0, fmt.Errorf("movement code %d out of range 0-3", code)
	}
	return Movement(code), nil
}

// ParseMovements parses a comma separated list of movements
func ParseMovements(list string) ([]Movement, error) {
	var moves []Movement
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := ParseMovement(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
