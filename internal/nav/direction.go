package nav

import "strings"

// Direction is a cardinal direction of travel.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{
	Left:  "left",
	Right: "right",
	Up:    "up",
	Down:  "down",
}

// Directions lists every direction in the order hyprnav binds them.
var Directions = []Direction{Right, Left, Up, Down}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// Code returns the single-letter form Hyprland's movefocus dispatcher takes.
func (d Direction) Code() string {
	if !d.Valid() {
		return ""
	}
	return directionNames[d][:1]
}

// ParseDirection matches a direction word case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return 0, false
}

// DirectionFromCode maps movefocus codes (l, r, u, d) to a Direction.
func DirectionFromCode(code string) (Direction, bool) {
	switch code {
	case "l":
		return Left, true
	case "r":
		return Right, true
	case "u":
		return Up, true
	case "d":
		return Down, true
	}
	return 0, false
}
