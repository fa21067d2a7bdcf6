package tile

import "strings"

// Direction is one of the four compass directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"North", "East", "South", "West"}

// deltas holds the (row, col) step for each direction.
var deltas = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Opposite returns the reverse direction. It is an involution:
// Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Delta returns the row and column offset of a single step towards d.
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d&3][0], deltas[d&3][1]
}

// Set returns the single-element DirSet holding d.
func (d Direction) Set() DirSet {
	return DirSet(1) << (d & 3)
}

func (d Direction) String() string {
	return directionNames[d&3]
}

// DirSet is a 4-bit mask of directions.
type DirSet uint8

// AllDirections holds North, East, South and West.
const AllDirections DirSet = 0b1111

// Has reports whether d is a member of s.
func (s DirSet) Has(d Direction) bool {
	return s&d.Set() != 0
}

// Add returns s with d included.
func (s DirSet) Add(d Direction) DirSet {
	return s | d.Set()
}

// Len returns the number of members.
func (s DirSet) Len() int {
	n := 0
	for x := s & AllDirections; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Slice returns the members in clockwise order starting at North.
func (s DirSet) Slice() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirSet) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
