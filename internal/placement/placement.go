// Package placement maps processor types to the physical grid layout of
// their qubits, used by the chip view to position per-qubit subplots.
package placement

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownProcessor marks a processor type with no registered layout.
var ErrUnknownProcessor = errors.New("unknown processor type")

// Placement describes where each qubit of a chip sits on a 2D grid.
// Positions[i] is the (x, y) grid cell of qubit i.
type Placement struct {
	QubitNumber    int
	Positions      [][2]int
	ProcessorTypes []string
}

// MaxX returns the largest x coordinate used by the placement.
func (p Placement) MaxX() int {
	max := 0
	for _, pos := range p.Positions {
		if pos[0] > max {
			max = pos[0]
		}
	}
	return max
}

// MaxY returns the largest y coordinate used by the placement.
func (p Placement) MaxY() int {
	max := 0
	for _, pos := range p.Positions {
		if pos[1] > max {
			max = pos[1]
		}
	}
	return max
}

// Occupied reports whether some qubit sits at grid cell (x, y).
func (p Placement) Occupied(x, y int) bool {
	for _, pos := range p.Positions {
		if pos[0] == x && pos[1] == y {
			return true
		}
	}
	return false
}

var registry = map[string]Placement{}

func register(p Placement) {
	if p.QubitNumber != len(p.Positions) {
		panic(fmt.Sprintf("placement for %v declares %d qubits but has %d positions",
			p.ProcessorTypes, p.QubitNumber, len(p.Positions)))
	}
	for _, processorType := range p.ProcessorTypes {
		if _, dup := registry[processorType]; dup {
			panic(fmt.Sprintf("processor type %q registered twice", processorType))
		}
		registry[processorType] = p
	}
}

// ForProcessor returns the placement registered for the given processor
// type, or an error listing the known types.
func ForProcessor(processorType string) (Placement, error) {
	p, ok := registry[processorType]
	if !ok {
		return Placement{}, fmt.Errorf("%w %q (known types: %s)",
			ErrUnknownProcessor, processorType, strings.Join(Known(), ", "))
	}
	return p, nil
}

// Known returns the registered processor types, sorted.
func Known() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func line(n int) [][2]int {
	positions := make([][2]int, n)
	for i := range positions {
		positions[i] = [2]int{i, 0}
	}
	return positions
}

func row(y, from, to int) [][2]int {
	var positions [][2]int
	for x := from; x < to; x++ {
		positions = append(positions, [2]int{x, y})
	}
	return positions
}

func heavyHex65() [][2]int {
	positions := row(0, 0, 10)
	positions = append(positions, [2]int{0, 1}, [2]int{4, 1}, [2]int{8, 1})
	positions = append(positions, row(2, 0, 11)...)
	positions = append(positions, [2]int{2, 3}, [2]int{6, 3}, [2]int{10, 3})
	positions = append(positions, row(4, 0, 11)...)
	positions = append(positions, [2]int{0, 5}, [2]int{4, 5}, [2]int{8, 5})
	positions = append(positions, row(6, 0, 11)...)
	positions = append(positions, [2]int{2, 7}, [2]int{6, 7}, [2]int{10, 7})
	positions = append(positions, row(8, 1, 11)...)
	return positions
}

func heavyHex127() [][2]int {
	positions := row(0, 0, 14)
	positions = append(positions, [2]int{0, 1}, [2]int{4, 1}, [2]int{8, 1}, [2]int{12, 1})
	positions = append(positions, row(2, 0, 15)...)
	positions = append(positions, [2]int{2, 3}, [2]int{6, 3}, [2]int{10, 3}, [2]int{14, 3})
	positions = append(positions, row(4, 0, 15)...)
	positions = append(positions, [2]int{0, 5}, [2]int{4, 5}, [2]int{8, 5}, [2]int{12, 5})
	positions = append(positions, row(6, 0, 15)...)
	positions = append(positions, [2]int{2, 7}, [2]int{6, 7}, [2]int{10, 7}, [2]int{14, 7})
	positions = append(positions, row(8, 0, 15)...)
	positions = append(positions, [2]int{0, 9}, [2]int{4, 9}, [2]int{8, 9}, [2]int{12, 9})
	positions = append(positions, row(10, 0, 15)...)
	positions = append(positions, [2]int{2, 11}, [2]int{6, 11}, [2]int{10, 11}, [2]int{14, 11})
	positions = append(positions, row(12, 1, 15)...)
	return positions
}

func init() {
	register(Placement{
		QubitNumber:    1,
		Positions:      [][2]int{{0, 0}},
		ProcessorTypes: []string{"Canary r1.2"},
	})
	register(Placement{
		QubitNumber:    5,
		Positions:      [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}},
		ProcessorTypes: []string{"Falcon r4T"},
	})
	register(Placement{
		QubitNumber:    5,
		Positions:      line(5),
		ProcessorTypes: []string{"Falcon r4L", "Falcon r5.11L"},
	})
	register(Placement{
		QubitNumber:    7,
		Positions:      [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {0, 2}, {1, 2}, {2, 2}},
		ProcessorTypes: []string{"Falcon r5.11H"},
	})
	register(Placement{
		QubitNumber: 16,
		Positions: [][2]int{
			{0, 1}, {1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 0}, {3, 1},
			{3, 3}, {3, 4}, {4, 1}, {4, 3}, {5, 1}, {5, 2}, {5, 3}, {6, 1},
		},
		ProcessorTypes: []string{"Falcon r4P"},
	})
	register(Placement{
		QubitNumber: 27,
		Positions: [][2]int{
			{0, 1}, {1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 0}, {3, 1},
			{3, 3}, {3, 4}, {4, 1}, {4, 3}, {5, 1}, {5, 2}, {5, 3}, {6, 1},
			{6, 3}, {7, 0}, {7, 1}, {7, 3}, {7, 4}, {8, 1}, {8, 3}, {9, 1},
			{9, 2}, {9, 3}, {10, 3},
		},
		ProcessorTypes: []string{"Falcon r5.11", "Falcon r4", "Falcon r5.1", "Falcon r8"},
	})
	register(Placement{
		QubitNumber:    65,
		Positions:      heavyHex65(),
		ProcessorTypes: []string{"Hummingbird r2"},
	})
	register(Placement{
		QubitNumber:    127,
		Positions:      heavyHex127(),
		ProcessorTypes: []string{"Eagle r1"},
	})
}
