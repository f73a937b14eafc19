package entity

const LinesCount = 8

// lineProfiles lists the 8 winning triples: rows top to bottom, columns left
// to right, then the \ diagonal and the / diagonal. Winner depends on this order.
var lineProfiles = [LinesCount][BoardSize]Coordinate{
	{{0, 0}, {1, 0}, {2, 0}}, // row 1
	{{0, 1}, {1, 1}, {2, 1}}, // row 2
	{{0, 2}, {1, 2}, {2, 2}}, // row 3
	{{0, 0}, {0, 1}, {0, 2}}, // column A
	{{1, 0}, {1, 1}, {1, 2}}, // column B
	{{2, 0}, {2, 1}, {2, 2}}, // column C
	{{0, 0}, {1, 1}, {2, 2}}, // diagonal \
	{{0, 2}, {1, 1}, {2, 0}}, // diagonal /
}

// Line is a read-only snapshot of one winning triple and its cells.
type Line struct {
	Coordinates [BoardSize]Coordinate
	Cells       [BoardSize]Cell
}

// Winner reports the side that occupies all three cells of the line.
func (that Line) Winner() (Side, bool) {
	side, ok := that.Cells[0].Side()
	if !ok {
		return "", false
	}

	if that.Cells[1] != that.Cells[0] || that.Cells[2] != that.Cells[0] {
		return "", false
	}

	return side, true
}

// Lines - recomputes the 8 lines from the current board on every call.
func (that *Board) Lines() [LinesCount]Line {
	var lines [LinesCount]Line
	for i, profile := range lineProfiles {
		lines[i].Coordinates = profile
		for j, coordinate := range profile {
			lines[i].Cells[j] = that.Get(coordinate)
		}
	}

	return lines
}
