package maze

// Side names one of the four boundaries of a cell.
type Side int

const (
	North Side = iota
	South
	East
	West
)

// Sides lists every side in the order searches explore them.
var Sides = [4]Side{North, South, East, West}

var sideNames = [4]string{"North", "South", "East", "West"}

// String returns the side name (North, South, East, West).
func (s Side) String() string {
	if s < North || s > West {
		return "Unknown"
	}
	return sideNames[s]
}

// Delta returns the row and column offsets of the neighbor across s.
func (s Side) Delta() (int, int) {
	switch s {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the side a neighbor sees when looking back across s.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a presentation marker.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	OnPath    bool // OnPath marks membership in the most recently found shortest path.
}

// HasWall reports whether the cell has a wall on side s.
func (c *Cell) HasWall(s Side) bool {
	switch s {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return false
}

// setWall sets the wall on side s of this cell only.
func (c *Cell) setWall(s Side, hasWall bool) {
	switch s {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	case West:
		c.WestWall = hasWall
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a movement from one cell to its neighbor across a side.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Side         // Side of From that is crossed
}

// WallMask packs the walls of the cell into the low four bits, one bit per
// side in Sides order.
func (c *Cell) WallMask() uint8 {
	var mask uint8
	for i, side := range Sides {
		if c.HasWall(side) {
			mask |= 1 << i
		}
	}
	return mask
}

// CellFromWallMask is the inverse of WallMask. The on-path marker is left unset.
func CellFromWallMask(mask uint8) Cell {
	var c Cell
	for i, side := range Sides {
		c.setWall(side, mask&(1<<i) != 0)
	}
	return c
}
