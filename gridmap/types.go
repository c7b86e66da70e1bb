package gridmap

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input mask has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input mask must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrDimensionMismatch indicates the mask and the distance map have
	// different dimensions.
	ErrDimensionMismatch = errors.New("gridmap: mask and distance map dimensions must match")
)

const (
	// Ink is the mask value marking a foreground (ink) pixel. Any other
	// value is background.
	Ink byte = 0

	// NoObstacle is the distance-map sentinel marking "no ink pixel found
	// within sensor range in this column". ObstacleDistance reports it as
	// absent rather than as a finite distance.
	NoObstacle byte = 255
)

// Node is an integer (row, column) coordinate into a Grid.
// It is a comparable value type and is used directly as a map key.
type Node struct {
	Row, Col int
}

// directions are the 8 grid-diagonal neighbor offsets, row-major order.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
