// Package gridgraph treats a rectangular 2D grid of cell values as a search
// host for package astar.
//
// What:
//
//   - GridGraph wraps a [][]int grid indexed [row][col]. Cells whose value is
//     below OpenThreshold are walls (Blocked); every other cell is open.
//   - It implements astar.Graph[Point]: orthogonal moves cost 1, diagonal moves
//     under Conn8 cost DiagonalCost.
//   - Parse reads ASCII maps ('#' wall, '.' open, 'S'/'G' markers, digits as values).
//   - ConnectedComponents and Reachable answer connectivity questions up front;
//     Breach reports the fewest walls separating two cells.
//   - ToCoreGraph exports the open cells as a weighted *core.Graph with IDs "row,col".
//
// Complexity:
//
//   - Neighbors: O(d), d = 4 or 8.
//   - ConnectedComponents, Reachable, Breach: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph: O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadDiagonalCost: construction.
//   - ErrBadCell, ErrDuplicateMarker: Parse.
//   - ErrOutOfBounds, ErrNoPath: Breach.
package gridgraph
