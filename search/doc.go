// Package search computes routes across a terrain.Grid from a start cell to a
// goal cell using one of five strategies. All strategies share the grid's
// cost model and neighbor order and return the same shape: a Path of cells,
// start and goal inclusive.
//
// Strategies:
//
//   - NaiveDirect:     walks rows first, then columns, straight to the goal.
//     Ignores cost; always |Δrow|+|Δcol|+1 cells.
//   - GreedyBacktrack: depth-first walk that always steps onto the cheapest
//     unvisited neighbor and backs up out of dead ends. Never revisits a cell.
//     Not cost-optimal.
//   - FrontierAverage: FIFO frontier; each expansion enqueues its children
//     ordered by the mean cost of their own neighbors. Stops at the first
//     dequeue of the goal. Not cost-optimal.
//   - UniformCost:     frontier ordered by accumulated cost; explores until the
//     frontier is empty and keeps the cheapest goal arrival. Cost-optimal.
//   - HeuristicGuided: as UniformCost, ordered by accumulated cost plus the
//     Manhattan distance to the goal. The distance assumes unit steps while
//     every real step costs at least terrain.MinCost, so it never
//     overestimates and the result stays cost-optimal.
//
// Ties are always broken by insertion order: candidates arrive in the grid's
// up, right, down, left order and every sort is stable. Consequently the same
// strategy on the same grid, start and goal always yields the same Path.
//
// Options:
//
//   - WithMaxSteps(n):   abort with ErrStepLimit after n iterations (0 = no cap).
//   - WithOnExpand(fn):  observe each coordinate a strategy expands.
//   - WithOnEnqueue(fn): observe each coordinate pushed with its ordering score.
//
// Errors:
//
//   - ErrNilGrid:          grid is nil.
//   - terrain.ErrOutOfBounds: start or goal outside the grid.
//   - ErrNoPath:           the strategy exhausted its frontier or stack.
//   - ErrStepLimit:        the WithMaxSteps budget was spent.
//   - ErrOptionViolation:  an option was given an invalid value.
//   - ErrUnknownStrategy:  New or ParseKind was given an unknown strategy.
//
// Every call owns its visited set, frontier and path tree, so strategies may
// run concurrently against one shared Grid.
package search
