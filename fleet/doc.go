// Package fleet binds named actors to search strategies and plans their
// routes toward a shared goal.
//
// An Actor owns a position and, once planned, a path. Plan runs the actor's
// strategy from its current position; Advance then steps it one cell along
// the path. A failed plan leaves the actor where it is.
//
// PlanAll plans several actors in parallel on one read-only terrain.Grid.
// Each computation owns its search state, so no locking is involved; the
// only bound is the number of concurrent workers (WithWorkers).
package fleet
