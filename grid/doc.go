// Package grid enumerates and runs the tasks of a grid.
//
// The full problem is covered by tasks (i, j), each reading lists i and j and
// slice set i^j. FirstN lists the first n tasks of the smallest square grid
// of power-of-two side that holds them, row by row. Progress records which
// tasks are done in a roaring bitmap that can be persisted, so that an
// interrupted Run picks up where it stopped.
package grid
