// Package cache holds whole blobs in memory under a byte budget.
//
// Every task (i, j) reads slice set i^j, so many tasks of a grid share the
// same slice file. LRU keeps recently used blobs and charges their size to
// an optional resource.Controller.
package cache
