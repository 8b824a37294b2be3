// Package testutil provides testing utilities for joux.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, random invertible GF(2) matrices and slices, and
// planted instances whose solutions are known in advance.
//
// # Planted Instances
//
//	rng := testutil.NewRNG(seed)
//	inst := rng.Planted(testutil.PlantConfig{N0: 10000, N1: 10000, Slices: 2, PerSlice: 3, L: 24, CMSize: 64})
//	res, _ := joux.RunTask(ctx, joux.Task{L0: inst.L0, L1: inst.L1, Slices: inst.Sequence()})
//	// res holds exactly inst.Planted (up to order)
package testutil
