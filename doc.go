// Package joux searches for three-way XOR collisions among large unordered
// lists of 64-bit fingerprints.
//
// A task is identified by a coordinate pair (i, j). It joins the list L0 of
// index i with the list L1 of index j and reports every triple (x, y, z) with
// x ^ y ^ z == 0 where z belongs to the third list i^j. The third list is not
// given directly: it is represented by a sequence of slices, randomized linear
// filters produced ahead of time.
//
// # Quick Start
//
//	seq, _ := slicefile.Parse(sliceBytes)
//	res, err := joux.RunTask(ctx, joux.Task{
//	    Index:  joux.NewTaskIndex(i, j),
//	    L0:     l0,
//	    L1:     l1,
//	    Slices: seq,
//	})
//	for _, s := range res.Solutions() {
//	    fmt.Println(s)
//	}
//
// # How a Slice Is Processed
//
// A slice carries an invertible matrix M, its inverse, a bit-width l and the
// projected candidate set CM, whose entries all start with l zero bits. For
// every slice:
//
//  1. Both lists are projected by M (table-driven GF(2) products).
//  2. Each projected list is scattered into 2^p buckets by its top p bits.
//  3. Per bucket, pairs (x, y) whose XOR starts with l zero bits are found with
//     a small hash join instead of a pairwise scan.
//  4. Each candidate z = x ^ y is looked up in CM. Hits are mapped back to the
//     original fingerprints with the inverse matrix.
//
// Only pairs that agree on the top l bits after projection are ever compared,
// so the cost per slice is linear in the list sizes plus the candidate volume.
// The results are exact relative to the supplied slices: any triple whose z is
// accepted by some slice is found.
//
// # Tuning
//
// Worker counts per phase, the partitioning depth p and the hash table sizes
// live in Config:
//
//	cfg := joux.DefaultConfig()
//	cfg.SubjoinWorkers = 8
//	res, err := joux.RunTask(ctx, task, joux.WithConfig(cfg), joux.WithLogger(joux.NewTextLogger(slog.LevelDebug)))
//
// A slice with l - p below Config.WeakFilterBits still gives correct results
// but produces many candidates; RunTask logs a warning for it.
package joux
