// Package loader reads the inputs of a task from a blobstore.BlobStore.
//
// A task (i, j) needs three files: the fingerprint lists L0 = foo.<i> and
// L1 = bar.<j>, and the slice set <i^j>. Lists are flat arrays of
// little-endian 64-bit words; slice sets use the slicefile layout. Local
// files are memory-mapped and used in place, so a Loaded task must be closed
// once RunTask has returned.
//
//	l := loader.New(blobstore.NewLocalStore("hashes"),
//	    loader.WithSliceStore(blobstore.NewLocalStore("slices")))
//	in, err := l.Load(ctx, 0x12, 0x34)
//	if err != nil { ... }
//	defer in.Close()
//	res, err := joux.RunTask(ctx, in.Task)
package loader
