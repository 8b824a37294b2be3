package grid

import (
	"context"
	"errors"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/joux/blobstore"
)

// Progress is the set of finished tasks. It is safe for concurrent use.
type Progress struct {
	mu sync.RWMutex
	rb *roaring.Bitmap
}

// NewProgress returns an empty set.
func NewProgress() *Progress {
	return &Progress{rb: roaring.New()}
}

// Done reports whether t has finished.
func (p *Progress) Done(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rb.Contains(t.Key())
}

// Mark records t as finished.
func (p *Progress) Mark(t Task) error {
	if err := t.validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rb.Add(t.Key())
	return nil
}

// Len returns the number of finished tasks.
func (p *Progress) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return int(p.rb.GetCardinality())
}

// Tasks returns the finished tasks in key order.
func (p *Progress) Tasks() []Task {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Task, 0, p.rb.GetCardinality())
	it := p.rb.Iterator()
	for it.HasNext() {
		out = append(out, TaskFromKey(it.Next()))
	}
	return out
}

// MarshalBinary encodes the set in the portable roaring format.
func (p *Progress) MarshalBinary() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rb.RunOptimize()
	return p.rb.ToBytes()
}

// UnmarshalBinary replaces the set with data.
func (p *Progress) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if len(data) > 0 {
		if err := rb.UnmarshalBinary(data); err != nil {
			return err
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rb = rb
	return nil
}

// Save writes the set to name in store.
func (p *Progress) Save(ctx context.Context, store blobstore.BlobStore, name string) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// LoadProgress reads the set saved under name. A missing blob yields an
// empty set.
func LoadProgress(ctx context.Context, store blobstore.BlobStore, name string) (*Progress, error) {
	p := NewProgress()
	b, err := store.Open(ctx, name)
	if errors.Is(err, blobstore.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := blobstore.ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return p, nil
}
