package hashpool

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestPool(t *testing.T) *Pool {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	p := New(2, bcrypt.MinCost, zerolog.Nop())
	p.Start(ctx)
	return p
}

func TestPool_HashCompareRoundTrip(t *testing.T) {
	p := newTestPool(t)
	ctx := context.Background()

	hash, err := p.Hash(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" || hash == "" {
		t.Fatalf("expected bcrypt digest, got %q", hash)
	}

	if err := p.Compare(ctx, "alice", hash, "s3cret"); err != nil {
		t.Fatalf("Compare rejected the original password: %v", err)
	}
	if err := p.Compare(ctx, "alice", hash, "wrong"); err != bcrypt.ErrMismatchedHashAndPassword {
		t.Fatalf("expected ErrMismatchedHashAndPassword, got %v", err)
	}
}

func TestPool_SameKeySameWorker(t *testing.T) {
	p := New(4, bcrypt.MinCost, zerolog.Nop())

	if p.shardIndex("alice") != p.shardIndex("alice") {
		t.Fatalf("shardIndex not deterministic")
	}
}

func TestPool_CancelledContext(t *testing.T) {
	p := New(1, bcrypt.MinCost, zerolog.Nop())
	// Workers never started: the submit must give up when ctx is cancelled.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Hash(ctx, "alice", "pw"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
