package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func newDiskStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	return store
}

// TestDiskStoreRoundTrip tests put, get, exists and remove.
func TestDiskStoreRoundTrip(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()
	content := []byte("%PDF-1.4 test bytes")

	if err := store.Put(ctx, "a.pdf", bytes.NewReader(content), int64(len(content))); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ok, err := store.Exists(ctx, "a.pdf")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true", ok, err)
	}

	blob, info, err := store.Get(ctx, "a.pdf")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer blob.Close()
	if info.Size != int64(len(content)) {
		t.Fatalf("size = %d, want %d", info.Size, len(content))
	}
	got, err := io.ReadAll(blob)
	if err != nil {
		t.Fatalf("read blob failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("blob bytes differ from stored content")
	}

	if err := store.Remove(ctx, "a.pdf"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.Remove(ctx, "a.pdf"); err != nil {
		t.Fatalf("Remove of absent blob should succeed, got %v", err)
	}
}

// TestDiskStoreOverwrite tests the silent-overwrite collision policy.
func TestDiskStoreOverwrite(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()

	first := []byte("first")
	second := []byte("second version")
	if err := store.Put(ctx, "dup.pdf", bytes.NewReader(first), int64(len(first))); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, "dup.pdf", bytes.NewReader(second), int64(len(second))); err != nil {
		t.Fatalf("overwrite Put failed: %v", err)
	}

	blob, info, err := store.Get(ctx, "dup.pdf")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer blob.Close()
	if info.Size != int64(len(second)) {
		t.Fatalf("size = %d, want %d", info.Size, len(second))
	}
}

// TestDiskStoreMissing tests ErrNotExist on absent blobs.
func TestDiskStoreMissing(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "nope.pdf"); err != ErrNotExist {
		t.Fatalf("Get of absent blob = %v, want ErrNotExist", err)
	}
	ok, err := store.Exists(ctx, "nope.pdf")
	if err != nil || ok {
		t.Fatalf("Exists = %v, %v; want false", ok, err)
	}
}

// TestDiskStoreUnsafeNames tests refusal of traversal names.
func TestDiskStoreUnsafeNames(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "../a.pdf", "a/../b.pdf", "sub/a.pdf", ".."} {
		if err := store.Put(ctx, name, bytes.NewReader([]byte("x")), 1); err == nil {
			t.Fatalf("Put(%q) should fail", name)
		}
		if _, _, err := store.Get(ctx, name); err == nil {
			t.Fatalf("Get(%q) should fail", name)
		}
	}
}
