package storage

import (
	"context"
	"testing"
)

func newStore(t *testing.T) *FSStore {
	t.Helper()
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return s
}

func TestSaveReadRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	meta := Metadata{"ModelId": "m-1", "Thumbprint": "ABC"}
	if err := s.Save(ctx, "drop-acme", "scan.png", []byte("payload"), meta); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := s.Read(ctx, "drop-acme", "scan.png")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Read = %q", data)
	}
	got, err := s.GetMetadata(ctx, "drop-acme", "scan.png")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if got["ModelId"] != "m-1" || got["Thumbprint"] != "ABC" {
		t.Errorf("metadata = %v", got)
	}
}

func TestMoveRenameCarriesMetadata(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "drop-acme", "scan.png", []byte("x"), Metadata{"DocumentFormat": "acme"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.MoveRename(ctx, "drop-acme", "scan.png", "recognize-in-image", "acme-scan.png"); err != nil {
		t.Fatalf("MoveRename: %v", err)
	}
	if _, err := s.Read(ctx, "drop-acme", "scan.png"); err == nil {
		t.Error("source blob should be gone after move")
	}
	meta, err := s.GetMetadata(ctx, "recognize-in-image", "acme-scan.png")
	if err != nil {
		t.Fatalf("GetMetadata after move: %v", err)
	}
	if meta["DocumentFormat"] != "acme" {
		t.Errorf("metadata after move = %v", meta)
	}
}

func TestGetMetadataMissingIsEmpty(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "c", "no-meta.json", []byte("{}"), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	meta, err := s.GetMetadata(ctx, "c", "no-meta.json")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("metadata = %v, want empty", meta)
	}
}

func TestListHidesSidecars(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "c", "b.json", []byte("1"), Metadata{"k": "v"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "c", "a.json", []byte("2"), nil); err != nil {
		t.Fatal(err)
	}
	names, err := s.List(ctx, "c")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a.json" || names[1] != "b.json" {
		t.Errorf("List = %v", names)
	}

	names, err = s.List(ctx, "missing-container")
	if err != nil || names != nil {
		t.Errorf("List missing container = %v, %v", names, err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "c", "x", []byte("1"), Metadata{"k": "v"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "c", "x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "c", "x"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestThumbprint(t *testing.T) {
	// fixed MD5 vector, uppercase hex
	if got := Thumbprint([]byte("abc")); got != "900150983CD24FB0D6963F7D28E17F72" {
		t.Errorf("Thumbprint = %q", got)
	}
	if a, b := Thumbprint([]byte("abc")), Thumbprint([]byte("abd")); a == b {
		t.Error("distinct content should yield distinct thumbprints")
	}
}
