package cache

import (
	"testing"

	"wave/internal/lexer"
	"wave/internal/parser"
	"wave/internal/source"
)

func TestPutThenGetRoundTrips(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	src := []byte("hello :: 2 * 1 - 2 * 3")
	file := source.FileID(1)
	tree, bag := parser.Parse(file, src)
	key := Hash(src)

	if err := c.Put(key, file, tree.Toks, &tree, bag); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	gotToks, gotTree, gotBag, ok, err := c.Get(key, file, src)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit")
	}
	if gotToks.NumTokens() != tree.Toks.NumTokens() {
		t.Fatalf("token count mismatch: got %d, want %d", gotToks.NumTokens(), tree.Toks.NumTokens())
	}
	if gotTree.NumNodes() != tree.NumNodes() {
		t.Fatalf("node count mismatch: got %d, want %d", gotTree.NumNodes(), tree.NumNodes())
	}
	if len(gotTree.Decls) != len(tree.Decls) {
		t.Fatalf("decl count mismatch: got %d, want %d", len(gotTree.Decls), len(tree.Decls))
	}
	if gotBag.Len() != bag.Len() {
		t.Fatalf("diagnostic count mismatch: got %d, want %d", gotBag.Len(), bag.Len())
	}
}

func TestGetMissesOnUnknownDigest(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var key Digest
	key[0] = 0xFF
	_, _, _, ok, err := c.Get(key, source.FileID(1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss for a digest never written")
	}
}

func TestNilCacheIsSafeNoOp(t *testing.T) {
	var c *Cache
	if err := c.Put(Digest{}, source.FileID(1), lexer.LexedSrc{}, nil, nil); err != nil {
		t.Fatalf("Put on nil cache should be a no-op, got: %v", err)
	}
	_, _, _, ok, err := c.Get(Digest{}, source.FileID(1), nil)
	if err != nil || ok {
		t.Fatalf("Get on nil cache should always miss cleanly, got ok=%v err=%v", ok, err)
	}
}

func TestDropAllRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	src := []byte("x :: 1")
	tree, bag := parser.Parse(source.FileID(1), src)
	key := Hash(src)
	if err := c.Put(key, source.FileID(1), tree.Toks, &tree, bag); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	_, _, _, ok, err := c.Get(key, source.FileID(1), src)
	if err != nil {
		t.Fatalf("unexpected error after DropAll: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss after DropAll")
	}
}
