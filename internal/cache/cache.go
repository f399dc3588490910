// Package cache persists a parsed file's token stream, tree and
// diagnostics on disk, keyed by the file's own content hash, so a
// repeated `wave check` run over an unchanged file can skip re-lexing
// and re-parsing it entirely. Adapted from the teacher's
// internal/driver/dcache.go module cache: same on-disk shape (a
// schema-versioned msgpack record under a content-addressed path,
// written to a temp file and renamed in place), aimed at a
// LexedSrc+Tree pair instead of a module's semantic metadata.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"wave/internal/ast"
	"wave/internal/diag"
	"wave/internal/lexer"
	"wave/internal/source"
	"wave/internal/token"
)

// schemaVersion guards against decoding a record written by an
// incompatible future layout; bump it whenever Entry's shape changes.
const schemaVersion uint16 = 1

// Digest is a file's content hash, the cache key.
type Digest [sha256.Size]byte

// Hash computes the Digest of content.
func Hash(content []byte) Digest {
	return sha256.Sum256(content)
}

// Entry is the on-disk record for one cached parse: enough of LexedSrc
// and ast.Tree to reconstruct both without re-running the lexer or
// parser, plus the diagnostics that parse produced.
type Entry struct {
	Schema uint16

	TokenKind  []token.Kind
	TokenStart []uint32

	NodeKind  []ast.Kind
	NodeToken []uint32
	DataA     []uint32
	DataB     []uint32
	Extra     []byte
	Decls     []ast.Index

	Diagnostics []diag.Diagnostic
}

// Cache is a directory of msgpack-encoded Entry records, addressed by
// Digest. The zero Cache is not usable; construct one with Open.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "parses", hex.EncodeToString(key[:])+".mp")
}

// Put encodes a parsed file into the cache under key. A nil Cache
// silently does nothing, so callers can pass a cache that failed to
// open without special-casing every call site.
func (c *Cache) Put(key Digest, file source.FileID, toks lexer.LexedSrc, tree *ast.Tree, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := toEntry(toks, tree, bag)

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get looks up key and, on a hit, reconstructs the LexedSrc, Tree and
// diagnostics bag it was cached under. A nil Cache always misses.
func (c *Cache) Get(key Digest, file source.FileID, src []byte) (lexer.LexedSrc, ast.Tree, *diag.Bag, bool, error) {
	if c == nil {
		return lexer.LexedSrc{}, ast.Tree{}, nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return lexer.LexedSrc{}, ast.Tree{}, nil, false, nil
		}
		return lexer.LexedSrc{}, ast.Tree{}, nil, false, err
	}
	defer func() { _ = f.Close() }()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return lexer.LexedSrc{}, ast.Tree{}, nil, false, err
	}
	if entry.Schema != schemaVersion {
		return lexer.LexedSrc{}, ast.Tree{}, nil, false, nil
	}

	toks, tree, bag := fromEntry(entry, file, src)
	return toks, tree, bag, true, nil
}

// DropAll removes every cached entry, for use after a schema change or
// an explicit "wave check --no-cache" style invalidation.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}

func toEntry(toks lexer.LexedSrc, tree *ast.Tree, bag *diag.Bag) Entry {
	dataA := make([]uint32, len(tree.Data))
	dataB := make([]uint32, len(tree.Data))
	for i, d := range tree.Data {
		dataA[i], dataB[i] = d.A, d.B
	}

	var diags []diag.Diagnostic
	if bag != nil {
		diags = bag.Items()
	}

	return Entry{
		Schema:      schemaVersion,
		TokenKind:   toks.Kind,
		TokenStart:  toks.Start,
		NodeKind:    tree.Kind,
		NodeToken:   tree.Token,
		DataA:       dataA,
		DataB:       dataB,
		Extra:       tree.Extra,
		Decls:       tree.Decls,
		Diagnostics: diags,
	}
}

func fromEntry(e Entry, file source.FileID, src []byte) (lexer.LexedSrc, ast.Tree, *diag.Bag) {
	toks := lexer.LexedSrc{File: file, Kind: e.TokenKind, Start: e.TokenStart}

	data := make([]ast.Data, len(e.DataA))
	for i := range data {
		data[i] = ast.Data{A: e.DataA[i], B: e.DataB[i]}
	}
	tree := ast.Tree{
		File:  file,
		Src:   src,
		Toks:  toks,
		Kind:  e.NodeKind,
		Token: e.NodeToken,
		Data:  data,
		Extra: e.Extra,
		Decls: e.Decls,
	}

	bag := diag.NewBag(0)
	for _, d := range e.Diagnostics {
		bag.Add(d)
	}

	return toks, tree, bag
}

// DefaultDir returns the standard cache location, mirroring the
// teacher's XDG_CACHE_HOME-or-home-dir fallback in OpenDiskCache.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve a cache directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}
