// Package vfs implements the virtual file store: the single, process-wide
// table of source text that the lexer, parser and diagnostic renderer read
// from. Files are added once and never mutated; reads are safe from any
// number of goroutines as long as no writer is active concurrently.
package vfs

import (
	"crypto/sha256"
	"sync"

	"fortio.org/safecast"

	"wave/internal/source"
)

// Store is a process-wide table of source files, addressed by FileID.
// The zero Store is ready to use. Most callers use the package-level
// functions, which operate on the default store; Store is exposed so
// tests can construct an isolated instance instead of mutating globals.
type Store struct {
	mu    sync.RWMutex
	files []source.File
}

// defaultStore backs the package-level AddFile/FilePath/FileContent/Cleanup
// functions, mirroring the global table the original compiler keeps.
var defaultStore Store

// AddFile registers a file in the default store and returns its FileID.
func AddFile(path string, content []byte) source.FileID {
	return defaultStore.AddFile(path, content)
}

// AddVirtualFile registers in-memory content (no backing disk path) such as
// stdin or a test fixture.
func AddVirtualFile(path string, content []byte) source.FileID {
	return defaultStore.AddVirtualFile(path, content)
}

// FilePath returns the path of the file with the given id.
func FilePath(id source.FileID) (string, bool) {
	return defaultStore.FilePath(id)
}

// FileContent returns the content of the file with the given id.
func FileContent(id source.FileID) ([]byte, bool) {
	return defaultStore.FileContent(id)
}

// File returns a copy of the File metadata for the given id.
func File(id source.FileID) (source.File, bool) {
	return defaultStore.File(id)
}

// Cleanup discards every file registered in the default store. Callers must
// ensure no concurrent reads are in flight.
func Cleanup() {
	defaultStore.Cleanup()
}

// AddFile copies path and content into the store and returns the new file's
// id. Content is normalized (BOM stripped, CRLF folded to LF) before a line
// index is built, matching the normalization the teacher performs while
// loading files from disk.
func (s *Store) AddFile(path string, content []byte) source.FileID {
	return s.addFile(path, content, 0)
}

// AddVirtualFile is like AddFile but marks the resulting file as virtual.
func (s *Store) AddVirtualFile(path string, content []byte) source.FileID {
	return s.addFile(path, content, source.FileVirtual)
}

func (s *Store) addFile(path string, content []byte, flags source.FileFlags) source.FileID {
	content = append([]byte(nil), content...)
	content, hadBOM := source.RemoveBOM(content)
	content, hadCRLF := source.NormalizeCRLF(content)
	if hadBOM {
		flags |= source.FileHadBOM
	}
	if hadCRLF {
		flags |= source.FileNormalizedCRLF
	}

	f := source.File{
		Path:    path,
		Content: content,
		LineIdx: source.BuildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(err)
	}
	f.ID = source.FileID(idx + 1) // 0 stays reserved for "no file"
	s.files = append(s.files, f)
	return f.ID
}

// FilePath returns the path of the file with the given id, or "", false if
// the id has never been registered.
func (s *Store) FilePath(id source.FileID) (string, bool) {
	f, ok := s.File(id)
	if !ok {
		return "", false
	}
	return f.Path, true
}

// FileContent returns the content of the file with the given id, or nil,
// false if the id has never been registered.
func (s *Store) FileContent(id source.FileID) ([]byte, bool) {
	f, ok := s.File(id)
	if !ok {
		return nil, false
	}
	return f.Content, true
}

// File returns a copy of the file metadata for id.
func (s *Store) File(id source.FileID) (source.File, bool) {
	if id == 0 {
		return source.File{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := int(id) - 1
	if i < 0 || i >= len(s.files) {
		return source.File{}, false
	}
	return s.files[i], true
}

// Position resolves a byte offset within id to a 1-based line/column.
func (s *Store) Position(id source.FileID, off uint32) (source.LineCol, bool) {
	f, ok := s.File(id)
	if !ok {
		return source.LineCol{}, false
	}
	return source.ToLineCol(f.LineIdx, off), true
}

// Position resolves a byte offset in the default store.
func Position(id source.FileID, off uint32) (source.LineCol, bool) {
	return defaultStore.Position(id, off)
}

// Cleanup discards every registered file; ids handed out afterwards start
// again from 1.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = nil
}

// Len reports how many files are currently registered.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// Len reports how many files are registered in the default store.
func Len() int {
	return defaultStore.Len()
}
