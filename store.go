package khata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store binds a Book to its file on disk. The whole document is written
// after every mutation; there is no partial write.
type Store struct {
	path string
	book *Book
}

// Open loads the book from path. A missing file is not an error: it yields
// an empty book that will be created on the first save.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("book %q does not exist yet, starting empty", path)
		return &Store{path: path, book: NewBook()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	return &Store{path: path, book: book}, nil
}

// Book returns the in-memory book.
func (s *Store) Book() *Book { return s.book }

// Path returns the file the book persists to.
func (s *Store) Path() string { return s.path }

// Save writes the whole book back to its file. A failed write surfaces as
// ErrPersistence; the in-memory book is left as is so the caller can retry.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer f.Close()
	if err := EncodeBook(f, s.book); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Export writes the full document to w, for backups.
func (s *Store) Export(w io.Writer) error {
	return EncodeBook(w, s.book)
}

// BackupName returns the conventional backup file name for a given day,
// e.g. "khata_backup_2026-08-30.json".
func BackupName(on Date) string {
	return fmt.Sprintf("khata_backup_%s.json", on)
}

// Import reads a backup document from r and atomically replaces the whole
// book with it, then persists. A document failing the shape check is
// rejected with ErrSchema and the current book is left untouched.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read import document: %w", err)
	}
	if err := CheckShape(data); err != nil {
		return err
	}
	book, err := DecodeBook(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	s.book = book
	return s.Save()
}
