package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/util"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

const fileMode os.FileMode = 0644

// FileStore persists a Store as a JSON object keyed by record key.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

// Load reads the store file. Entries keep the order in which they appear in
// the document.
func (f *FileStore) Load(ctx context.Context) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, srvErrors.NewStoreError("load", f.path, err)
	}

	s, err := decode(data)
	if err != nil {
		return nil, srvErrors.NewStoreError("load", f.path, err)
	}
	return s, nil
}

// Save replaces the store file atomically and returns the number of bytes
// written. Keys are written in ascending order with a four space indent and
// text is not HTML-escaped.
func (f *FileStore) Save(ctx context.Context, s *Store) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	doc := make(map[string]models.Record, s.Len())
	for k, r := range s.All() {
		doc[k] = r
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return 0, srvErrors.NewStoreError("save", f.path, err)
	}
	data := buf.Bytes()

	if err := util.WriteFileAtomic(f.path, data, fileMode); err != nil {
		return 0, srvErrors.NewStoreError("save", f.path, err)
	}
	return int64(len(data)), nil
}

// SaveRaw atomically writes an unparsed source payload to path.
func SaveRaw(path string, payload []byte) error {
	if err := util.WriteFileAtomic(path, payload, fileMode); err != nil {
		return srvErrors.NewStoreError("save raw", path, err)
	}
	return nil
}

func decode(data []byte) (*Store, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("document is not a JSON object")
	}

	s := NewStore()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var r models.Record
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decoding record %q: %w", key, err)
		}
		if err := s.Insert(key, r); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading document end: %w", err)
	}
	return s, nil
}
