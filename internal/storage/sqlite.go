package storage

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists section embeddings between runs. It implements
// knowledge.VectorCache.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS embeddings (
		key TEXT PRIMARY KEY,
		vector BLOB NOT NULL
	);`)
	return err
}

// Get returns the cached vectors for the given keys. Missing keys are simply
// absent from the result map.
func (s *SQLiteStore) Get(ctx context.Context, keys []string) (map[string][]float32, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := s.db.QueryContext(ctx, "SELECT key, vector FROM embeddings WHERE key IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]float32)
	for rows.Next() {
		var key string
		var blob []byte
		if err := rows.Scan(&key, &blob); err != nil {
			return nil, err
		}
		vec, err := decodeVector(blob)
		if err != nil {
			continue
		}
		out[key] = vec
	}
	return out, rows.Err()
}

// Put stores the given vectors, replacing any existing entries.
func (s *SQLiteStore) Put(ctx context.Context, vectors map[string][]float32) error {
	if len(vectors) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO embeddings (key, vector) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET vector=excluded.vector
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, vec := range vectors {
		blob, err := encodeVector(vec)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(key, blob); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func encodeVector(vec []float32) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, vec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeVector(blob []byte) ([]float32, error) {
	vec := make([]float32, len(blob)/4)
	if err := binary.Read(bytes.NewReader(blob), binary.LittleEndian, &vec); err != nil {
		return nil, err
	}
	return vec, nil
}
