package scoring

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage defines the interface for loading and saving session history.
// This allows for mocking the storage layer during tests.
type Storage interface {
	// LoadAll loads all history entries from the persistence layer.
	LoadAll() ([]HistoryEntry, error)
	// SaveAll saves a slice of entries to the persistence layer, overwriting existing data.
	SaveAll(entries []HistoryEntry) error
}

// DefaultPath is where history is kept when no path is configured.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-unscramble", "history.json"), nil
}

// Open picks a storage backend by file extension: .db, .sqlite and .sqlite3
// use SQLite, anything else a JSON lines file.
func Open(path string) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStorage(path)
	}
	return NewJSONFileStorage(path), nil
}

// JSONFileStorage stores one JSON object per line.
type JSONFileStorage struct {
	path string
}

func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{path: path}
}

// LoadAll reads and decodes all entries from the JSON file.
func (jfs *JSONFileStorage) LoadAll() ([]HistoryEntry, error) {
	file, err := os.Open(jfs.path)
	// If the file doesn't exist, it's not an error; return an empty slice.
	if os.IsNotExist(err) {
		return []HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening history file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]HistoryEntry, 0)
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry HistoryEntry
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding JSON entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll encodes and writes all entries to the JSON file.
func (jfs *JSONFileStorage) SaveAll(entries []HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(jfs.path), 0755); err != nil {
		return fmt.Errorf("error creating history directory: %w", err)
	}

	file, err := os.OpenFile(jfs.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening history file for writing: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("error encoding JSON entry: %w", err)
		}
	}

	return writer.Flush()
}
