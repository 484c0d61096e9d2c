package compat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"overcast/internal/types"
)

// Current schema version - increment when SnapshotPayload format changes
const snapshotSchemaVersion uint16 = 1

// SnapshotPayload is the serialized form of a table's facts. Codes are
// stored by their stable ordinals, so a payload stays readable as long as
// the Code enum is never renumbered.
type SnapshotPayload struct {
	Schema uint16
	From   []types.TypeID
	To     []types.TypeID
	Codes  []Code
}

// WriteSnapshot serializes every registered fact of the manager.
func (m *Manager) WriteSnapshot(w io.Writer) error {
	payload := SnapshotPayload{Schema: snapshotSchemaVersion}
	m.table.Range(func(from, to types.TypeID, code Code) {
		payload.From = append(payload.From, from)
		payload.To = append(payload.To, to)
		payload.Codes = append(payload.Codes, code)
	})
	if err := msgpack.NewEncoder(w).Encode(&payload); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot registers every fact from a serialized snapshot on top of the
// current table; per pair, the snapshot's code overwrites any earlier one.
func (m *Manager) ReadSnapshot(r io.Reader) error {
	var payload SnapshotPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return fmt.Errorf("snapshot schema %d is not supported", payload.Schema)
	}
	if len(payload.From) != len(payload.To) || len(payload.From) != len(payload.Codes) {
		return fmt.Errorf("snapshot fact columns are misaligned")
	}
	for i := range payload.From {
		m.table.Insert(payload.From[i], payload.To[i], payload.Codes[i])
	}
	return nil
}

// SaveSnapshot writes the snapshot to path, replacing it atomically.
func (m *Manager) SaveSnapshot(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()
	if err := m.WriteSnapshot(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadSnapshot reads facts back from a file written by SaveSnapshot.
func (m *Manager) LoadSnapshot(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return m.ReadSnapshot(f)
}
