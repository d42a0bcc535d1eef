package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// snapshotFile mirrors the on-disk catalog layout produced by the upstream
// conversion script: {"universities": [...]}.
type snapshotFile struct {
	Universities []University `json:"universities"`
}

// ParseSnapshot decodes a catalog snapshot from JSON. Records without a
// usable name ("", "nan") are dropped at load time so the engine never sees
// them. The snapshot is read-only after this point.
func ParseSnapshot(r io.Reader) (Snapshot, error) {
	var file snapshotFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return Snapshot{}, fmt.Errorf("decode catalog: %w", err)
	}
	records := make([]University, 0, len(file.Universities))
	for _, u := range file.Universities {
		name := strings.TrimSpace(u.Name)
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}
		records = append(records, u)
	}
	return Snapshot{Universities: records}, nil
}

// LoadSnapshot reads a catalog snapshot from a JSON file. Lifecycle is owned
// by the caller: load once at startup, refresh by loading a new snapshot.
func LoadSnapshot(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseSnapshot(f)
}
