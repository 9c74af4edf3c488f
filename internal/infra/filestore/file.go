package filestore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// loadJSON reads the document at path into v. A missing file is not an
// error: the caller starts empty. Corrupt content is treated the same
// way, logged at warn level.
func loadJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read store file, starting empty", "path", path, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("corrupt store file, starting empty", "path", path, "error", err)
		return false
	}
	return true
}

// flushJSON rewrites the document in full, through a temp file and rename
// so readers never observe a partial write. Failures are logged rather
// than returned: the in-memory state stays authoritative for the
// lifetime of the process.
func flushJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("failed to encode store file", "path", path, "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Error("failed to create storage directory", "path", path, "error", err)
		return
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		slog.Error("failed to write store file", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		slog.Error("failed to replace store file", "path", path, "error", err)
	}
}
