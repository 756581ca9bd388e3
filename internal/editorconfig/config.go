// Package editorconfig loads the small TOML document controlling the
// editor core's ambient subsystems: edit history depth, the asset
// library's worker pool, the file watcher's root and ignore patterns,
// and the object class library's refcount ceiling.
package editorconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EditStackConfig controls internal/edit.EditStack sizing.
type EditStackConfig struct {
	MaxHistoryEntries int `toml:"max_history_entries"`
}

// AssetLibraryConfig controls internal/asset.LoadPool sizing.
type AssetLibraryConfig struct {
	WorkerCount int `toml:"worker_count"`
	QueueSize   int `toml:"queue_size"`
}

// FileWatcherConfig controls internal/filewatcher.Watcher.
type FileWatcherConfig struct {
	Root           string   `toml:"root"`
	BufferSize     int      `toml:"buffer_size"`
	IgnorePatterns []string `toml:"ignore_patterns"`
}

// ObjectClassConfig controls internal/objectclass.Library.
type ObjectClassConfig struct {
	MaxRefCount uint32 `toml:"max_ref_count"`
}

// LogConfig controls internal/editorlog.Logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the root document.
type Config struct {
	EditStack    EditStackConfig    `toml:"edit_stack"`
	AssetLibrary AssetLibraryConfig `toml:"asset_library"`
	FileWatcher  FileWatcherConfig  `toml:"file_watcher"`
	ObjectClass  ObjectClassConfig  `toml:"object_class"`
	Log          LogConfig          `toml:"log"`
}

// Default returns the baked-in defaults, matching the zero-config
// behavior of asset.NewLoadPool, filewatcher.DefaultConfig and
// objectclass's saturation ceiling. The edit history is capped at 200
// entries, whereas edit.NewEditStack(0) is unbounded.
func Default() Config {
	return Config{
		EditStack: EditStackConfig{MaxHistoryEntries: 200},
		AssetLibrary: AssetLibraryConfig{
			WorkerCount: 4,
			QueueSize:   256,
		},
		FileWatcher: FileWatcherConfig{
			Root:           ".",
			BufferSize:     256,
			IgnorePatterns: []string{".git/", "*.tmp", "*.bak", "*~", ".DS_Store"},
		},
		ObjectClass: ObjectClassConfig{MaxRefCount: 1 << 20},
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads and parses the TOML document at path, starting from
// Default and overriding field-by-field with whatever the document
// sets. A missing file is not an error — it returns Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
