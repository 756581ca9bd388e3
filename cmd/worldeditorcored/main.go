// Command worldeditorcored wires the editor core subsystems together
// in the dependency order spec §2 describes: a FileWatcher feeds two
// AssetLibrary caches (ODF definitions and meshes), which back an
// ObjectClassLibrary, which objects placed in a World reference
// through EditContext and the Edit stack.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/worldforge/editorcore/internal/asset"
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/editorconfig"
	"github.com/worldforge/editorcore/internal/editorlog"
	"github.com/worldforge/editorcore/internal/edit"
	"github.com/worldforge/editorcore/internal/filewatcher"
	"github.com/worldforge/editorcore/internal/objectclass"
	"github.com/worldforge/editorcore/internal/world"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the editor's TOML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		return 1
	}

	logger := editorlog.New(editorlog.Config{
		Level: editorlog.ParseLevel(cfg.Log.Level),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := world.New(256, 256)
	editCtx := editctx.New(w)
	stack := edit.NewEditStack(cfg.EditStack.MaxHistoryEntries)

	pool := asset.NewLoadPool(cfg.AssetLibrary.WorkerCount, cfg.AssetLibrary.QueueSize)
	pool.Start()
	defer pool.Stop(5 * time.Second)

	odfLib := asset.NewLibrary[objectclass.Definition](objectclass.DefaultOdfLoader, pool,
		asset.WithLogger[objectclass.Definition](logger.WithComponent("asset.odf")))
	meshLib := asset.NewLibrary[objectclass.Mesh](objectclass.DefaultMeshLoader, pool,
		asset.WithLogger[objectclass.Mesh](logger.WithComponent("asset.mesh")))

	classLib := objectclass.NewLibrary(odfLib, meshLib, objectclass.WithMaxRefCount(cfg.ObjectClass.MaxRefCount))

	watcher, err := filewatcher.New(ctx, cfg.FileWatcher.Root, filewatcher.Config{
		BufferSize:     cfg.FileWatcher.BufferSize,
		IgnorePatterns: cfg.FileWatcher.IgnorePatterns,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to start file watcher on %s: %v\n", cfg.FileWatcher.Root, err)
		return 1
	}
	defer watcher.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	logger.Info("worldeditorcored started", map[string]any{
		"assets_root":         cfg.FileWatcher.Root,
		"max_history_entries": cfg.EditStack.MaxHistoryEntries,
		"objects":             len(editCtx.World.Objects),
	})
	_ = stack // held open for the edit-producing layer (input handling, §1 Non-goals) to drive

	for {
		select {
		case <-signals:
			logger.Info("shutting down", nil)
			return 0
		case ev, ok := <-watcher.Events():
			if !ok {
				return 0
			}
			routeAssetEvent(ev, odfLib, meshLib, logger)
		case <-ticker.C:
			classLib.Update()
			if watcher.UnknownChangesOverflowed() {
				logger.Warn("file watcher overflowed, asset libraries may be stale", nil)
			}
		}
	}
}

func loadConfig(path string) (editorconfig.Config, error) {
	if path == "" {
		return editorconfig.Default(), nil
	}
	return editorconfig.Load(path)
}

func routeAssetEvent(ev filewatcher.Event, odfLib *asset.Library[objectclass.Definition], meshLib *asset.Library[objectclass.Mesh], logger *editorlog.Logger) {
	ext := strings.ToLower(filepath.Ext(ev.Path))

	switch {
	case ev.Op&filewatcher.OpRemove != 0:
		switch ext {
		case ".odf":
			odfLib.Remove(ev.Path)
		case ".msh":
			meshLib.Remove(ev.Path)
		}
	default:
		switch ext {
		case ".odf":
			odfLib.Add(ev.Path)
		case ".msh":
			meshLib.Add(ev.Path)
		default:
			logger.Debug("ignoring unrecognized asset extension", map[string]any{"path": ev.Path})
		}
	}
}
