package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	"routefinder.dev/pkg/routefinder/internal/domain"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-index routes manifests whenever one is written",
		Long: `Watch every directory of the project except the excluded build,
dependency and VCS trees. New directories are watched as they appear.
Whenever a manifest is created, written, renamed or removed the manifest
index is rebuilt and the new candidate set is reported. Stop with Ctrl-C.

` + rootsHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			root, ok := locator.ProjectRoot()
			if !ok {
				return fmt.Errorf("watch: %w", domain.ErrNoProjectRoot)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer func() { _ = watcher.Close() }()

			config := locatorConfigFromConfig()

			dirs := watchTree(watcher, watchDirs(root, config.Exclude))
			ui.DisplayEvent(ctx, "watching %d director(ies) under %s", len(dirs), root)
			ui.DisplayEvent(ctx, "%d manifest(s) indexed", len(locator.LocateManifests()))

			reindex := func(op fsnotify.Op, name string) {
				manifests := locator.LocateManifests()
				ui.DisplayEvent(ctx, "%s %s: %d manifest(s) indexed", op, name, len(manifests))
			}

			onDir := newDirHandler(watcher, root, config, func(name string) {
				reindex(fsnotify.Create, name)
			})

			return watchManifests(ctx, watcher.Events, watcher.Errors, config.FileName, onDir, func(event fsnotify.Event) {
				reindex(event.Op, event.Name)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// dirWatcher is the part of fsnotify.Watcher used to register directories.
type dirWatcher interface {
	Add(name string) error
}

// watchDirs returns dir and every non-excluded directory below it. fsnotify
// watches are not recursive, so each one needs its own watch.
func watchDirs(dir m.Path, exclude []string) []m.Path {
	dirs, err := fsAdapter.ListDirs(dir, exclude)
	if err != nil {
		slog.Warn("cannot list directories", "dir", dir, "error", err)
		return []m.Path{dir}
	}

	return dirs
}

// watchTree adds a watch for each dir and returns the ones that were added.
func watchTree(watcher dirWatcher, dirs []m.Path) []m.Path {
	added := make([]m.Path, 0, len(dirs))

	for _, dir := range dirs {
		if err := watcher.Add(string(dir)); err != nil {
			slog.Warn("cannot watch directory", "dir", dir, "error", err)
			continue
		}

		added = append(added, dir)
	}

	return added
}

// newDirHandler returns the callback for created paths: a new non-excluded
// directory is watched with its subtree, and onManifest is called when a
// manifest already sits below it, since files written before the watch was
// added raise no event.
func newDirHandler(watcher dirWatcher, root m.Path, config domain.LocatorConfig, onManifest func(name string)) func(string) {
	return func(name string) {
		dir := m.Path(name)
		if info, err := fsAdapter.FileInfo(dir); err != nil || !info.IsDir() {
			return
		}

		if adapter.DirExcluded(root, dir, config.Exclude) {
			return
		}

		added := watchTree(watcher, watchDirs(dir, config.Exclude))
		slog.Debug("watching new directories", "dir", dir, "count", len(added))

		found, err := fsAdapter.ListFilesMatching(dir, "**/"+config.FileName, config.Exclude, 1)
		if err == nil && len(found) > 0 {
			onManifest(string(found[0]))
		}
	}
}

// watchManifests calls onChange for every event on a file named fileName
// until ctx is done or the event channel closes. Every created path is passed
// to onDir first, when set. Watcher errors are logged.
func watchManifests(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	fileName string,
	onDir func(name string),
	onChange func(fsnotify.Event),
) error {
	relevant := fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			if onDir != nil && event.Op&fsnotify.Create != 0 {
				onDir(event.Name)
			}

			if filepath.Base(event.Name) != fileName || event.Op&relevant == 0 {
				continue
			}

			slog.Debug("manifest changed", "path", event.Name, "op", event.Op)
			onChange(event)
		case err, ok := <-errs:
			if !ok {
				return nil
			}

			slog.Warn("watcher error", "error", err)
		}
	}
}
