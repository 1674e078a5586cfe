package render

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/darkfeline/chronoplot/internal/util"
)

// FileWatcher reports changes to a single file. It watches the parent
// directory so editors that save by renaming a temp file are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
	logger  util.LoggerInterface
}

func NewFileWatcher(path string, logger util.LoggerInterface) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan struct{}, 1),
		logger:  logger,
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			fw.logger.Debug("Input changed", util.F("path", event.Name), util.F("op", event.Op.String()))
			// Coalesce: one pending notification is enough.
			select {
			case fw.events <- struct{}{}:
			default:
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("File monitoring error: " + err.Error())
		}
	}
}

// Events delivers a value after the file changes. It is closed when the
// watcher is closed.
func (fw *FileWatcher) Events() <-chan struct{} {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
