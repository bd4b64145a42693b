package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

// FileWatcher reloads the shown document when its file changes on disk.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// documentChangedMsg carries a freshly parsed copy of the watched file.
type documentChangedMsg struct {
	doc *dom.Document
}

type watchErrorMsg struct {
	err error
}

// WatchFile starts watching path. The parent directory is watched rather than
// the file so that editors replacing the file on save are noticed.
func WatchFile(path string) (*FileWatcher, error) {
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
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return &FileWatcher{watcher: watcher, path: abs}, nil
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// next waits for the next write to the watched file and parses it.
func (fw *FileWatcher) next() tea.Cmd {
	if fw == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != fw.path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				doc, err := fw.load()
				if err != nil {
					return watchErrorMsg{err: err}
				}
				return documentChangedMsg{doc: doc}
			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrorMsg{err: err}
			}
		}
	}
}

func (fw *FileWatcher) load() (*dom.Document, error) {
	f, err := os.Open(fw.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fw.path, err)
	}
	logging.Debug(subsystem, "reloaded %s", fw.path)
	return doc, nil
}
