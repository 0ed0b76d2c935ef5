package tui

import (
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type vaultChangedMsg struct {
	Path string
}

type watcherErrMsg struct {
	Err error
}

// vaultWatcher surfaces filesystem changes under the notes directory as
// bubbletea messages so the UI can refresh when notes change on disk.
type vaultWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

func newVaultWatcher(dir string) (*vaultWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &vaultWatcher{watcher: w, done: make(chan struct{})}, nil
}

// wait blocks until a markdown file changes, then emits a message. The caller
// re-issues the command after handling each message.
func (w *vaultWatcher) wait() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !isRelevant(event) {
					continue
				}
				return vaultChangedMsg{Path: event.Name}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return watcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *vaultWatcher) close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".md")
}
