package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/notiz/internal/pathutil"
	"github.com/Paintersrp/notiz/internal/storage"
)

// EventKind classifies a filesystem change for consumers.
type EventKind string

const (
	EventAdd    EventKind = "add"
	EventChange EventKind = "change"
	EventUnlink EventKind = "unlink"
)

type NoteChangedMsg struct {
	Kind EventKind
	Path string
}

type WatcherErrMsg struct {
	Err error
}

// WorkspaceWatcher watches the workspace root recursively and surfaces note
// file changes as bubbletea messages. Directories created while watching are
// added to the watch set; dot-prefixed entries are ignored.
type WorkspaceWatcher struct {
	watcher   *fsnotify.Watcher
	workspace string
	done      chan struct{}
	once      sync.Once
	mu        sync.Mutex
	onChange  func(EventKind, string)
	onClose   func()
}

func NewWorkspaceWatcher(workspace string) (*WorkspaceWatcher, error) {
	normalized := pathutil.NormalizePath(workspace)
	if normalized == "" {
		return nil, errors.New("workspace directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &WorkspaceWatcher{
		watcher:   w,
		workspace: normalized,
		done:      make(chan struct{}),
	}

	if err := watcher.addRecursive(normalized); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// Start returns a command that blocks until the next relevant event and
// delivers it as a message. The caller re-issues the command after handling
// each message to keep the subscription alive.
func (w *WorkspaceWatcher) Start() tea.Cmd {
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

				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
						continue
					}
				}

				kind, ok := eventKind(event)
				if !ok {
					continue
				}

				rel, err := w.relativePath(event.Name)
				if err != nil || rel == "" {
					continue
				}
				if !strings.EqualFold(filepath.Ext(rel), storage.NoteExt) {
					continue
				}

				if fn := w.changeCallback(); fn != nil {
					fn(kind, rel)
				}

				return NoteChangedMsg{Kind: kind, Path: rel}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *WorkspaceWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}

// OnChange registers a callback that receives each relevant event alongside
// the message delivery.
func (w *WorkspaceWatcher) OnChange(fn func(EventKind, string)) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// OnClose registers a callback that is invoked exactly once when the watcher
// shuts down.
func (w *WorkspaceWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

func (w *WorkspaceWatcher) changeCallback() func(EventKind, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onChange
}

func (w *WorkspaceWatcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != normalized {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

func eventKind(event fsnotify.Event) (EventKind, bool) {
	switch {
	case event.Op&fsnotify.Create != 0:
		return EventAdd, true
	case event.Op&fsnotify.Write != 0:
		return EventChange, true
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return EventUnlink, true
	}
	return "", false
}

func (w *WorkspaceWatcher) relativePath(path string) (string, error) {
	normalized := pathutil.NormalizePath(path)
	rel, err := pathutil.RootRelative(w.workspace, normalized)
	if err != nil {
		return "", err
	}

	if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return "", nil
	}
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return "", nil
		}
	}

	return rel, nil
}
