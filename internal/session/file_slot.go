package session

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileSlot persists the session as a JSON file. Watch uses filesystem
// notifications, so two client instances pointed at the same file stay
// in sync the way browser tabs do over storage events.
type FileSlot struct {
	path string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileSlot) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileSlot) Watch(fn func(data []byte)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors and atomic writers replace the file,
	// which would silently detach a watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		// Ends when Close shuts the watcher and its event channel.
		for event := range watcher.Events {
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			data, err := os.ReadFile(s.path)
			if err != nil {
				fn(nil)
				continue
			}
			fn(data)
		}
	}()
	return nil
}

// Close stops the watcher and its goroutine. Safe to call without a
// prior Watch.
func (s *FileSlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
