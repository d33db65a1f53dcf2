package source

import (
	"fmt"
	"os"
	"sync"
	"time"

	"twopane/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change represents one file event under a watched directory
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors one directory per pane for changes using fsnotify.
// Renames (the toggle) arrive as a Rename/Create pair; consumers treat any
// Change as "re-resolve the listing" rather than interpreting single ops.
type Watcher struct {
	// Directory currently being watched, empty until SetDirectory
	directory string

	// Channel delivering changes to the consumer
	changeChan chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Protects directory and running state
	mutex sync.RWMutex

	running bool
}

// NewWatcher creates a directory watcher using fsnotify
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changeChan: make(chan Change, 16),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
	}, nil
}

// SetDirectory switches the watch to dir, dropping the previous directory.
// Navigating a pane calls this on every directory change.
func (w *Watcher) SetDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.directory == dir {
		return nil
	}
	if w.directory != "" {
		if err := w.fsWatcher.Remove(w.directory); err != nil {
			log.LogWithFields(log.F("directory", w.directory), log.F("error", err)).Warn("could not unwatch directory")
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.directory = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Directory returns the directory currently being watched
func (w *Watcher) Directory() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.directory
}

// Changes returns the channel that delivers change events
func (w *Watcher) Changes() <-chan Change {
	return w.changeChan
}

// Start begins delivering change events
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	w.stopChan = make(chan struct{})

	go func() {
		// The event loop owns the change channel; closing it here rather
		// than in Stop means no send can race the close.
		defer close(w.changeChan)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				// Create, remove, rename and write all invalidate the
				// listing; chmod alone does not change any row.
				if event.Op == fsnotify.Chmod {
					continue
				}

				change := Change{
					Path:      event.Name,
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Send non-blockingly so a slow consumer cannot stall the
				// event loop; a dropped event only delays a re-list.
				select {
				case w.changeChan <- change:
				default:
					log.LogWithFields(log.F("file", event.Name)).Warn("change channel full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts event delivery and releases the underlying watcher
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("error closing fsnotify watcher")
	}

	w.running = false
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
