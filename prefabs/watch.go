package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind says what sort of prefab file changed.
type ChangeKind int

const (
	ChangeRecipe ChangeKind = iota
	ChangeConfig
)

// Change is one file edit seen by a Watcher.
type Change struct {
	Path string
	Kind ChangeKind
	// Removed is set when the file was deleted or renamed away.
	Removed bool
}

// Name is the recipe name of a recipe change: the base name without
// extension.
func (c Change) Name() string {
	return strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
}

// Watcher reports recipe and world config edits under a set of directories.
// Bursts of events for the same file inside the debounce window collapse
// into one.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once it has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classify(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := seen[change.Path]; ok && now.Sub(t) < debounce {
				continue
			}
			seen[change.Path] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// classify turns an fsnotify event into a Change, dropping chmods and files
// that are neither recipes nor config.
func classify(event fsnotify.Event) (Change, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return Change{}, false
	}
	change := Change{
		Path:    event.Name,
		Removed: event.Op&(fsnotify.Rename|fsnotify.Remove) != 0,
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".json":
		change.Kind = ChangeRecipe
	case ".yaml", ".yml":
		change.Kind = ChangeConfig
	default:
		return Change{}, false
	}
	return change, true
}
