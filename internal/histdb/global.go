package histdb

import (
	"fmt"
	"sync"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// MirrorManager holds the process-wide mirror store instance.
type MirrorManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	mirror       contract.MirrorStore
}

// Get returns the mirror store, or nil when mirroring is disabled.
func (mgr *MirrorManager) Get() contract.MirrorStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.mirror
}

// Global Manager instance for main logic.
var (
	Manager   = &MirrorManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitMirror initializes the global mirror manager.
// With NoneBackend the manager holds a no-op store.
func InitMirror(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		mirror, err := NewMirror(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize history mirror: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.mirror = mirror
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseMirror should be called on application shutdown.
func CloseMirror() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.mirror != nil {
			_ = Manager.mirror.Close()
		}
	})
}
