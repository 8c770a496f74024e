package gui

import "sync"

// Cleanable is implemented by stores that drop stale entries each frame.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	registryMu       sync.Mutex
	registeredStores []Cleanable
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the global frame counter and drops every FrameStore
// entry that was not touched during the previous frame.
// Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state of one type. Entries live as long as
// the widget keeps being drawn; a widget skipped for a whole frame loses its
// state.
//
// Declare one store per state type at package level:
//
//	var sliderStore = gui.NewFrameStore[SliderState]()
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it for per-frame cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registerStore(store)
	return store
}

// Get returns the state for id, creating it from defaultVal when missing.
// The returned pointer may be modified in place.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// GetIfExists returns the state for id, or nil. It does not mark the entry
// as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Cleanup removes entries not accessed since the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.states {
		if entry.lastFrame+1 < frame {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
