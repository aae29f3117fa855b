package formmodel

import (
	"reflect"
	"sort"
	"time"
)

// Observer receives change notifications from a Model.
type Observer interface {
	ModelChanged(m *Model, key string)
}

// ObserverFunc adapts a function into an Observer. Function observers are
// not comparable, so each Subscribe call registers a new entry.
type ObserverFunc func(m *Model, key string)

// ModelChanged calls fn.
func (fn ObserverFunc) ModelChanged(m *Model, key string) {
	fn(m, key)
}

type subscription struct {
	id       uint64
	observer Observer
}

// Model is the flat name→value store for one form instance.
type Model struct {
	data   map[string]Value
	subs   []subscription
	nextID uint64
}

// New returns an empty model.
func New() *Model {
	return &Model{data: make(map[string]Value)}
}

// Get returns the stored value and whether the key was ever written.
func (m *Model) Get(key string) (Value, bool) {
	if m == nil {
		return None(), false
	}
	v, ok := m.data[key]
	return v, ok
}

// GetOr returns the stored value, or def when the key is absent.
func (m *Model) GetOr(key string, def Value) Value {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// String returns the text stored under key, or def when absent or not a
// String.
func (m *Model) String(key, def string) string {
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

// Index returns the index stored under key, or def when absent or not an
// Index.
func (m *Model) Index(key string, def int) int {
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	if i, ok := v.Idx(); ok {
		return i
	}
	return def
}

// Moment returns the instant stored under key when it holds a Date or Time.
func (m *Model) Moment(key string) (time.Time, bool) {
	v, ok := m.Get(key)
	if !ok {
		return time.Time{}, false
	}
	return v.Moment()
}

// Set stores value under key and notifies subscribers, unless value equals
// what is already stored. An absent key compares as None.
func (m *Model) Set(key string, value Value) *Model {
	old, ok := m.data[key]
	if !ok {
		old = None()
	}
	if old.Equal(value) {
		return m
	}
	if m.data == nil {
		m.data = make(map[string]Value)
	}
	m.data[key] = value
	m.notify(key)
	return m
}

// Subscribe registers o and returns a function that removes it. Subscribing
// an observer that is already registered keeps the original registration.
// The returned function is safe to call more than once.
func (m *Model) Subscribe(o Observer) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}
	for _, sub := range m.subs {
		if sameObserver(sub.observer, o) {
			return m.unsubscriber(sub.id)
		}
	}
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, observer: o})
	return m.unsubscriber(id)
}

// Unsubscribe removes o by identity. Unknown observers are ignored.
func (m *Model) Unsubscribe(o Observer) {
	for _, sub := range m.subs {
		if sameObserver(sub.observer, o) {
			m.remove(sub.id)
			return
		}
	}
}

// Observers reports the number of registered observers.
func (m *Model) Observers() int {
	return len(m.subs)
}

// Keys returns the written keys in sorted order.
func (m *Model) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies the stored values.
func (m *Model) Snapshot() map[string]Value {
	out := make(map[string]Value, len(m.data))
	for key, value := range m.data {
		out[key] = value
	}
	return out
}

func (m *Model) unsubscriber(id uint64) func() {
	return func() { m.remove(id) }
}

func (m *Model) remove(id uint64) {
	for i, sub := range m.subs {
		if sub.id == id {
			m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
			return
		}
	}
}

func (m *Model) notify(key string) {
	if len(m.subs) == 0 {
		return
	}
	snapshot := append([]subscription(nil), m.subs...)
	for _, sub := range snapshot {
		if !m.registered(sub.id) {
			continue
		}
		sub.observer.ModelChanged(m, key)
	}
}

func (m *Model) registered(id uint64) bool {
	for _, sub := range m.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

func sameObserver(a, b Observer) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	// a struct observer may still hold a func in an interface field
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
