package formmodel

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type countingObserver struct {
	keys []string
}

func (c *countingObserver) ModelChanged(_ *Model, key string) {
	c.keys = append(c.keys, key)
}

func TestModel_SetIsIdempotent(t *testing.T) {
	m := New()
	obs := &countingObserver{}
	m.Subscribe(obs)

	m.Set("name", String("Alice"))
	m.Set("name", String("Alice"))

	if diff := cmp.Diff([]string{"name"}, obs.keys); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_SetNoneOnAbsentKeyIsSilent(t *testing.T) {
	m := New()
	obs := &countingObserver{}
	m.Subscribe(obs)

	m.Set("note", None())

	if len(obs.keys) != 0 {
		t.Fatalf("expected no notification, got %v", obs.keys)
	}
	if _, ok := m.Get("note"); ok {
		t.Fatalf("expected no-op write to leave key absent")
	}
}

func TestModel_DateEqualityIgnoresLocation(t *testing.T) {
	m := New()
	obs := &countingObserver{}
	m.Subscribe(obs)

	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Set("when", Date(utc))
	m.Set("when", Date(utc.In(time.FixedZone("X", 3600))))

	if len(obs.keys) != 1 {
		t.Fatalf("expected one notification for the same instant, got %d", len(obs.keys))
	}
}

func TestModel_KindChangeNotifies(t *testing.T) {
	m := New()
	obs := &countingObserver{}
	m.Subscribe(obs)

	m.Set("x", Index(0))
	m.Set("x", String(""))

	if len(obs.keys) != 2 {
		t.Fatalf("expected two notifications, got %d", len(obs.keys))
	}
}

func TestModel_SubscribeDedupesByIdentity(t *testing.T) {
	m := New()
	obs := &countingObserver{}
	m.Subscribe(obs)
	m.Subscribe(obs)

	if m.Observers() != 1 {
		t.Fatalf("expected one registration, got %d", m.Observers())
	}

	m.Set("a", String("1"))
	if len(obs.keys) != 1 {
		t.Fatalf("expected a single delivery, got %d", len(obs.keys))
	}
}

type forwardingObserver struct {
	next Observer
}

func (f forwardingObserver) ModelChanged(m *Model, key string) {
	f.next.ModelChanged(m, key)
}

func TestModel_SubscribeStructHoldingFunc(t *testing.T) {
	m := New()
	var calls int
	obs := forwardingObserver{next: ObserverFunc(func(*Model, string) { calls++ })}
	m.Subscribe(obs)
	m.Subscribe(obs)
	m.Unsubscribe(obs)

	if m.Observers() != 2 {
		t.Fatalf("expected 2 registrations, got %d", m.Observers())
	}
	m.Set("a", String("1"))
	if calls != 2 {
		t.Fatalf("expected 2 deliveries, got %d", calls)
	}
}

func TestModel_UnsubscribeDisposer(t *testing.T) {
	m := New()
	var calls int
	stop := m.Subscribe(ObserverFunc(func(*Model, string) { calls++ }))

	m.Set("a", String("1"))
	stop()
	stop()
	m.Set("a", String("2"))

	if calls != 1 {
		t.Fatalf("expected 1 call before unsubscribe, got %d", calls)
	}
	if m.Observers() != 0 {
		t.Fatalf("expected no observers left, got %d", m.Observers())
	}
}

func TestModel_UnsubscribeDuringNotify(t *testing.T) {
	m := New()
	second := &countingObserver{}
	var stopSecond func()
	m.Subscribe(ObserverFunc(func(*Model, string) { stopSecond() }))
	stopSecond = m.Subscribe(second)

	m.Set("a", String("1"))

	if len(second.keys) != 0 {
		t.Fatalf("expected removed observer to be skipped, got %v", second.keys)
	}
}

func TestModel_ObserversRepullValue(t *testing.T) {
	m := New()
	var seen string
	m.Subscribe(ObserverFunc(func(model *Model, key string) {
		seen = model.String(key, "")
	}))

	m.Set("city", String("Lisbon"))

	if seen != "Lisbon" {
		t.Fatalf("expected observer to read Lisbon, got %q", seen)
	}
}

func TestModel_TypedAccessors(t *testing.T) {
	m := New().Set("s", String("x")).Set("i", Index(2))

	if got := m.String("i", "def"); got != "def" {
		t.Fatalf("expected wrong kind to fall back, got %q", got)
	}
	if got := m.Index("i", -1); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	if got := m.Index("missing", 7); got != 7 {
		t.Fatalf("expected default for missing key, got %d", got)
	}
	if _, ok := m.Moment("s"); ok {
		t.Fatalf("expected string to not be a moment")
	}
	if diff := cmp.Diff([]string{"i", "s"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_IsEmpty(t *testing.T) {
	cases := map[string]struct {
		value Value
		want  bool
	}{
		"none":         {None(), true},
		"empty string": {String(""), true},
		"text":         {String("a"), false},
		"index zero":   {Index(0), false},
		"date":         {Date(time.Now()), false},
	}
	for name, tc := range cases {
		if got := tc.value.IsEmpty(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, got)
		}
	}
}

func TestRetainer_ReturnsSameModel(t *testing.T) {
	r := NewRetainer()
	first := r.Model("signup")
	first.Set("name", String("Alice"))

	again := r.Model("signup")
	if again != first {
		t.Fatalf("expected retained model to be reused")
	}
	r.Release("signup")
	if r.Has("signup") {
		t.Fatalf("expected model to be released")
	}
	if fresh := r.Model("signup"); fresh == first {
		t.Fatalf("expected a fresh model after release")
	}
}
