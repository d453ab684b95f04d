package settings

import "github.com/automoto/doomerang-settings/tags"

// ChangeType says what happened to the menu.
type ChangeType int

const (
	// ChangeSet: a value was set.
	ChangeSet ChangeType = iota
	// ChangeMembers: combobox members were replaced.
	ChangeMembers
	// ChangePressed: a button was pressed.
	ChangePressed
	// ChangeToggled: the menu was opened or closed.
	ChangeToggled
	// ChangeRebuilt: the registry was rebuilt from the tables.
	ChangeRebuilt
)

func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeMembers:
		return "members"
	case ChangePressed:
		return "pressed"
	case ChangeToggled:
		return "toggled"
	case ChangeRebuilt:
		return "rebuilt"
	}
	return "unknown"
}

// Change describes one menu event. Tag is None for menu-wide events.
type Change struct {
	Type ChangeType
	Tag  tags.Tag
	Open bool
}

// Observer receives menu changes.
type Observer func(Change)

// Subscription is a registered observer.
type Subscription struct {
	menu *Menu
	id   uint64
}

// Unsubscribe stops delivery. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.menu == nil {
		return
	}
	s.menu.unsubscribe(s.id)
	s.menu = nil
}

type observerEntry struct {
	id uint64
	fn Observer
}

// Subscribe registers fn for every change of the menu.
func (m *Menu) Subscribe(fn Observer) *Subscription {
	m.nextObserver++
	m.observers = append(m.observers, observerEntry{id: m.nextObserver, fn: fn})
	return &Subscription{menu: m, id: m.nextObserver}
}

func (m *Menu) unsubscribe(id uint64) {
	for i, o := range m.observers {
		if o.id == id {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Menu) notify(c Change) {
	for _, o := range append([]observerEntry(nil), m.observers...) {
		o.fn(c)
	}
}
