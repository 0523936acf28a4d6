package app

import "sync"

const (
	CollectionDrives = "drives"
	CollectionFiles  = "files"
)

// Notifier fans out commit notifications per collection so live views can
// re-pull without polling. Sends never block: a subscriber that has not
// drained its channel simply coalesces pending notifications into one.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]map[int]chan struct{}
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[int]chan struct{})}
}

func (n *Notifier) Subscribe(collection string) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	id := n.next
	n.next++

	if n.subs[collection] == nil {
		n.subs[collection] = make(map[int]chan struct{})
	}
	n.subs[collection][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[collection], id)
	}
	return ch, cancel
}

// Notify wakes all listeners of the given collections. Called only after a
// transaction has committed.
func (n *Notifier) Notify(collections ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, col := range collections {
		for _, ch := range n.subs[col] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}
