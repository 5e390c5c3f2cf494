package conflict

import (
	"sync"

	"github.com/iudanet/jubeesync/internal/models"
)

// Listener receives the current pending-conflict list.
type Listener func(conflicts []models.ConflictGroup)

// Bus доставляет подписчикам актуальный список конфликтов.
// У каждого подписчика почтовый ящик на одно значение: новое состояние вытесняет
// недоставленное старое, промежуточные состояния не буферизуются.
type Bus struct {
	subs   map[uint64]*subscriber
	nextID uint64
	mu     sync.Mutex
}

type subscriber struct {
	fn      Listener
	mailbox chan []models.ConflictGroup
	done    chan struct{}
	once    sync.Once
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[uint64]*subscriber),
	}
}

// Subscribe registers fn and returns an idempotent unsubscribe function.
// When initial is not nil it is delivered first.
// Each listener runs on its own goroutine; a delivery already in progress
// when unsubscribe is called is allowed to finish.
func (b *Bus) Subscribe(fn Listener, initial []models.ConflictGroup) func() {
	s := &subscriber{
		fn:      fn,
		mailbox: make(chan []models.ConflictGroup, 1),
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	if initial != nil {
		s.offer(initial)
	}
	b.mu.Unlock()

	go s.run()

	return func() {
		s.once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(s.done)
		})
	}
}

// Publish hands each subscriber its own copy of snapshot. It never blocks on a slow listener.
func (b *Bus) Publish(snapshot []models.ConflictGroup) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		s.offer(cloneGroups(snapshot))
	}
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close unsubscribes everyone.
func (b *Bus) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[uint64]*subscriber)
	b.mu.Unlock()

	for _, s := range subs {
		s.once.Do(func() {
			close(s.done)
		})
	}
}

// offer заменяет недоставленное значение новым. Вызывается под b.mu,
// поэтому отправка после опустошения ящика не блокируется.
func (s *subscriber) offer(snapshot []models.ConflictGroup) {
	select {
	case <-s.mailbox:
	default:
	}
	s.mailbox <- snapshot
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case snapshot := <-s.mailbox:
			select {
			case <-s.done:
				return
			default:
			}
			s.fn(snapshot)
		}
	}
}

func cloneGroups(groups []models.ConflictGroup) []models.ConflictGroup {
	out := make([]models.ConflictGroup, len(groups))
	for i, g := range groups {
		out[i] = cloneGroup(g)
	}
	return out
}
