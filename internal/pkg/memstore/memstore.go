// Package memstore - потокобезопасное in-memory хранилище с ключом и блокировкой на ключ.
package memstore

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	updatedAt time.Time
}

// Store - map под мьютексом; хранит время последнего изменения каждой записи
type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]entry[V]
	now   func() time.Time

	locksMu sync.Mutex
	locks   map[K]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		items: make(map[K]entry[V]),
		locks: make(map[K]*keyLock),
		now:   time.Now,
	}
}

// WithClock - подмена часов для тестов
func (s *Store[K, V]) WithClock(now func() time.Time) *Store[K, V] {
	s.now = now
	return s
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[key]
	return e.value, ok
}

// Set - создаёт или перезаписывает запись
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = entry[V]{value: value, updatedAt: s.now()}
}

func (s *Store[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Range - обход снимка записей; fn возвращает false чтобы остановиться
func (s *Store[K, V]) Range(fn func(key K, value V) bool) {
	s.mu.RLock()
	snapshot := make(map[K]V, len(s.items))
	for k, e := range s.items {
		snapshot[k] = e.value
	}
	s.mu.RUnlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// Sweep - удаляет записи, не менявшиеся дольше ttl; возвращает число удалённых
func (s *Store[K, V]) Sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.items {
		if e.updatedAt.Before(cutoff) {
			delete(s.items, k)
			removed++
		}
	}
	return removed
}

// Lock - эксклюзивная блокировка ключа; события одного ключа обрабатываются по очереди.
// Возвращает функцию разблокировки.
func (s *Store[K, V]) Lock(key K) func() {
	s.locksMu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.locksMu.Unlock()
	}
}
