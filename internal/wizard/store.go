package wizard

import (
	"time"

	"github.com/Ivan200424/Voltyk/internal/pkg/memstore"
)

// Store - сессии мастера по идентификатору пользователя.
// Владелец - диспетчер бота; в Machine передаётся явно.
type Store struct {
	sessions *memstore.Store[string, Session]
}

func NewStore() *Store {
	return &Store{sessions: memstore.New[string, Session]()}
}

func (s *Store) Get(id string) (Session, bool) { return s.sessions.Get(id) }
func (s *Store) Put(sess Session)              { s.sessions.Set(sess.ID, sess) }
func (s *Store) Delete(id string)              { s.sessions.Delete(id) }
func (s *Store) Len() int                      { return s.sessions.Len() }

// Lock - сериализация событий одного пользователя
func (s *Store) Lock(id string) func() { return s.sessions.Lock(id) }

// Sweep - удаление брошенных сессий старше ttl (ttl <= 0 - ничего не делает)
func (s *Store) Sweep(ttl time.Duration) int { return s.sessions.Sweep(ttl) }
