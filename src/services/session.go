package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/brokertax/src/models"
)

// session is the state owned by one client. Its fields are only touched
// while mu is held.
type session struct {
	mu          sync.Mutex
	report      *models.Report
	fileName    string
	contentHash string
}

type sessionSnapshot struct {
	report      *models.Report
	fileName    string
	contentHash string
}

func (s *session) snapshot() sessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sessionSnapshot{report: s.report, fileName: s.fileName, contentHash: s.contentHash}
}

// replace swaps in a newly imported report as a whole.
func (s *session) replace(report *models.Report, fileName, contentHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
	s.fileName = fileName
	s.contentHash = contentHash
}

// SessionStore keeps sessions in memory and expires idle ones.
type SessionStore struct {
	mu    sync.Mutex
	items *cache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	return &SessionStore{
		items: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (st *SessionStore) get(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	v, found := st.items.Get(id)
	if !found {
		return nil, false
	}
	return v.(*session), true
}

// update runs fn on the session for id, creating it if needed, and restarts
// its expiry. The store lock is held throughout, so a delete of id lands
// either before or after the whole update.
func (st *SessionStore) update(id string, fn func(*session)) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.get(id)
	if !ok {
		sess = &session{}
	}
	fn(sess)
	st.items.Set(id, sess, st.ttl)
}

func (st *SessionStore) delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.items.Delete(id)
}

// Count reports the number of live sessions.
func (st *SessionStore) Count() int {
	return st.items.ItemCount()
}
