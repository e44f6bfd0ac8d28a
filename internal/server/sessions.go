package server

import (
	"container/list"
	"sync"
	"time"

	"github.com/bnema/careerbot/internal/domain"
)

const (
	DefaultMaxSessions = 1000
	DefaultSessionTTL  = 30 * time.Minute
)

// session serializes turns; a conversation is not safe for concurrent use.
type session struct {
	mu   sync.Mutex
	conv *domain.Conversation
}

type sessionEntry struct {
	sess     *session
	lastUsed time.Time
}

// sessionStore keeps live conversations in recency order. Entries idle past
// the TTL are dropped and the least recently used entry goes first once the
// store is full.
type sessionStore struct {
	mu sync.Mutex

	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	lru   *list.List // front=MRU
	index map[string]*list.Element
}

func newSessionStore(maxSessions int, ttl time.Duration, now func() time.Time) *sessionStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}

	return &sessionStore{
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         now,
		lru:         list.New(),
		index:       make(map[string]*list.Element),
	}
}

// add stores conv and returns how many sessions were evicted to make room.
func (st *sessionStore) add(conv *domain.Conversation) int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := st.evictExpiredLocked(now)
	if e := st.index[conv.ID]; e != nil {
		st.lru.Remove(e)
	}
	st.index[conv.ID] = st.lru.PushFront(&sessionEntry{sess: &session{conv: conv}, lastUsed: now})
	evicted += st.evictOverLimitLocked()

	return evicted
}

func (st *sessionStore) get(id string) (*session, bool) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked(now)

	e := st.index[id]
	if e == nil {
		return nil, false
	}
	entry := e.Value.(*sessionEntry)
	entry.lastUsed = now
	st.lru.MoveToFront(e)

	return entry.sess, true
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lru.Len()
}

func (st *sessionStore) evictExpiredLocked(now time.Time) int {
	evicted := 0
	for e := st.lru.Back(); e != nil; {
		prev := e.Prev()
		if now.Sub(e.Value.(*sessionEntry).lastUsed) <= st.ttl {
			break
		}
		st.removeLocked(e)
		evicted++
		e = prev
	}
	return evicted
}

func (st *sessionStore) evictOverLimitLocked() int {
	evicted := 0
	for st.lru.Len() > st.maxSessions {
		st.removeLocked(st.lru.Back())
		evicted++
	}
	return evicted
}

func (st *sessionStore) removeLocked(e *list.Element) {
	delete(st.index, e.Value.(*sessionEntry).sess.conv.ID)
	st.lru.Remove(e)
}
