package filestore

import (
	"log/slog"
	"sync"

	"classreserve/internal/domain/user"
)

type userRecord struct {
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// The users document is a flat map keyed by user id; there is no
// counter because the login name is the key.
type usersDocument map[string]userRecord

type UserStore struct {
	mu    sync.Mutex
	path  string
	users map[string]*user.User
}

func NewUserStore(path string) *UserStore {
	s := &UserStore{
		path:  path,
		users: make(map[string]*user.User),
	}
	s.load()
	return s
}

func (s *UserStore) load() {
	var doc usersDocument
	if !loadJSON(s.path, &doc) {
		return
	}
	for key, rec := range doc {
		id, err := user.NewUserID(key)
		if err != nil {
			slog.Warn("skipping user with invalid id", "user_id", key)
			continue
		}
		role, err := user.NewRole(rec.Role)
		if err != nil {
			slog.Warn("skipping user with invalid role", "user_id", key, "role", rec.Role)
			continue
		}
		s.users[key] = user.NewUser(id, rec.PasswordHash, role)
	}
}

func (s *UserStore) flushLocked() {
	doc := make(usersDocument, len(s.users))
	for id, u := range s.users {
		doc[id] = userRecord{
			PasswordHash: u.PasswordHash(),
			Role:         u.Role().String(),
		}
	}
	flushJSON(s.path, doc)
}

// Register inserts a new account; the id must be unused.
func (s *UserStore) Register(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := u.ID().Value()
	if _, ok := s.users[id]; ok {
		return user.ErrAlreadyExists
	}

	s.users[id] = u
	s.flushLocked()
	return nil
}

func (s *UserStore) Get(id string) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}
