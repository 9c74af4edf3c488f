package filestore

import (
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"classreserve/internal/domain/classroom"
)

type classroomRecord struct {
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity"`
	Equipment map[string]bool `json:"equipment"`
}

type classroomsDocument struct {
	Classrooms map[string]classroomRecord `json:"classrooms"`
	NextID     int64                      `json:"next_id"`
}

// ClassroomStore holds the classroom catalog the reservation core
// consults for existence checks. Same single-mutex, full-rewrite
// discipline as the reservation store.
type ClassroomStore struct {
	mu         sync.Mutex
	path       string
	classrooms map[int64]*classroom.Classroom
	nextID     int64
}

func NewClassroomStore(path string) *ClassroomStore {
	s := &ClassroomStore{
		path:       path,
		classrooms: make(map[int64]*classroom.Classroom),
		nextID:     1,
	}
	s.load()
	return s
}

func (s *ClassroomStore) load() {
	var doc classroomsDocument
	if !loadJSON(s.path, &doc) {
		return
	}
	if doc.NextID >= 1 {
		s.nextID = doc.NextID
	}
	for key, rec := range doc.Classrooms {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			slog.Warn("skipping classroom with non-numeric id", "key", key)
			continue
		}
		room, err := classroom.NewClassroom(id, rec.Name, rec.Location, rec.Capacity, rec.Equipment)
		if err != nil {
			slog.Warn("skipping unreadable classroom", "id", id, "error", err)
			continue
		}
		s.classrooms[id] = room
	}
}

func (s *ClassroomStore) flushLocked() {
	doc := classroomsDocument{
		Classrooms: make(map[string]classroomRecord, len(s.classrooms)),
		NextID:     s.nextID,
	}
	for id, c := range s.classrooms {
		doc.Classrooms[strconv.FormatInt(id, 10)] = classroomRecord{
			Name:      c.Name(),
			Location:  c.Location(),
			Capacity:  c.Capacity(),
			Equipment: c.Equipment(),
		}
	}
	flushJSON(s.path, doc)
}

func (s *ClassroomStore) Create(name, location string, capacity int, equipment map[string]bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := classroom.NewClassroom(s.nextID, name, location, capacity, equipment)
	if err != nil {
		return 0, err
	}

	id := s.nextID
	s.nextID++
	s.classrooms[id] = room
	s.flushLocked()
	return id, nil
}

func (s *ClassroomStore) Get(id int64) (*classroom.Classroom, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.classrooms[id]
	return room, ok
}

func (s *ClassroomStore) Exists(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.classrooms[id]
	return ok
}

// All returns the catalog sorted by id for stable listings.
func (s *ClassroomStore) All() []*classroom.Classroom {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*classroom.Classroom, 0, len(s.classrooms))
	for _, c := range s.classrooms {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *ClassroomStore) Update(id int64, name, location string, capacity int, equipment map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classrooms[id]; !ok {
		return classroom.ErrNotFound
	}

	room, err := classroom.NewClassroom(id, name, location, capacity, equipment)
	if err != nil {
		return err
	}

	s.classrooms[id] = room
	s.flushLocked()
	return nil
}

func (s *ClassroomStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classrooms[id]; !ok {
		return false
	}
	delete(s.classrooms, id)
	s.flushLocked()
	return true
}
