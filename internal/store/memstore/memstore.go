// Package memstore holds the in-memory task list and the single edit
// session. Nothing here touches disk; the store dies with the process.
package memstore

import (
	"strings"
	"time"

	"github.com/nkaratas/taskpad/internal/model"
)

// EditSession buffers one in-flight edit. Keystrokes land here and the
// task record stays untouched until CommitEdit.
type EditSession struct {
	TaskID      int64
	Title       string
	Description string
	TagsInput   string // raw comma form, parsed on commit
	Priority    model.Priority
}

// Store is a single-writer task list with explicit command methods.
// All mutations happen on the event loop goroutine; no locking.
type Store struct {
	tasks   []model.Task
	session *EditSession
	lastID  int64
	now     func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock injects the clock. Tests use it to pin IDs and timestamps.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// nextID derives IDs from the wall clock and bumps past the last issued
// value so rapid adds in the same millisecond stay unique and increasing.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add appends a task with defaults. A blank title (after trimming) is a
// no-op and reports ok=false.
func (s *Store) Add(title string) (model.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}
	t := model.Task{
		ID:        s.nextID(),
		Title:     title,
		Priority:  model.PriorityLow,
		CreatedAt: s.now().UnixMilli(),
	}
	s.tasks = append(s.tasks, t)
	return t, true
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// ToggleComplete flips the completed flag. Unknown ids are a no-op.
func (s *Store) ToggleComplete(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// Delete removes the task with the given id. Unknown ids are a no-op.
// Deleting the task under edit drops the session too.
func (s *Store) Delete(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.session != nil && s.session.TaskID == id {
		s.session = nil
	}
	return true
}

// StartEdit seeds the edit session from the task's current fields. There
// is exactly one session slot, so starting an edit while another task is
// mid-edit discards that task's session.
func (s *Store) StartEdit(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	t := s.tasks[i]
	s.session = &EditSession{
		TaskID:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		TagsInput:   model.JoinTags(t.Tags),
		Priority:    t.Priority,
	}
	return true
}

// Session returns the in-flight edit buffer, or nil when nothing is being
// edited. Callers mutate the buffer directly; the store only reads it on
// commit.
func (s *Store) Session() *EditSession {
	return s.session
}

// EditingID reports which task is mid-edit (0 when none).
func (s *Store) EditingID() int64 {
	if s.session == nil {
		return 0
	}
	return s.session.TaskID
}

// CommitEdit applies the session buffer to its task. An empty trimmed
// title discards the whole edit (no partial commit) and reports false.
// The session buffer is the only source read for priority.
func (s *Store) CommitEdit() bool {
	sess := s.session
	if sess == nil {
		return false
	}
	s.session = nil
	title := strings.TrimSpace(sess.Title)
	if title == "" {
		return false
	}
	i := s.index(sess.TaskID)
	if i < 0 {
		return false
	}
	s.tasks[i].Title = title
	s.tasks[i].Description = strings.TrimSpace(sess.Description)
	s.tasks[i].Tags = model.ParseTags(sess.TagsInput)
	s.tasks[i].Priority = sess.Priority
	return true
}

// CancelEdit drops the session without touching the task.
func (s *Store) CancelEdit() {
	s.session = nil
}

// Tasks returns the live slice in insertion order. Callers must not
// mutate it; use the command methods.
func (s *Store) Tasks() []model.Task {
	return s.tasks
}

func (s *Store) Len() int { return len(s.tasks) }

// Stats counts done and pending tasks for the header line.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) index(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
