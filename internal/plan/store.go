package plan

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Fallback exercise committed when every draft row was left blank. Keeps
// the at-least-one-exercise invariant without failing the add.
var fallbackExercise = ExerciseDraft{
	Name:  "Full-Body Circuit",
	Focus: "Conditioning",
	Sets:  5,
	Reps:  "45s on/15s off",
	Notes: "Default circuit: squats, push-ups, rows, mountain climbers.",
}

// Store holds the canonical session sequence and the two in-progress
// drafts. State lives for the process lifetime only; nothing is persisted.
//
// Sessions are kept in insertion order and replaced wholesale on every
// mutation. Identifiers are generated fresh per entity and never reused.
type Store struct {
	mu             sync.Mutex
	sessions       []Session
	draft          SessionDraft
	exerciseDrafts []ExerciseDraft

	// Injection points so tests can pin ids and dates.
	newID func() string
	now   func() time.Time
}

// NewStore returns an empty store with one blank exercise-draft row.
func NewStore() *Store {
	return &Store{
		exerciseDrafts: []ExerciseDraft{{}},
		newID:          uuid.NewString,
		now:            time.Now,
	}
}

// Sessions returns the scheduled sessions in insertion order.
func (s *Store) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// AddSession commits the given draft and exercise rows as a new session.
// Rows with an empty name are dropped; if none remain the fixed fallback
// exercise is substituted. The exercise-draft buffer resets to one blank
// row afterwards. The store grows by exactly one session.
func (s *Store) AddSession(draft SessionDraft, rows []ExerciseDraft) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]ExerciseDraft, 0, len(rows))
	for _, r := range rows {
		if r.Name != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = []ExerciseDraft{fallbackExercise}
	}

	exercises := make([]Exercise, len(kept))
	for i, r := range kept {
		exercises[i] = Exercise{
			ID:    s.newID(),
			Name:  r.Name,
			Focus: r.Focus,
			Sets:  r.Sets,
			Reps:  r.Reps,
			Notes: r.Notes,
		}
	}

	session := Session{
		ID:        s.newID(),
		Day:       draft.Day,
		Start:     draft.Start,
		End:       draft.End,
		Focus:     draft.Focus,
		Intensity: draft.Intensity,
		Location:  draft.Location,
		Target:    draft.Target,
		Notes:     draft.Notes,
		Exercises: exercises,
	}
	s.sessions = append(s.sessions, session)
	s.exerciseDrafts = []ExerciseDraft{{}}
	return session
}

// RemoveSession removes the session with the given id. Unknown ids are a
// silent no-op; the false return exists for logging only.
func (s *Store) RemoveSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return true
		}
	}
	return false
}

// ClearDay removes every session scheduled on the given day and returns
// how many were removed. Clearing an empty day is a no-op.
func (s *Store) ClearDay(day Day) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	removed := 0
	for _, sess := range s.sessions {
		if sess.Day == day {
			removed++
			continue
		}
		kept = append(kept, sess)
	}
	s.sessions = kept
	return removed
}

// ApplyTemplate schedules a new session on the given day seeded from the
// catalog template at index, in the default 18:00-19:00 slot. A valid
// index is the caller's contract; out-of-range returns false without
// touching the store.
func (s *Store) ApplyTemplate(day Day, index int) (Session, bool) {
	if index < 0 || index >= len(templateCatalog) {
		return Session{}, false
	}
	tpl := templateCatalog[index]

	s.mu.Lock()
	defer s.mu.Unlock()

	exercises := make([]Exercise, len(tpl.Exercises))
	for i, e := range tpl.Exercises {
		exercises[i] = Exercise{
			ID:    s.newID(),
			Name:  e.Name,
			Focus: e.Focus,
			Sets:  e.Sets,
			Reps:  e.Reps,
			Notes: e.Notes,
		}
	}

	session := Session{
		ID:        s.newID(),
		Day:       day,
		Start:     templateStart,
		End:       templateEnd,
		Focus:     tpl.Focus,
		Intensity: tpl.Intensity,
		Location:  tpl.Location,
		Target:    tpl.Target,
		Notes:     tpl.Notes,
		Exercises: exercises,
	}
	s.sessions = append(s.sessions, session)
	return session, true
}

// DuplicateSession copies the session with the given id onto the adjacent
// day, shifting start and end by one hour in the same direction and
// wrapping both the week and the clock. The copy gets fresh ids throughout
// and a note suffix recording the move; the original is untouched.
// Unknown ids are a silent no-op.
func (s *Store) DuplicateSession(id string, dir Direction) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var src *Session
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			src = &s.sessions[i]
			break
		}
	}
	if src == nil {
		return Session{}, false
	}

	day := src.Day.Next()
	offset := 60
	word := "next"
	if dir == Previous {
		day = src.Day.Previous()
		offset = -60
		word = "previous"
	}

	start, err := ShiftClock(src.Start, offset)
	if err != nil {
		start = src.Start
	}
	end, err := ShiftClock(src.End, offset)
	if err != nil {
		end = src.End
	}

	exercises := make([]Exercise, len(src.Exercises))
	for i, e := range src.Exercises {
		e.ID = s.newID()
		exercises[i] = e
	}

	copySession := Session{
		ID:        s.newID(),
		Day:       day,
		Start:     start,
		End:       end,
		Focus:     src.Focus,
		Intensity: src.Intensity,
		Location:  src.Location,
		Target:    src.Target,
		Notes:     src.Notes + " (copied to " + word + " day on " + s.now().Format("2006-01-02") + ")",
		Exercises: exercises,
	}
	s.sessions = append(s.sessions, copySession)
	return copySession, true
}

// Draft returns the current session draft and exercise-draft rows.
func (s *Store) Draft() (SessionDraft, []ExerciseDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]ExerciseDraft, len(s.exerciseDrafts))
	copy(rows, s.exerciseDrafts)
	return s.draft, rows
}

// SetDraft replaces the session draft wholesale.
func (s *Store) SetDraft(d SessionDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// AddExerciseDraft appends a blank row to the exercise-draft buffer.
func (s *Store) AddExerciseDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exerciseDrafts = append(s.exerciseDrafts, ExerciseDraft{})
}

// UpdateExerciseDraft replaces the draft row at index. Out-of-range
// indexes are a no-op.
func (s *Store) UpdateExerciseDraft(index int, row ExerciseDraft) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.exerciseDrafts) {
		return false
	}
	s.exerciseDrafts[index] = row
	return true
}

// RemoveExerciseDraft deletes the draft row at index. The buffer always
// keeps at least one row, so removing the last remaining row is a no-op.
func (s *Store) RemoveExerciseDraft(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.exerciseDrafts) || len(s.exerciseDrafts) == 1 {
		return false
	}
	s.exerciseDrafts = append(s.exerciseDrafts[:index], s.exerciseDrafts[index+1:]...)
	return true
}
