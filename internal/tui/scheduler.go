package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubeguess"
)

// continueMsg fires a scheduled continuation on the event loop.
type continueMsg struct{ id int }

// loopScheduler runs session continuations on the bubbletea event loop.
// Scheduled tasks become tea.Tick commands; when the tick arrives Update
// fires the task unless it was cancelled in the meantime. Only touched from
// the event loop, so it needs no locking.
type loopScheduler struct {
	nextID int
	tasks  map[int]*loopTask
	queued []*loopTask
}

type loopTask struct {
	s     *loopScheduler
	id    int
	delay time.Duration
	f     func()
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{tasks: make(map[int]*loopTask)}
}

// AfterFunc implements cubeguess.Scheduler.
func (s *loopScheduler) AfterFunc(d time.Duration, f func()) cubeguess.Continuation {
	s.nextID++
	t := &loopTask{s: s, id: s.nextID, delay: d, f: f}
	s.tasks[t.id] = t
	s.queued = append(s.queued, t)
	return t
}

func (t *loopTask) Cancel() bool {
	if _, ok := t.s.tasks[t.id]; !ok {
		return false
	}
	delete(t.s.tasks, t.id)
	return true
}

// cmds turns tasks scheduled since the last call into tick commands.
func (s *loopScheduler) cmds() []tea.Cmd {
	var out []tea.Cmd
	for _, t := range s.queued {
		id := t.id
		out = append(out, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return continueMsg{id: id}
		}))
	}
	s.queued = nil
	return out
}

// fire runs task id if it is still pending.
func (s *loopScheduler) fire(id int) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	t.f()
	return true
}

// pending returns the IDs of tasks that have not run or been cancelled.
func (s *loopScheduler) pending() []int {
	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	return ids
}
