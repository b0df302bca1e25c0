package workfilter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualScheduler records scheduled tasks so tests decide when they run.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	fn       func()
	canceled bool
}

func (m *manualScheduler) schedule(_ time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{fn: fn}
	m.tasks = append(m.tasks, t)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if t.canceled {
			return false
		}
		t.canceled = true
		return true
	}
}

// fire runs task i even if it was canceled, which is what happens when a
// timer goroutine has already started as Stop is called.
func (m *manualScheduler) fire(t *testing.T, i int) {
	t.Helper()
	m.mu.Lock()
	if i >= len(m.tasks) {
		m.mu.Unlock()
		t.Fatalf("task %d not scheduled (have %d)", i, len(m.tasks))
	}
	task := m.tasks[i]
	m.mu.Unlock()
	task.fn()
}

func (m *manualScheduler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *manualScheduler) canceled(i int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[i].canceled
}

func newManual(t *testing.T) (*Controller, *manualScheduler) {
	t.Helper()
	ms := &manualScheduler{}
	static := items("Documentary", "Commercial", "Corporate", "Music Video", "Digital")
	c := New(static, DefaultDelay, WithScheduler(ms.schedule))
	t.Cleanup(c.Close)
	return c, ms
}

func TestNew_InitialState(t *testing.T) {
	c, ms := newManual(t)

	s := c.State()
	if s.Filter != All {
		t.Errorf("Filter = %q, want All", s.Filter)
	}
	if !s.Loading {
		t.Error("expected Loading before the first commit")
	}
	if len(s.Items) != 5 {
		t.Errorf("len(Items) = %d, want full list of 5", len(s.Items))
	}
	if ms.count() != 1 {
		t.Fatalf("expected initial commit to be scheduled, got %d tasks", ms.count())
	}

	ms.fire(t, 0)
	s = c.State()
	if s.Loading {
		t.Error("expected Loading=false after first commit")
	}
	if len(s.Items) != 5 {
		t.Errorf("len(Items) = %d, want 5", len(s.Items))
	}
}

func TestSelect_LoadingIsImmediate(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	s := c.Select(Documentary)
	if !s.Loading {
		t.Error("Select should set Loading synchronously")
	}
	if s.Filter != Documentary {
		t.Errorf("Filter = %q, want Documentary", s.Filter)
	}
	if len(s.Items) != 5 {
		t.Errorf("previous result should stay visible while loading, got %d items", len(s.Items))
	}

	ms.fire(t, 1)
	s = c.State()
	if s.Loading {
		t.Error("expected Loading=false after commit")
	}
	if diff := cmp.Diff([]string{"a"}, ids(s.Items)); diff != "" {
		t.Errorf("Documentary items mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_SupersededNeverCommits(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Documentary) // task 1
	c.Select(Commercial)  // task 2

	if !ms.canceled(1) {
		t.Error("superseded task should be canceled")
	}

	// The Documentary timer fires anyway; it must not commit.
	ms.fire(t, 1)
	s := c.State()
	if !s.Loading {
		t.Error("stale commit cleared Loading")
	}
	if s.Filter != Commercial {
		t.Errorf("Filter = %q, want Commercial", s.Filter)
	}
	if len(s.Items) != 5 {
		t.Errorf("stale commit changed Items to %v", ids(s.Items))
	}

	ms.fire(t, 2)
	s = c.State()
	if s.Loading {
		t.Error("expected Commercial to commit")
	}
	if diff := cmp.Diff([]string{"b", "c"}, ids(s.Items)); diff != "" {
		t.Errorf("Commercial items mismatch (-want +got):\n%s", diff)
	}

	// Firing the stale task after the real commit still changes nothing.
	ms.fire(t, 1)
	if diff := cmp.Diff([]string{"b", "c"}, ids(c.State().Items)); diff != "" {
		t.Errorf("late stale commit changed items (-want +got):\n%s", diff)
	}
}

func TestSelect_SameFilterIsNoop(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	s := c.Select(All)
	if s.Loading {
		t.Error("re-selecting the current filter should not start loading")
	}
	if ms.count() != 1 {
		t.Errorf("re-selecting scheduled a task; have %d", ms.count())
	}
}

func TestSelect_AllAlwaysFullList(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Digital)
	ms.fire(t, 1)
	c.Select(All)
	ms.fire(t, 2)

	if got := len(c.State().Items); got != 5 {
		t.Errorf("All after Digital: %d items, want 5", got)
	}
}

func TestReset_FromEmptyResult(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Filter("Animation"))
	ms.fire(t, 1)
	s := c.State()
	if s.Loading {
		t.Error("expected Loading=false after empty commit")
	}
	if len(s.Items) != 0 {
		t.Fatalf("expected no items, got %v", ids(s.Items))
	}

	s = c.Reset()
	if s.Filter != All || !s.Loading {
		t.Errorf("Reset state = %+v, want All and loading", s)
	}
	ms.fire(t, 2)
	if got := len(c.State().Items); got != 5 {
		t.Errorf("after reset: %d items, want 5", got)
	}
}

func TestRemount_StartsOver(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Digital)
	ms.fire(t, 1)
	if got := ids(c.State().Items); len(got) != 1 {
		t.Fatalf("Digital items = %v, want one", got)
	}

	s := c.Remount(All)
	if s.Filter != All || !s.Loading {
		t.Errorf("Remount state = %+v, want All and loading", s)
	}
	if len(s.Items) != 5 {
		t.Errorf("Remount shows %d items, want full list of 5", len(s.Items))
	}
	if ms.count() != 3 {
		t.Fatalf("Remount should schedule a commit; have %d tasks", ms.count())
	}

	ms.fire(t, 2)
	if s := c.State(); s.Loading || len(s.Items) != 5 {
		t.Errorf("after commit: loading=%v items=%d, want settled full list", s.Loading, len(s.Items))
	}
}

func TestRemount_SameFilterRestarts(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Commercial)
	ms.fire(t, 1)

	s := c.Remount(Commercial)
	if !s.Loading || s.Filter != Commercial {
		t.Errorf("Remount state = %+v, want Commercial and loading", s)
	}
	if len(s.Items) != 5 {
		t.Errorf("Remount shows %d items, want full list while loading", len(s.Items))
	}

	ms.fire(t, 2)
	if diff := cmp.Diff([]string{"b", "c"}, ids(c.State().Items)); diff != "" {
		t.Errorf("Commercial items mismatch (-want +got):\n%s", diff)
	}
}

func TestRemount_SupersedesPending(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	c.Select(Documentary) // task 1
	c.Remount(All)        // task 2
	if !ms.canceled(1) {
		t.Error("pending selection should be canceled by Remount")
	}

	ms.fire(t, 1)
	if s := c.State(); !s.Loading || s.Filter != All {
		t.Errorf("stale commit applied after Remount: %+v", s)
	}
}

func TestState_ReturnsCopy(t *testing.T) {
	c, ms := newManual(t)
	ms.fire(t, 0)

	s := c.State()
	s.Items[0].Title = "changed"
	if c.State().Items[0].Title == "changed" {
		t.Error("State exposed internal items")
	}
}

func TestClose_PreventsCommit(t *testing.T) {
	c, ms := newManual(t)
	c.Close()

	if !ms.canceled(0) {
		t.Error("Close should cancel the pending task")
	}
	ms.fire(t, 0)
	if !c.State().Loading {
		t.Error("commit after Close changed state")
	}

	s := c.Select(Digital)
	if s.Filter != All {
		t.Errorf("Select after Close changed filter to %q", s.Filter)
	}
	if ms.count() != 1 {
		t.Error("Select after Close scheduled a task")
	}
}

func TestSettled_WaitsForLatest(t *testing.T) {
	static := items("Documentary", "Commercial", "Corporate", "Music Video", "Digital")
	c := New(static, 10*time.Millisecond)
	defer c.Close()

	c.Select(Documentary)
	c.Select(Commercial)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := c.Settled(ctx)
	if err != nil {
		t.Fatalf("Settled error: %v", err)
	}
	if s.Filter != Commercial || s.Loading {
		t.Errorf("settled state = %+v", s)
	}
	if diff := cmp.Diff([]string{"b", "c"}, ids(s.Items)); diff != "" {
		t.Errorf("settled items mismatch (-want +got):\n%s", diff)
	}
}

func TestSettled_ContextExpires(t *testing.T) {
	c, _ := newManual(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s, err := c.Settled(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
	if !s.Loading {
		t.Error("expected the loading snapshot on timeout")
	}
}

func TestSettled_WokenByClose(t *testing.T) {
	c, _ := newManual(t)

	done := make(chan error, 1)
	go func() {
		_, err := c.Settled(context.Background())
		done <- err
	}()

	c.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Settled after Close returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Settled did not return after Close")
	}
}

func TestController_ConcurrentSelects(t *testing.T) {
	static := items("Documentary", "Commercial", "Corporate", "Music Video", "Digital")
	c := New(static, time.Millisecond)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Select(Choices()[i%len(Choices())].Value)
		}(i)
	}
	wg.Wait()

	final := c.Select(MusicEvent)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := c.Settled(ctx)
	if err != nil {
		t.Fatalf("Settled error: %v", err)
	}
	if s.Filter != final.Filter {
		t.Errorf("settled on %q, want %q", s.Filter, final.Filter)
	}
	for _, w := range s.Items {
		if !s.Filter.Matches(w.Category) {
			t.Errorf("item %q does not match settled filter %q", w.Category, s.Filter)
		}
	}
}
