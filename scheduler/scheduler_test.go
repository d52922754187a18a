package scheduler

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"

	"github.com/cafeq/cafeq/service/notify"
)

// assertTranscript compares log transcripts and reports mismatches as a
// unified diff so failures stay readable.
func assertTranscript(t *testing.T, expected, actual []string) {
	t.Helper()
	want := strings.Join(expected, "\n") + "\n"
	got := strings.Join(actual, "\n") + "\n"
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	t.Errorf("transcript mismatch:\n%s", diff)
}

const menuLine = "display menu=[americano:2,cappuccino:3,hot_chocolate:4,latte:3,macchiato:2,mocha:4,tea:1]"

func newSilent(options ...Option) *Scheduler {
	return New(append([]Option{WithNotifier(notify.Silent{})}, options...)...)
}

func TestCreateQueueIdempotent(t *testing.T) {
	s := newSilent()

	logs := s.CreateQueue("c1", 2)
	assertTranscript(t, []string{"time=0 event=create queue=c1"}, logs)

	// Repeat creation has no effect and no log.
	assert.Empty(t, s.CreateQueue("c1", 5))

	logs = s.CreateQueue("c2", 1)
	assertTranscript(t, []string{"time=0 event=create queue=c2"}, logs)
}

func TestEnqueueUnknownQueueIsSilent(t *testing.T) {
	var advisories []string
	s := New(WithNotifier(notify.Func(func(m string) { advisories = append(advisories, m) })))

	assert.Empty(t, s.Enqueue("ghost", "tea"))
	assert.Empty(t, s.MarkSkip("ghost"))
	assert.Empty(t, advisories)

	// The unknown id consumed no counter: a later real queue starts at 001.
	s.CreateQueue("ghost", 1)
	logs := s.Enqueue("ghost", "tea")
	assertTranscript(t, []string{"time=0 event=enqueue queue=ghost task=ghost-001 remaining=1"}, logs)
}

func TestEnqueueConsumesCounterOnRejection(t *testing.T) {
	var advisories []string
	s := New(WithNotifier(notify.Func(func(m string) { advisories = append(advisories, m) })))
	s.CreateQueue("c1", 1)

	logs := s.Enqueue("c1", "espresso")
	assertTranscript(t, []string{"time=0 event=reject queue=c1 task=c1-001 reason=unknown_item"}, logs)
	assert.Equal(t, []string{"Sorry, we don't serve that."}, advisories)

	logs = s.Enqueue("c1", "latte")
	assertTranscript(t, []string{"time=0 event=enqueue queue=c1 task=c1-002 remaining=3"}, logs)

	logs = s.Enqueue("c1", "tea")
	assertTranscript(t, []string{"time=0 event=reject queue=c1 task=c1-003 reason=full"}, logs)
	assert.Equal(t, "Sorry, we're at capacity.", advisories[1])
}

func TestFullRejectionThenFreedSlot(t *testing.T) {
	s := newSilent()
	s.CreateQueue("c1", 1)

	s.Enqueue("c1", "latte") // c1-001
	s.Enqueue("c1", "tea")   // rejected, consumes c1-002

	// Drain c1-001 with quantum 1: remaining 3 -> 2 -> 1 -> 0.
	logs := s.Run(1, 1)
	assertTranscript(t, []string{
		"time=0 event=run queue=c1",
		"time=1 event=work queue=c1 task=c1-001 remaining=2",
		"display time=1 next=c1",
		menuLine,
		"display c1 [1/1] -> [c1-001:2]",
	}, logs)

	logs = s.Run(1, 1)
	assert.Contains(t, logs, "time=2 event=work queue=c1 task=c1-001 remaining=1")

	logs = s.Run(1, 1)
	assert.Contains(t, logs, "time=3 event=finish queue=c1 task=c1-001")

	// The next admission picks up after the burnt id slot.
	logs = s.Enqueue("c1", "tea")
	assertTranscript(t, []string{"time=3 event=enqueue queue=c1 task=c1-003 remaining=1"}, logs)
}

func TestMarkSkipLogsEachCallButStaysOneShot(t *testing.T) {
	s := newSilent()
	s.CreateQueue("c1", 2)
	s.Enqueue("c1", "latte")

	logs := s.MarkSkip("c1")
	assertTranscript(t, []string{"time=0 event=skip queue=c1"}, logs)
	// Repeated marking is idempotent on state but still logs.
	logs = s.MarkSkip("c1")
	assertTranscript(t, []string{"time=0 event=skip queue=c1"}, logs)

	// The skip consumes the next turn: task untouched, time unchanged.
	logs = s.Run(1, 1)
	assertTranscript(t, []string{
		"time=0 event=run queue=c1",
		"display time=0 next=c1",
		menuLine,
		"display c1 [1/2] -> [c1-001:3]",
	}, logs)
	assert.Equal(t, 0, s.Time())

	// Flag was cleared: the following turn performs work.
	logs = s.Run(1, 1)
	assert.Contains(t, logs, "time=1 event=work queue=c1 task=c1-001 remaining=2")
}

func TestObserverSeesEveryEvent(t *testing.T) {
	var seen []Event
	s := newSilent(WithObserver(func(ev Event) { seen = append(seen, ev) }))

	s.CreateQueue("c1", 2)
	s.Enqueue("c1", "tea")
	s.Run(5, 1)

	kinds := make([]Kind, 0, len(seen))
	for _, ev := range seen {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []Kind{KindCreate, KindEnqueue, KindRun, KindFinish}, kinds)
	assert.Equal(t, "c1-001", seen[3].Task)
	assert.Equal(t, 1, seen[3].Time)
}

func TestNextQueueAndTime(t *testing.T) {
	s := newSilent()
	_, ok := s.NextQueue()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Time())

	s.CreateQueue("c1", 1)
	next, ok := s.NextQueue()
	assert.True(t, ok)
	assert.Equal(t, "c1", next)
}
