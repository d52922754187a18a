package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type turnOutcome struct {
	Queue string
	Line  string
}

func TestTypedPublishAndListen(t *testing.T) {
	svc := New()

	var mu sync.Mutex
	var got []turnOutcome
	done := make(chan struct{})
	SetListenerOf[turnOutcome](svc, func(e *Event[turnOutcome]) {
		mu.Lock()
		got = append(got, e.Data)
		if len(got) == 2 {
			close(done)
		}
		mu.Unlock()
	})

	publisher := PublisherOf[turnOutcome](svc)
	ctx := context.Background()
	assert.NoError(t, publisher.Publish(ctx, NewEvent(&Context{Op: "run", EventType: "work"}, turnOutcome{Queue: "c1", Line: "time=2 event=work queue=c1 task=c1-001 remaining=1"})))
	assert.NoError(t, publisher.Publish(ctx, NewEvent(&Context{Op: "run", EventType: "finish"}, turnOutcome{Queue: "c1", Line: "time=3 event=finish queue=c1 task=c1-001"})))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not receive events")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "c1", got[0].Queue)
	assert.Contains(t, got[1].Line, "event=finish")
}

func TestCatchAllStreamReceivesTypedEvents(t *testing.T) {
	svc := New()

	received := make(chan *Event[any], 1)
	svc.SetListener(func(e *Event[any]) {
		received <- e
	})

	publisher := PublisherOf[turnOutcome](svc)
	err := publisher.Publish(context.Background(), NewEvent(&Context{Op: "enqueue"}, turnOutcome{Queue: "c2"}))
	assert.NoError(t, err)

	select {
	case e := <-received:
		assert.Equal(t, "enqueue", e.Context.Op)
	case <-time.After(time.Second):
		t.Fatal("catch-all listener did not receive event")
	}
}
