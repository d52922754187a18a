package cafeq_test

import (
	"context"
	"embed"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"

	"github.com/cafeq/cafeq"
	"github.com/cafeq/cafeq/scheduler"
	"github.com/cafeq/cafeq/service/dao"
	"github.com/cafeq/cafeq/service/event"
	"github.com/cafeq/cafeq/service/messaging/memory"
	"github.com/cafeq/cafeq/service/notify"
)

//go:embed testdata/*
var embedFS embed.FS

func TestServiceFromConfig(t *testing.T) {
	ctx := context.Background()
	t.Setenv("FLAT_WHITE_BURST", "3")

	config, err := cafeq.LoadConfig(ctx, "embed:///testdata/config.yaml", &embedFS)
	assert.Nil(t, err)
	assert.Equal(t, 50, config.Scheduler.DrainCeiling)
	assert.Equal(t, 3, config.Menu["flat_white"])

	srv, err := cafeq.NewFromConfig(config)
	assert.Nil(t, err)

	srv.CreateQueue(ctx, "c1", 2)
	logs := srv.Enqueue(ctx, "c1", "flat_white")
	assert.Equal(t, []string{"time=0 event=enqueue queue=c1 task=c1-001 remaining=3"}, logs)

	assert.Equal(t, "display menu=[americano:2,flat_white:3,latte:3,tea:1]", srv.Display()[1])

	logs = srv.Drain(ctx, 2)
	assert.Contains(t, logs, "time=3 event=finish queue=c1 task=c1-001")
}

func TestServiceArchivesTranscripts(t *testing.T) {
	ctx := context.Background()
	srv := cafeq.New(cafeq.WithNotifier(notify.Silent{}))

	srv.CreateQueue(ctx, "c1", 1)
	srv.Enqueue(ctx, "c1", "tea")
	srv.Run(ctx, 5, 1)

	transcripts, err := srv.Transcripts(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(transcripts))
	assert.Equal(t, "create_queue", transcripts[0].Op)
	assert.Equal(t, "enqueue", transcripts[1].Op)
	assert.Equal(t, "run", transcripts[2].Op)
	assert.Contains(t, transcripts[2].Lines, "time=1 event=finish queue=c1 task=c1-001")

	runs, err := srv.Transcripts(ctx, dao.NewParameter("op", "run"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(runs))

	// Silent no-ops leave no transcript behind.
	srv.Enqueue(ctx, "ghost", "tea")
	transcripts, _ = srv.Transcripts(ctx)
	assert.Equal(t, 3, len(transcripts))
}

func TestServicePublishesEvents(t *testing.T) {
	ctx := context.Background()
	srv := cafeq.New(cafeq.WithNotifier(notify.Silent{}))

	var mu sync.Mutex
	var ops []string
	finished := make(chan struct{})
	event.SetListenerOf[scheduler.Event](srv.Events(), func(e *event.Event[scheduler.Event]) {
		mu.Lock()
		ops = append(ops, e.Context.Op)
		if e.Data.Kind == scheduler.KindFinish {
			close(finished)
		}
		mu.Unlock()
	})

	srv.CreateQueue(ctx, "c1", 1)
	srv.Enqueue(ctx, "c1", "tea")
	srv.Run(ctx, 5, 1)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("no finish event observed")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, ops, "create_queue")
	assert.Contains(t, ops, "enqueue")
	assert.Contains(t, ops, "run")
}

func TestServiceAdvisoriesOverBus(t *testing.T) {
	ctx := context.Background()
	queue := memory.NewQueue[notify.Advisory](memory.DefaultConfig())
	srv := cafeq.New(cafeq.WithNotifier(notify.NewBus(queue)))

	srv.CreateQueue(ctx, "c1", 1)
	srv.Enqueue(ctx, "c1", "ristretto")

	consumeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	message, err := queue.Consume(consumeCtx)
	assert.Nil(t, err)
	assert.Equal(t, "Sorry, we don't serve that.", message.T().Message)
}
