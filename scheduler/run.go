package scheduler

// Run executes exactly steps dispatch turns. With no queues registered the
// call is a no-op. A steps value outside [1, number of queues] yields a
// single error event and zero turns; the scheduler remains fully usable.
func (s *Scheduler) Run(quantum, steps int) []string {
	n := len(s.order)
	if n == 0 {
		return nil
	}
	if steps < 1 || steps > n {
		return []string{s.emit(Event{Time: s.now, Kind: KindError, Reason: ReasonInvalidSteps})}
	}
	return s.dispatch(quantum, steps, false)
}

// Drain executes turns until every queue is empty and no skip flag is
// pending, bounded by queues × drain ceiling turns as a safety net. With no
// queues registered the call is a no-op.
func (s *Scheduler) Drain(quantum int) []string {
	n := len(s.order)
	if n == 0 {
		return nil
	}
	return s.dispatch(quantum, n*s.drainCeiling, true)
}

// dispatch is the round-robin loop. Every turn emits a run event for the
// queue under the cursor, consumes a pending skip flag or services the head
// task for at most quantum time units, advances the cursor exactly once and
// appends a full snapshot.
func (s *Scheduler) dispatch(quantum, turns int, untilIdle bool) []string {
	var logs []string

	for turn := 0; turn < turns; turn++ {
		id := s.order[s.cursor]
		q := s.queues[id]

		logs = append(logs, s.emit(Event{Time: s.now, Kind: KindRun, Queue: id}))

		if s.skip[id] {
			// A pending skip consumes the entire turn: no work, no time advance.
			s.skip[id] = false
		} else if head, ok := q.Dequeue(); ok {
			serviced := head.Remaining
			if quantum < serviced {
				serviced = quantum
			}
			head.Remaining -= serviced
			s.now += serviced

			if head.Remaining > 0 {
				// Preempted tasks rejoin at the tail to keep intra-queue fairness.
				q.Enqueue(head)
				logs = append(logs, s.emit(Event{Time: s.now, Kind: KindWork, Queue: id, Task: head.ID, Remaining: head.Remaining}))
			} else {
				logs = append(logs, s.emit(Event{Time: s.now, Kind: KindFinish, Queue: id, Task: head.ID}))
			}
		}

		s.cursor = (s.cursor + 1) % len(s.order)
		logs = append(logs, s.Display()...)

		if untilIdle && s.idle() {
			break
		}
	}
	return logs
}

// idle reports whether every queue is empty and no skip flag is pending.
func (s *Scheduler) idle() bool {
	for _, id := range s.order {
		if s.queues[id].Len() > 0 || s.skip[id] {
			return false
		}
	}
	return true
}
