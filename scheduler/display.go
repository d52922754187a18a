package scheduler

import (
	"fmt"
	"strings"
)

// Display renders a full state snapshot: current time and the queue up next,
// the menu sorted by item name, then one line per queue in creation order.
// It never mutates scheduler state.
func (s *Scheduler) Display() []string {
	lines := make([]string, 0, 2+len(s.order))

	next := "none"
	if id, ok := s.NextQueue(); ok {
		next = id
	}
	lines = append(lines, fmt.Sprintf("display time=%d next=%s", s.now, next))

	items := s.menu.Items()
	entries := make([]string, 0, len(items))
	for _, item := range items {
		entries = append(entries, fmt.Sprintf("%s:%d", item.Name, item.Burst))
	}
	lines = append(lines, fmt.Sprintf("display menu=[%s]", strings.Join(entries, ",")))

	for _, id := range s.order {
		q := s.queues[id]
		skipTag := ""
		if s.skip[id] {
			skipTag = " [ skip]"
		}
		refs := make([]string, 0, q.Len())
		for _, t := range q.Tasks() {
			refs = append(refs, fmt.Sprintf("%s:%d", t.ID, t.Remaining))
		}
		lines = append(lines, fmt.Sprintf("display %s [%d/%d]%s -> [%s]", id, q.Len(), q.Capacity(), skipTag, strings.Join(refs, ",")))
	}
	return lines
}
