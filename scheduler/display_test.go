package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafeq/cafeq/model/menu"
)

func TestDisplayEmptyScheduler(t *testing.T) {
	s := newSilent()
	assertTranscript(t, []string{
		"display time=0 next=none",
		menuLine,
	}, s.Display())
}

func TestDisplayShowsSkipMarkerAndContents(t *testing.T) {
	s := newSilent()
	s.CreateQueue("c1", 2)
	s.CreateQueue("c2", 3)
	s.Enqueue("c1", "latte")
	s.MarkSkip("c1")

	assertTranscript(t, []string{
		"display time=0 next=c1",
		menuLine,
		"display c1 [1/2] [ skip] -> [c1-001:3]",
		"display c2 [0/3] -> []",
	}, s.Display())

	// Display is pure: repeated calls render identically.
	assertTranscript(t, s.Display(), s.Display())
}

func TestDisplayCustomMenuSorted(t *testing.T) {
	s := newSilent(WithMenu(menu.New(map[string]int{
		"scone":     2,
		"bagel":     1,
		"croissant": 3,
	})))
	assert.Equal(t, "display menu=[bagel:1,croissant:3,scone:2]", s.Display()[1])
}
