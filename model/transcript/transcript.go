// Package transcript defines the archived record of a single scheduler
// operation – the ordered log lines the operation returned to its caller.
package transcript

import "time"

// Transcript captures the outcome of one facade operation.
type Transcript struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	CreatedAt time.Time `json:"createdAt"`
	Lines     []string  `json:"lines"`
}

// CopyFrom overwrites this transcript with the content of the supplied one,
// preserving the receiver identity for in-place DAO updates.
func (t *Transcript) CopyFrom(src *Transcript) {
	if src == nil {
		return
	}
	t.Op = src.Op
	t.CreatedAt = src.CreatedAt
	t.Lines = append([]string(nil), src.Lines...)
}
