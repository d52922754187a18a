// Package logline parses the scheduler's stable log grammar back into typed
// records, so hosts can replay transcripts or assert on them without string
// plumbing. The grammar is space-separated key=value tokens for event lines
// plus the three display snapshot forms.
package logline

import (
	"fmt"
	"strconv"

	"github.com/viant/parsly"
)

// Type discriminates the four line shapes of the grammar.
type Type int

const (
	// TypeEvent is a "time=<int> event=<kind> ..." line.
	TypeEvent Type = iota
	// TypeStatus is a "display time=<int> next=<id|none>" line.
	TypeStatus
	// TypeMenu is a "display menu=[...]" line.
	TypeMenu
	// TypeQueue is a "display <id> [<n>/<cap>][ skip] -> [...]" line.
	TypeQueue
)

// MenuEntry is one name:burst pair of a menu line.
type MenuEntry struct {
	Name  string
	Burst int
}

// TaskRef is one id:remaining pair of a queue line.
type TaskRef struct {
	ID        string
	Remaining int
}

// Record is the parsed form of a single log line. Only the fields relevant
// to the record's Type are populated; Remaining is -1 when the event carries
// no remaining value.
type Record struct {
	Type      Type
	Time      int
	Event     string
	Queue     string
	Task      string
	Remaining int
	Reason    string
	Next      string
	Menu      []MenuEntry
	Occupied  int
	Capacity  int
	Skip      bool
	Tasks     []TaskRef
}

// Parse parses a single log line.
func Parse(line string) (*Record, error) {
	cursor := parsly.NewCursor("", []byte(line), 0)

	matched := cursor.MatchOne(identifierToken)
	if matched.Code != identifierToken.Code {
		return nil, cursor.NewError(identifierToken)
	}
	switch matched.Text(cursor) {
	case "display":
		return parseDisplay(cursor)
	case "time":
		return parseEvent(cursor)
	}
	return nil, fmt.Errorf("logline: unrecognised line %q", line)
}

func parseEvent(cursor *parsly.Cursor) (*Record, error) {
	record := &Record{Type: TypeEvent, Remaining: -1}

	var err error
	if record.Time, err = matchIntValue(cursor); err != nil {
		return nil, err
	}
	if err = matchKey(cursor, "event"); err != nil {
		return nil, err
	}
	if record.Event, err = matchIdentValue(cursor); err != nil {
		return nil, err
	}

	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
		if matched.Code != identifierToken.Code {
			return nil, cursor.NewError(identifierToken)
		}
		key := matched.Text(cursor)
		switch key {
		case "queue":
			if record.Queue, err = matchIdentValue(cursor); err != nil {
				return nil, err
			}
		case "task":
			if record.Task, err = matchIdentValue(cursor); err != nil {
				return nil, err
			}
		case "remaining":
			if record.Remaining, err = matchIntValue(cursor); err != nil {
				return nil, err
			}
		case "reason":
			if record.Reason, err = matchIdentValue(cursor); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("logline: unexpected key %q", key)
		}
	}
	return record, nil
}

func parseDisplay(cursor *parsly.Cursor) (*Record, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return nil, cursor.NewError(identifierToken)
	}
	word := matched.Text(cursor)

	switch word {
	case "time":
		return parseStatus(cursor)
	case "menu":
		return parseMenu(cursor)
	}
	return parseQueue(cursor, word)
}

// parseStatus handles: display time=<int> next=<id|none>
func parseStatus(cursor *parsly.Cursor) (*Record, error) {
	record := &Record{Type: TypeStatus, Remaining: -1}

	var err error
	if record.Time, err = matchIntValue(cursor); err != nil {
		return nil, err
	}
	if err = matchKey(cursor, "next"); err != nil {
		return nil, err
	}
	if record.Next, err = matchIdentValue(cursor); err != nil {
		return nil, err
	}
	return record, nil
}

// parseMenu handles: display menu=[name:cost,name:cost,...]
func parseMenu(cursor *parsly.Cursor) (*Record, error) {
	record := &Record{Type: TypeMenu, Remaining: -1}

	if matched := cursor.MatchOne(equalsToken); matched.Code != equalsToken.Code {
		return nil, cursor.NewError(equalsToken)
	}
	if matched := cursor.MatchOne(openBracketToken); matched.Code != openBracketToken.Code {
		return nil, cursor.NewError(openBracketToken)
	}

	matched := cursor.MatchAny(closeBracketToken, identifierToken)
	for matched.Code == identifierToken.Code {
		entry := MenuEntry{Name: matched.Text(cursor)}
		if matched = cursor.MatchOne(colonToken); matched.Code != colonToken.Code {
			return nil, cursor.NewError(colonToken)
		}
		burst, err := matchInt(cursor)
		if err != nil {
			return nil, err
		}
		entry.Burst = burst
		record.Menu = append(record.Menu, entry)

		matched = cursor.MatchAny(commaToken, closeBracketToken)
		switch matched.Code {
		case commaToken.Code:
			matched = cursor.MatchOne(identifierToken)
		case closeBracketToken.Code:
			return record, nil
		default:
			return nil, cursor.NewError(closeBracketToken)
		}
	}
	if matched.Code != closeBracketToken.Code {
		return nil, cursor.NewError(closeBracketToken)
	}
	return record, nil
}

// parseQueue handles: display <id> [<n>/<cap>][ skip] -> [id:remaining,...]
func parseQueue(cursor *parsly.Cursor, queueID string) (*Record, error) {
	record := &Record{Type: TypeQueue, Queue: queueID, Remaining: -1}

	matched := cursor.MatchAfterOptional(whitespaceToken, openBracketToken)
	if matched.Code != openBracketToken.Code {
		return nil, cursor.NewError(openBracketToken)
	}
	occupied, err := matchInt(cursor)
	if err != nil {
		return nil, err
	}
	record.Occupied = occupied
	if matched = cursor.MatchOne(slashToken); matched.Code != slashToken.Code {
		return nil, cursor.NewError(slashToken)
	}
	capacity, err := matchInt(cursor)
	if err != nil {
		return nil, err
	}
	record.Capacity = capacity
	if matched = cursor.MatchOne(closeBracketToken); matched.Code != closeBracketToken.Code {
		return nil, cursor.NewError(closeBracketToken)
	}

	matched = cursor.MatchAfterOptional(whitespaceToken, openBracketToken, arrowToken)
	if matched.Code == openBracketToken.Code {
		skip := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
		if skip.Code != identifierToken.Code || skip.Text(cursor) != "skip" {
			return nil, cursor.NewError(identifierToken)
		}
		record.Skip = true
		if matched = cursor.MatchOne(closeBracketToken); matched.Code != closeBracketToken.Code {
			return nil, cursor.NewError(closeBracketToken)
		}
		matched = cursor.MatchAfterOptional(whitespaceToken, arrowToken)
	}
	if matched.Code != arrowToken.Code {
		return nil, cursor.NewError(arrowToken)
	}

	if matched = cursor.MatchAfterOptional(whitespaceToken, openBracketToken); matched.Code != openBracketToken.Code {
		return nil, cursor.NewError(openBracketToken)
	}

	matched = cursor.MatchAny(closeBracketToken, identifierToken)
	for matched.Code == identifierToken.Code {
		ref := TaskRef{ID: matched.Text(cursor)}
		if matched = cursor.MatchOne(colonToken); matched.Code != colonToken.Code {
			return nil, cursor.NewError(colonToken)
		}
		remaining, err := matchInt(cursor)
		if err != nil {
			return nil, err
		}
		ref.Remaining = remaining
		record.Tasks = append(record.Tasks, ref)

		matched = cursor.MatchAny(commaToken, closeBracketToken)
		switch matched.Code {
		case commaToken.Code:
			matched = cursor.MatchOne(identifierToken)
		case closeBracketToken.Code:
			return record, nil
		default:
			return nil, cursor.NewError(closeBracketToken)
		}
	}
	if matched.Code != closeBracketToken.Code {
		return nil, cursor.NewError(closeBracketToken)
	}
	return record, nil
}

// matchKey consumes optional whitespace and the given literal key.
func matchKey(cursor *parsly.Cursor, key string) error {
	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return cursor.NewError(identifierToken)
	}
	if text := matched.Text(cursor); text != key {
		return fmt.Errorf("logline: expected key %q, got %q", key, text)
	}
	return nil
}

// matchIdentValue consumes "=<identifier>".
func matchIdentValue(cursor *parsly.Cursor) (string, error) {
	if matched := cursor.MatchOne(equalsToken); matched.Code != equalsToken.Code {
		return "", cursor.NewError(equalsToken)
	}
	matched := cursor.MatchOne(identifierToken)
	if matched.Code != identifierToken.Code {
		return "", cursor.NewError(identifierToken)
	}
	return matched.Text(cursor), nil
}

// matchIntValue consumes "=<integer>".
func matchIntValue(cursor *parsly.Cursor) (int, error) {
	if matched := cursor.MatchOne(equalsToken); matched.Code != equalsToken.Code {
		return 0, cursor.NewError(equalsToken)
	}
	return matchInt(cursor)
}

func matchInt(cursor *parsly.Cursor) (int, error) {
	matched := cursor.MatchOne(integerToken)
	if matched.Code != integerToken.Code {
		return 0, cursor.NewError(integerToken)
	}
	return strconv.Atoi(matched.Text(cursor))
}
