package fetch

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/asyncdemo/async"
)

// Default delays of the demo operations.
const (
	DefaultFetchDelay    = 2000 * time.Millisecond
	DefaultGetDataDelay  = 3000 * time.Millisecond
	DefaultCallbackDelay = 4000 * time.Millisecond
	DefaultMessageDelay  = 2000 * time.Millisecond
)

// Message is the value produced by [NewMessageFetcher].
const Message = "User data fetched"

// UserRecord is the record returned by a successful user fetch.
type UserRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Pass      string `json:"pass"`
	Developer bool   `json:"developer"`
}

// String returns u as JSON.
func (u UserRecord) String() string {
	b, err := json.Marshal(u)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// DefaultUser is the hard-coded record served for the accepted id.
var DefaultUser = UserRecord{ID: 1, Name: "Vaibhav", Pass: "123", Developer: true}

// OperationFailed is the only kind of failure an [Operation] produces.
type OperationFailed struct {
	Reason string
}

func (e *OperationFailed) Error() string {
	return e.Reason
}

// Is reports whether target is an *OperationFailed with the same reason.
func (e *OperationFailed) Is(target error) bool {
	var other *OperationFailed
	if !errors.As(target, &other) {
		return false
	}
	return other.Reason == e.Reason
}

// Failures produced by the demo operations.
var (
	ErrDataNotFound    = &OperationFailed{Reason: "data not found"}
	ErrDataNotReceived = &OperationFailed{Reason: "data not received"}
)

// UserOptions configures [NewUserFetcher].
type UserOptions struct {
	// Delay defaults to DefaultFetchDelay when zero.
	Delay time.Duration
	// AcceptedID defaults to DefaultUser.ID when zero.
	AcceptedID int
	// Record defaults to DefaultUser when zero. Its ID is overwritten with
	// AcceptedID.
	Record UserRecord
}

func (o UserOptions) withDefaults() UserOptions {
	if o.Delay == 0 {
		o.Delay = DefaultFetchDelay
	}
	if o.AcceptedID == 0 {
		o.AcceptedID = DefaultUser.ID
	}
	if o.Record == (UserRecord{}) {
		o.Record = DefaultUser
	}
	o.Record.ID = o.AcceptedID
	return o
}

// NewUserFetcher returns the fetchData operation: after the delay it
// resolves to the configured record if the id is the accepted one, and
// fails with [ErrDataNotFound] otherwise.
func NewUserFetcher(e *async.Executor, opts UserOptions) *Operation[UserRecord] {
	opts = opts.withDefaults()
	return NewOperation(e, "fetchData", opts.Delay, func(id int) (UserRecord, error) {
		if id != opts.AcceptedID {
			return UserRecord{}, ErrDataNotFound
		}
		return opts.Record, nil
	})
}

// NewDataGetter returns the getdata operation, which always fails with
// [ErrDataNotReceived] after delay, whatever the id.
// A zero delay means DefaultGetDataDelay.
func NewDataGetter(e *async.Executor, delay time.Duration) *Operation[string] {
	if delay == 0 {
		delay = DefaultGetDataDelay
	}
	return NewOperation(e, "getdata", delay, func(int) (string, error) {
		return "", ErrDataNotReceived
	})
}

// NewMessageFetcher returns an operation that always resolves to [Message]
// after delay, whatever the id.
// A zero delay means DefaultMessageDelay.
func NewMessageFetcher(e *async.Executor, delay time.Duration) *Operation[string] {
	if delay == 0 {
		delay = DefaultMessageDelay
	}
	return NewOperation(e, "FetchUserData", delay, func(int) (string, error) {
		return Message, nil
	})
}
