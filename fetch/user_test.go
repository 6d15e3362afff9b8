package fetch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asyncdemo/async"
	"github.com/asyncdemo/async/fetch"
)

func TestOperationFailedIs(t *testing.T) {
	err := fmt.Errorf("fetching user: %w", &fetch.OperationFailed{Reason: "data not found"})

	assert.True(t, errors.Is(err, fetch.ErrDataNotFound))
	assert.False(t, errors.Is(err, fetch.ErrDataNotReceived))
	assert.False(t, errors.Is(err, errors.New("data not found")))

	var failed *fetch.OperationFailed
	if assert.True(t, errors.As(err, &failed)) {
		assert.Equal(t, "data not found", failed.Reason)
	}
}

func TestUserRecordString(t *testing.T) {
	assert.Equal(t,
		`{"id":1,"name":"Vaibhav","pass":"123","developer":true}`,
		fetch.DefaultUser.String(),
	)
}

func TestUserOptionsDefaults(t *testing.T) {
	var e async.Executor

	op := fetch.NewUserFetcher(&e, fetch.UserOptions{})

	assert.Equal(t, "fetchData", op.Name())
	assert.Equal(t, fetch.DefaultFetchDelay, op.Delay())
	assert.Same(t, &e, op.Executor())
}

func TestUserOptionsAcceptedID(t *testing.T) {
	e := newExecutor(t)

	op := fetch.NewUserFetcher(e, fetch.UserOptions{
		Delay:      testDelay,
		AcceptedID: 7,
		Record:     fetch.UserRecord{Name: "Asha", Pass: "secret"},
	})

	o := viaAwait(t, op, 7)
	assert.NoError(t, o.err)
	assert.Equal(t, fetch.UserRecord{ID: 7, Name: "Asha", Pass: "secret"}, o.v)

	o = viaAwait(t, op, 1)
	assert.ErrorIs(t, o.err, fetch.ErrDataNotFound)
}

func TestDefaultDelays(t *testing.T) {
	var e async.Executor

	assert.Equal(t, fetch.DefaultGetDataDelay, fetch.NewDataGetter(&e, 0).Delay())
	assert.Equal(t, fetch.DefaultMessageDelay, fetch.NewMessageFetcher(&e, 0).Delay())
	assert.Equal(t, "getdata", fetch.NewDataGetter(&e, 0).Name())
}
