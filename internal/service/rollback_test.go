package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollback_RunsInReverseOrder(t *testing.T) {
	var order []string
	rb := &rollback{}
	rb.push("first", func() error { order = append(order, "first"); return nil })
	rb.push("second", func() error { order = append(order, "second"); return nil })
	rb.push("third", func() error { order = append(order, "third"); return nil })

	require.NoError(t, rb.run(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)

	// steps run once
	require.NoError(t, rb.run(context.Background()))
	assert.Len(t, order, 3)
}

func TestRollback_CommitSkipsSteps(t *testing.T) {
	called := false
	rb := &rollback{}
	rb.push("undo", func() error { called = true; return nil })
	rb.commit()

	require.NoError(t, rb.run(context.Background()))
	assert.False(t, called)
}

func TestRollback_ContinuesAfterFailure(t *testing.T) {
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	var order []string

	rb := &rollback{}
	rb.push("a", func() error { order = append(order, "a"); return errA })
	rb.push("b", func() error { order = append(order, "b"); return nil })
	rb.push("c", func() error { order = append(order, "c"); return errC })

	err := rb.run(context.Background())
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}
