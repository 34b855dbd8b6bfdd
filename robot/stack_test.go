// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	assert.True(s.Empty())

	s.Push(Pointer{Band: 1, Slot: 3})
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(Pointer{Band: 1, Slot: 3}, s.Data[0])
}

func TestCallStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	s.Push(Pointer{Band: 0, Slot: 1})
	s.Push(Pointer{Band: 2, Slot: 5})

	ip, ok := s.Pop()
	assert.True(ok)
	assert.Equal(Pointer{Band: 2, Slot: 5}, ip)
	assert.Equal(1, s.Depth())

	ip, ok = s.Pop()
	assert.True(ok)
	assert.Equal(Pointer{Band: 0, Slot: 1}, ip)
	assert.True(s.Empty())

	ip, ok = s.Pop()
	assert.False(ok)
	assert.Equal(Pointer{}, ip)
}

func TestCallStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(Pointer{Band: 3, Slot: 7})
	ip, ok := s.Peek()
	assert.True(ok)
	assert.Equal(Pointer{Band: 3, Slot: 7}, ip)
	assert.Equal(1, s.Depth())
}

func TestCallStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	for n := range 100 {
		s.Push(Pointer{Band: n % BAND_COUNT})
	}
	assert.Equal(100, s.Depth())

	capacity := cap(s.Data)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(capacity, cap(s.Data))

	s.Reset()
	assert.True(s.Empty())
}
