package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTab(t *testing.T) {
	tab := NewMemoryTab()
	for id := 1; id <= 4; id++ {
		require.NoError(t, tab.Put(Task{ID: id}))
	}

	idx, err := tab.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	all, err := tab.All()
	require.NoError(t, err)
	ids := make([]int, len(all))
	for i, task := range all {
		ids[i] = task.ID
	}
	assert.Equal(t, []int{1, 2, 4}, ids)

	_, err = tab.Remove(3)
	assert.Equal(t, ErrTaskNotFound, err)

	require.NoError(t, tab.Clear())
	all, err = tab.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryTab_AllReturnsCopy(t *testing.T) {
	tab := NewMemoryTab()
	require.NoError(t, tab.Put(Task{ID: 1}))

	all, err := tab.All()
	require.NoError(t, err)
	all[0].ID = 42

	again, err := tab.All()
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].ID)
}
