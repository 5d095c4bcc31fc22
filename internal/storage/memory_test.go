package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aokabi/slack-export/internal/models"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	info := models.UserInfo{Name: "taro", DisplayName: "Taro Yamada"}
	store.Put("U123", info)

	got, ok := store.Get("U123")
	require.True(t, ok)
	assert.Equal(t, info, got)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	got, ok := store.Get("U999")
	assert.False(t, ok)
	assert.Equal(t, models.UserInfo{}, got)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Put("U123", models.UserInfo{Name: "", DisplayName: "Unknown User"})
	store.Put("U123", models.UserInfo{Name: "taro", DisplayName: "Taro Yamada"})

	got, ok := store.Get("U123")
	require.True(t, ok)
	assert.Equal(t, "taro", got.Name)
}
