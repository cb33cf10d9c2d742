package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlotLoadMissing(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "auth.v1.json"))
	data, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileSlotSaveLoad(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "auth.v1.json"))
	require.NoError(t, slot.Save([]byte(`{"token":"t","role":"worker"}`)))

	data, err := slot.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"t","role":"worker"}`, string(data))
}

func TestFileSlotWatchSeesExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.v1.json")
	slot := NewFileSlot(path)

	updates := make(chan []byte, 4)
	require.NoError(t, slot.Watch(func(data []byte) {
		updates <- data
	}))

	// Simulate another instance writing the slot directly.
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"other","role":"business"}`), 0o600))

	select {
	case data := <-updates:
		assert.JSONEq(t, `{"token":"other","role":"business"}`, string(data))
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification for external write")
	}
}

func TestFileSlotCloseStopsWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.v1.json")
	slot := NewFileSlot(path)

	updates := make(chan []byte, 4)
	require.NoError(t, slot.Watch(func(data []byte) {
		updates <- data
	}))
	require.NoError(t, slot.Close())

	require.NoError(t, os.WriteFile(path, []byte(`{"token":"x","role":"worker"}`), 0o600))

	select {
	case <-updates:
		t.Fatal("notification delivered after Close")
	case <-time.After(300 * time.Millisecond):
	}

	// Close is safe to repeat.
	require.NoError(t, slot.Close())
}
