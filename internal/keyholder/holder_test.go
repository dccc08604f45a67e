package keyholder

import (
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	MemorySessionStore
	putErr, getErr, delErr error
}

func (s *brokenStore) Put(slot, value string) error {
	if s.putErr != nil {
		return s.putErr
	}
	return s.MemorySessionStore.Put(slot, value)
}

func (s *brokenStore) Get(slot string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.MemorySessionStore.Get(slot)
}

func (s *brokenStore) Delete(slot string) error {
	if s.delErr != nil {
		return s.delErr
	}
	return s.MemorySessionStore.Delete(slot)
}

func newBrokenStore() *brokenStore {
	return &brokenStore{MemorySessionStore: MemorySessionStore{slots: map[string]string{}}}
}

func newTestHolder() (*Holder, *MemorySessionStore) {
	store := NewMemorySessionStore()
	return NewHolder(store, logger.Nop()), store
}

// ── SetKey ────────────────────────────────────────────────────────────────────

func TestHolder_SetKey_TooShortStaysUnset(t *testing.T) {
	h, store := newTestHolder()

	err := h.SetKey("short")

	require.ErrorIs(t, err, ErrMasterKeyTooShort)
	assert.Equal(t, "Master key must be at least 8 characters long", err.Error())
	assert.Equal(t, Unset, h.State())
	_, ok := h.GetKey()
	assert.False(t, ok)
	_, err = store.Get(SlotMasterKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestHolder_SetKey_Empty(t *testing.T) {
	h, _ := newTestHolder()

	assert.ErrorIs(t, h.SetKey(""), ErrEmptyMasterKey)
	assert.Equal(t, Unset, h.State())
}

func TestHolder_SetKey_Success(t *testing.T) {
	h, store := newTestHolder()

	require.NoError(t, h.SetKey("longenough1"))

	assert.Equal(t, Set, h.State())
	key, ok := h.GetKey()
	require.True(t, ok)
	assert.Equal(t, models.MasterSecret("longenough1"), key)

	slot, err := store.Get(SlotMasterKey)
	require.NoError(t, err)
	assert.Equal(t, "longenough1", slot)
}

func TestHolder_SetKey_CountsCharactersNotBytes(t *testing.T) {
	h, _ := newTestHolder()

	// seven runes, fourteen bytes
	assert.ErrorIs(t, h.SetKey("ключикк"), ErrMasterKeyTooShort)
	assert.NoError(t, h.SetKey("ключиккк"))
}

func TestHolder_SetKey_RejectedKeepsPreviousKey(t *testing.T) {
	h, _ := newTestHolder()
	require.NoError(t, h.SetKey("longenough1"))

	require.Error(t, h.SetKey("short"))

	key, ok := h.GetKey()
	require.True(t, ok)
	assert.Equal(t, models.MasterSecret("longenough1"), key)
}

func TestHolder_SetKey_StoreFailure(t *testing.T) {
	store := newBrokenStore()
	store.putErr = errors.New("disk full")
	h := NewHolder(store, logger.Nop())

	err := h.SetKey("longenough1")
	require.ErrorIs(t, err, store.putErr)
	assert.Equal(t, Unset, h.State())
}

// ── ClearKey ──────────────────────────────────────────────────────────────────

func TestHolder_ClearKey(t *testing.T) {
	h, store := newTestHolder()
	require.NoError(t, h.SetKey("longenough1"))

	require.NoError(t, h.ClearKey())

	assert.Equal(t, Unset, h.State())
	_, ok := h.GetKey()
	assert.False(t, ok)
	_, err := store.Get(SlotMasterKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestHolder_ClearKey_WhenUnset(t *testing.T) {
	h, _ := newTestHolder()
	assert.NoError(t, h.ClearKey())
	assert.Equal(t, Unset, h.State())
}

func TestHolder_ClearKey_StoreFailureStillForgets(t *testing.T) {
	store := newBrokenStore()
	h := NewHolder(store, logger.Nop())
	require.NoError(t, h.SetKey("longenough1"))
	store.delErr = errors.New("permission denied")

	require.Error(t, h.ClearKey())

	assert.Equal(t, Unset, h.State())
	_, ok := h.GetKey()
	assert.False(t, ok)
}

// ── Restore ───────────────────────────────────────────────────────────────────

func TestHolder_Restore(t *testing.T) {
	store := NewMemorySessionStore()
	require.NoError(t, store.Put(SlotMasterKey, "longenough1"))

	h := NewHolder(store, logger.Nop())
	require.Equal(t, Unset, h.State())

	require.NoError(t, h.Restore())

	assert.Equal(t, Set, h.State())
	key, ok := h.GetKey()
	require.True(t, ok)
	assert.Equal(t, models.MasterSecret("longenough1"), key)
}

func TestHolder_Restore_EmptySlot(t *testing.T) {
	h, _ := newTestHolder()

	require.NoError(t, h.Restore())
	assert.Equal(t, Unset, h.State())
}

func TestHolder_Restore_InvalidSlotIsWiped(t *testing.T) {
	store := NewMemorySessionStore()
	require.NoError(t, store.Put(SlotMasterKey, "short"))
	h := NewHolder(store, logger.Nop())

	require.NoError(t, h.Restore())

	assert.Equal(t, Unset, h.State())
	_, err := store.Get(SlotMasterKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestHolder_Restore_StoreFailure(t *testing.T) {
	store := newBrokenStore()
	store.getErr = errors.New("io error")
	h := NewHolder(store, logger.Nop())

	assert.ErrorIs(t, h.Restore(), store.getErr)
	assert.Equal(t, Unset, h.State())
}

// A restart within the same session restores the key from the file slot.
func TestHolder_RestoreAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileSessionStore(dir)
	require.NoError(t, err)
	require.NoError(t, NewHolder(first, logger.Nop()).SetKey("longenough1"))

	second, err := NewFileSessionStore(dir)
	require.NoError(t, err)
	h := NewHolder(second, logger.Nop())
	require.NoError(t, h.Restore())

	assert.Equal(t, Set, h.State())
}

// ── concurrency ───────────────────────────────────────────────────────────────

func TestHolder_ConcurrentAccess(t *testing.T) {
	h, _ := newTestHolder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); _ = h.SetKey("longenough1") }()
		go func() { defer wg.Done(); _, _ = h.GetKey() }()
		go func() { defer wg.Done(); _ = h.ClearKey() }()
	}
	wg.Wait()

	state := h.State()
	_, ok := h.GetKey()
	assert.Equal(t, state == Set, ok)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "set", Set.String())
}
