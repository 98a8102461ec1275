package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialSlot(t *testing.T) {
	slot := NewCredentialSlot("")
	assert.Equal(t, DefaultCredentialName, slot.Name())

	_, ok := slot.Get()
	assert.False(t, ok)

	slot.Set("secret")
	value, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, "secret", value)

	slot.Clear()
	_, ok = slot.Get()
	assert.False(t, ok)
}

func TestCredentialSlotCustomName(t *testing.T) {
	assert.Equal(t, "OTHER_KEY", NewCredentialSlot("OTHER_KEY").Name())
}

func TestCredentialSlotConcurrentAccess(t *testing.T) {
	slot := NewCredentialSlot("")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			slot.Set("k")
		}()
		go func() {
			defer wg.Done()
			_, _ = slot.Get()
		}()
	}
	wg.Wait()

	value, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, "k", value)
}
