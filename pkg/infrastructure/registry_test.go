package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	registry := NewInMemoryHandlerRegistry()
	first := &recordingHandler{}
	second := &recordingHandler{}
	registry.RegisterHandler("content.saved", first)
	registry.RegisterHandler("content.saved", second)

	handlers := registry.HandlersFor("content.saved")
	require.Len(t, handlers, 2)
	assert.Same(t, first, handlers[0])
	assert.Same(t, second, handlers[1])
}

func TestRegistryUnknownType(t *testing.T) {
	registry := NewInMemoryHandlerRegistry()
	assert.Nil(t, registry.HandlersFor("content.unknown"))
}

func TestRegistryReturnsCopy(t *testing.T) {
	registry := NewInMemoryHandlerRegistry()
	first := &recordingHandler{}
	registry.RegisterHandler("content.saved", first)

	handlers := registry.HandlersFor("content.saved")
	handlers[0] = nil

	again := registry.HandlersFor("content.saved")
	require.Len(t, again, 1)
	assert.Same(t, first, again[0])
}
