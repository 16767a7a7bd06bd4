package command

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(name string, aliases ...string) *Command {
	return &Command{
		Name:    name,
		Aliases: aliases,
		MaxArgs: Unbounded,
		Run: func(ctx *Context) (string, error) {
			return name, nil
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(testCommand("echo", "e"))

	c, ok := reg.Get("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", c.Name)

	aliased, ok := reg.Get("e")
	require.True(t, ok)
	assert.Same(t, c, aliased)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistryAllDeduplicatesAliases(t *testing.T) {
	reg := NewRegistry()
	reg.Register(testCommand("say", "s", "tell"))
	reg.Register(testCommand("echo"))

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "echo", all[0].Name)
	assert.Equal(t, "say", all[1].Name)
}

func TestRegistryUnregisterRemovesAliases(t *testing.T) {
	reg := NewRegistry()
	reg.Register(testCommand("roll", "dice"))

	reg.Unregister("dice")

	_, ok := reg.Get("roll")
	assert.False(t, ok)
	_, ok = reg.Get("dice")
	assert.False(t, ok)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			reg.Register(testCommand("cmd" + strconv.Itoa(n)))
		}(i)
		go func(n int) {
			defer wg.Done()
			reg.Get("cmd" + strconv.Itoa(n))
			reg.All()
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.All(), 16)
}
