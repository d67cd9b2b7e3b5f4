package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := New()

	assert.False(t, c.ClearCalls())
	assert.False(t, c.Muted())
	assert.Zero(t, c.FloodDelay())
	assert.False(t, c.Maintained())
	assert.Zero(t, c.PoompDelay())
	assert.Equal(t, "assets", c.AssetsDir())
	assert.Equal(t, DefaultAssetsDir, c.AssetsDir())
}

func TestSetters(t *testing.T) {
	t.Run("ClearCalls", func(t *testing.T) {
		c := New()
		c.SetClearCalls(true)
		assert.True(t, c.ClearCalls())
		c.SetClearCalls(false)
		assert.False(t, c.ClearCalls())
	})

	t.Run("Mute", func(t *testing.T) {
		c := New()
		c.Mute(true)
		assert.True(t, c.Muted())
	})

	t.Run("FloodDelay", func(t *testing.T) {
		c := New()
		c.SetFloodDelay(1.5)
		assert.Equal(t, 1.5, c.FloodDelay())

		// no validation, degenerate values are stored as-is
		c.SetFloodDelay(-3)
		assert.Equal(t, -3.0, c.FloodDelay())
	})

	t.Run("Maintained", func(t *testing.T) {
		c := New()
		c.SetMaintained(true)
		assert.True(t, c.Maintained())
	})

	t.Run("PoompDelay", func(t *testing.T) {
		c := New()
		c.SetPoompDelay(30)
		assert.Equal(t, 30.0, c.PoompDelay())
	})

	t.Run("AssetsDir", func(t *testing.T) {
		c := New()
		c.SetAssetsDir("/srv/bot/assets")
		assert.Equal(t, "/srv/bot/assets", c.AssetsDir())

		c.SetAssetsDir("")
		assert.Equal(t, "", c.AssetsDir())
	})
}

func TestEqual(t *testing.T) {
	t.Run("Reflexive", func(t *testing.T) {
		c := New()
		assert.True(t, c.Equal(c))
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := New()
		b := New()
		a.SetPoompDelay(12)
		b.SetPoompDelay(12)
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("EachFieldCounts", func(t *testing.T) {
		mutations := map[string]func(*Configuration){
			"clear_calls": func(c *Configuration) { c.SetClearCalls(true) },
			"muted":       func(c *Configuration) { c.Mute(true) },
			"flood_delay": func(c *Configuration) { c.SetFloodDelay(0.5) },
			"maintained":  func(c *Configuration) { c.SetMaintained(true) },
			"poomp_delay": func(c *Configuration) { c.SetPoompDelay(0.5) },
			"assets_dir":  func(c *Configuration) { c.SetAssetsDir("other") },
		}

		for name, mutate := range mutations {
			base := New()
			changed := New()
			mutate(&changed)
			assert.False(t, base.Equal(changed), "configs differing in %s should not be equal", name)
			assert.False(t, changed.Equal(base), "configs differing in %s should not be equal", name)
		}
	})

	t.Run("IndependentlyBuilt", func(t *testing.T) {
		a := New()
		a.Mute(true)
		a.SetFloodDelay(2)

		b := New()
		b.Mute(true)
		b.SetFloodDelay(2)

		assert.True(t, a.Equal(b))
	})
}
