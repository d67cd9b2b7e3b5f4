package config

// Builder accumulates partial overrides for a Configuration. Unset
// fields fall back to the defaults of New. Methods return the builder
// so calls can be chained.
type Builder struct {
	clearCalls *bool
	muted      *bool
	floodDelay *float64
	maintained *bool
	poompDelay *float64
	assetsDir  *string
}

// NewBuilder returns a Builder with no overrides staged.
func NewBuilder() *Builder {
	return &Builder{}
}

// ClearCalls stages whether command calls should be deleted after
// execution.
func (b *Builder) ClearCalls(v bool) *Builder {
	b.clearCalls = &v
	return b
}

// Mute stages whether the bot should be muted in the voice channel.
func (b *Builder) Mute(v bool) *Builder {
	b.muted = &v
	return b
}

// FloodDelay stages the flood command delay. A nil value clears any
// previously staged delay.
func (b *Builder) FloodDelay(v *float64) *Builder {
	b.floodDelay = v
	return b
}

func (b *Builder) Maintained(v *bool) *Builder {
	b.maintained = v
	return b
}

func (b *Builder) PoompDelay(v *float64) *Builder {
	b.poompDelay = v
	return b
}

func (b *Builder) AssetsDir(v *string) *Builder {
	b.assetsDir = v
	return b
}

// Build folds the staged overrides onto a default Configuration. The
// builder is left untouched, calling Build again yields an equal value.
func (b *Builder) Build() Configuration {
	c := New()

	if b.clearCalls != nil {
		c.SetClearCalls(*b.clearCalls)
	}
	if b.muted != nil {
		c.Mute(*b.muted)
	}
	if b.floodDelay != nil {
		c.SetFloodDelay(*b.floodDelay)
	}
	if b.maintained != nil {
		c.SetMaintained(*b.maintained)
	}
	if b.poompDelay != nil {
		c.SetPoompDelay(*b.poompDelay)
	}
	if b.assetsDir != nil {
		c.SetAssetsDir(*b.assetsDir)
	}

	return c
}

// Bool returns a pointer to v, for the optional builder methods.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to v, for the optional builder methods.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to v, for the optional builder methods.
func String(v string) *string {
	return &v
}
