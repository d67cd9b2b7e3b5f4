// Package config holds the bot's runtime settings and the key used to
// share them between command handlers.
package config

// DefaultAssetsDir is the default location for assets storage.
const DefaultAssetsDir = "assets"

// Configuration is the bot's mutable runtime settings.
//
// clearCalls says whether command-invocation messages like "$ping" are
// deleted after the command runs. muted says whether the bot's voice
// output is muted. floodDelay paces the flood command against the
// discord rate limit so messages don't freeze in batches of 5.
// maintained keeps the poomp session alive waiting for further "$poomp"
// calls, and poompDelay is the max wait before the bot leaves the voice
// channel without one. assetsDir is where the bot's media lives.
type Configuration struct {
	clearCalls bool
	muted      bool
	floodDelay float64
	maintained bool
	poompDelay float64
	assetsDir  string
}

// New returns a Configuration with every setting at its default.
func New() Configuration {
	return Configuration{
		assetsDir: DefaultAssetsDir,
	}
}

// ClearCalls reports whether command calls are deleted after execution.
func (c Configuration) ClearCalls() bool {
	return c.clearCalls
}

// SetClearCalls sets whether command calls are deleted after execution.
func (c *Configuration) SetClearCalls(v bool) {
	c.clearCalls = v
}

// Muted reports whether the bot is muted.
func (c Configuration) Muted() bool {
	return c.muted
}

// Mute mutes or unmutes the bot.
func (c *Configuration) Mute(v bool) {
	c.muted = v
}

// FloodDelay returns the inter-message delay of the flood command, in
// seconds.
func (c Configuration) FloodDelay() float64 {
	return c.floodDelay
}

// SetFloodDelay sets the flood command delay in seconds. The value is
// not validated, a negative delay is stored as-is.
func (c *Configuration) SetFloodDelay(v float64) {
	c.floodDelay = v
}

// Maintained reports whether the poomp session stays alive between
// invocations.
func (c Configuration) Maintained() bool {
	return c.maintained
}

func (c *Configuration) SetMaintained(v bool) {
	c.maintained = v
}

// PoompDelay returns the max wait in seconds before the bot leaves the
// voice channel.
func (c Configuration) PoompDelay() float64 {
	return c.poompDelay
}

func (c *Configuration) SetPoompDelay(v float64) {
	c.poompDelay = v
}

// AssetsDir returns the assets storage location.
func (c Configuration) AssetsDir() string {
	return c.assetsDir
}

func (c *Configuration) SetAssetsDir(path string) {
	c.assetsDir = path
}

// Equal reports whether both configurations hold the same settings.
func (c Configuration) Equal(other Configuration) bool {
	return c.clearCalls == other.clearCalls &&
		c.muted == other.muted &&
		c.floodDelay == other.floodDelay &&
		c.maintained == other.maintained &&
		c.poompDelay == other.poompDelay &&
		c.assetsDir == other.assetsDir
}
