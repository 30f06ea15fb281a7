package pipeline

// Config holds configuration for the pipeline.
type Config struct {
	// CreatedBuffer is the size of the created-quotes output channel.
	CreatedBuffer int
	// UpdatedBuffer is the size of the updates output channel.
	UpdatedBuffer int
	// DropOnOverflow determines whether the output channels drop on
	// overflow instead of blocking the forwarders.
	DropOnOverflow bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		CreatedBuffer:  256,
		UpdatedBuffer:  1024,
		DropOnOverflow: false,
	}
}
