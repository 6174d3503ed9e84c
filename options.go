package escapify

// EscapeOptions holds options for a single Escape call.
type EscapeOptions struct {
	// PreserveBackslashes keeps already-doubled backslashes from being
	// doubled again. Set it when re-escaping text that has been through
	// Escape once.
	PreserveBackslashes bool
}

// Option is a function that configures EscapeOptions.
type Option func(*EscapeOptions)

// WithPreservedBackslashes sets whether doubled backslashes in the input
// are kept as-is instead of being doubled again.
func WithPreservedBackslashes(keep bool) Option {
	return func(opts *EscapeOptions) {
		opts.PreserveBackslashes = keep
	}
}

// defaultEscapeOptions returns the default escape options.
func defaultEscapeOptions() *EscapeOptions {
	return &EscapeOptions{}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *EscapeOptions {
	options := defaultEscapeOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
