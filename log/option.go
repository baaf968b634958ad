package log

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLevel returns an option setting the minimum log level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat returns an option setting the output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout returns an option setting the timestamp layout.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		if layout != "" {
			cfg.timeLayout = layout
		}

		return cfg
	}
}

// WithCaller returns an option toggling caller information.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty returns an option toggling colorized pretty printing for the
// text format. It has no effect on the JSON format.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}
