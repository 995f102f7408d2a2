package ber

import "github.com/slonegd/gober/logger"

// DefaultMaxDepth is the default limit on constructed nesting.
const DefaultMaxDepth = 50

type options struct {
	maxDepth int
	logger   logger.Logger
}

func defaultOptions() options {
	return options{
		maxDepth: DefaultMaxDepth,
		logger:   logger.Nop(),
	}
}

// Option configures a Decoder or an Encoder
type Option func(*options)

// WithMaxDepth limits how many constructed tags may be nested.
// Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLogger sets a logger that traces every TLV header read or written
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
