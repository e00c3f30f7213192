package sign

import "go.uber.org/zap"

// DefaultMaxNonceAttempts bounds the number of nonces drawn by Sign before
// it gives up with ecerr.ErrSigningRetryExhausted.
const DefaultMaxNonceAttempts = 64

// Option configures Sign and the batch functions.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	maxAttempts int
	workers     int
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      zap.NewNop(),
		maxAttempts: DefaultMaxNonceAttempts,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxNonceAttempts overrides DefaultMaxNonceAttempts.
func WithMaxNonceAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithWorkers limits the number of concurrent goroutines used by SignBatch
// and VerifyBatch. Zero means no limit.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.workers = n
		}
	}
}
