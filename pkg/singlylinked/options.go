package singlylinked

import "github.com/linkedkit/linkedkit/pkg/logger"

type settings struct {
	maxNodes int
	logger   logger.Logger
}

type Option func(*settings)

// WithMaxNodes caps the number of live nodes. Inserts beyond the cap fail with
// chainerr.ErrCapacityExceeded. Zero or a negative value means no cap.
func WithMaxNodes(n int) Option {
	return func(s *settings) {
		s.maxNodes = n
	}
}

// WithLogger sets the logger that rejected operations are reported to at debug level.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
