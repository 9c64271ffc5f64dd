package timer

import "codeberg.org/mutker/jitterctl/internal/errors"

// Script is a Source that replays a fixed sequence of counter values
// synchronously when armed. It exists for tests and for offline replay
// of recorded sessions.
type Script struct {
	Values []uint16
	armed  bool
}

func (s *Script) Arm(handler Handler) error {
	errFactory := errors.New()

	if s.armed {
		return errFactory.New(errors.ErrSourceArmed)
	}
	s.armed = true

	for _, v := range s.Values {
		if !handler(v) {
			break
		}
	}

	return nil
}

func (s *Script) Disarm() {
	s.armed = false
}
