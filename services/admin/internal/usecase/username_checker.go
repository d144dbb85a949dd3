package usecase

import (
	"errors"
	"sync"
	"time"

	"backoffice/services/admin/internal/entity"
)

type Availability int

const (
	// AvailabilityUnknown means no verdict: the candidate was too short,
	// was superseded, or the lookup itself failed.
	AvailabilityUnknown Availability = iota
	AvailabilityAvailable
	AvailabilityTaken
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityTaken:
		return "taken"
	}
	return "unknown"
}

const (
	minUsernameLength = 2

	// DefaultDebounce is the quiet window Check waits for after the last
	// keystroke before the lookup is issued.
	DefaultDebounce = 500 * time.Millisecond
)

// UsernameLookup is the single store access the checker needs.
type UsernameLookup interface {
	GetByUsername(username string) (*entity.User, error)
}

// UsernameChecker probes username uniqueness during account creation. Check
// is debounced: only the last candidate within the quiet window reaches the
// store; earlier pending probes are superseded.
type UsernameChecker struct {
	users    UsernameLookup
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewUsernameChecker(users UsernameLookup, debounce time.Duration) *UsernameChecker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &UsernameChecker{
		users:    users,
		debounce: debounce,
	}
}

// Check schedules a probe for candidate and reports the verdict through fn.
// A newer Check supersedes any pending or in-flight probe for this checker;
// the superseded probe's result is dropped. Candidates shorter than two
// characters reset to unknown without touching the store.
func (c *UsernameChecker) Check(candidate string, fn func(candidate string, result Availability)) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if len(candidate) < minUsernameLength {
		c.mu.Unlock()
		fn(candidate, AvailabilityUnknown)
		return
	}

	c.timer = time.AfterFunc(c.debounce, func() {
		if !c.current(seq) {
			return
		}
		result := c.Probe(candidate)
		if !c.current(seq) {
			return
		}
		fn(candidate, result)
	})
	c.mu.Unlock()
}

// Probe hits the store immediately, without debouncing. "Not found" means
// available; a lookup failure is not a verdict in either direction.
func (c *UsernameChecker) Probe(candidate string) Availability {
	if len(candidate) < minUsernameLength {
		return AvailabilityUnknown
	}

	_, err := c.users.GetByUsername(candidate)
	switch {
	case err == nil:
		return AvailabilityTaken
	case errors.Is(err, entity.ErrNotFound):
		return AvailabilityAvailable
	default:
		return AvailabilityUnknown
	}
}

func (c *UsernameChecker) current(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq == seq
}
