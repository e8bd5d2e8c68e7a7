package debug

import (
	"sync"

	"github.com/zaolin/devconsole/console"
)

// Notice is the banner shown once when the console is not in an active mode
const Notice = `
      _.-'''''-._
    .'  _     _  '.
   /   (_)   (_)   \
  |  ,           ,  |
  |  \'.       .'\  |
   \  '.` + "`" + `'""'"'.'/  /
    '.  \       /  .'
      '-.......-'
      ;) Simply don't!
    `

// State holds the process-wide notice flag.
// The flag goes from false to true once and stays there until Reset.
type State struct {
	mu    sync.Mutex
	shown bool
}

var defaultState = &State{}

// DefaultState returns the state shared by Default printers
func DefaultState() *State {
	return defaultState
}

// ShowNotice prints the notice to c unless it was already shown.
// Returns true if this call printed it.
func (s *State) ShowNotice(c console.Console) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shown {
		return false
	}
	c.Print(Notice)
	s.shown = true
	return true
}

// NoticeShown reports whether the notice has been printed
func (s *State) NoticeShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// Reset clears the flag so the notice prints again
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = false
}
