package core

import "errors"

// Error kinds shared by the hosts. Wrap them with fmt.Errorf("...: %w") and
// test with errors.Is.
var (
	// ErrInit marks failures while preparing a session: configuration,
	// fonts, storage, host keys. Startup aborts on these.
	ErrInit = errors.New("initialization failed")

	// ErrGameEnded is returned by hosts when the player confirmed an end
	// screen. The CLI maps it to a non-zero exit status.
	ErrGameEnded = errors.New("game ended")
)
