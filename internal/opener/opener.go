// Package opener hands file paths to the platform's default handler.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// StartFunc launches a process without waiting for it to exit.
type StartFunc func(name string, args ...string) error

// Opener implements board.Navigator with the system file handler.
type Opener struct {
	goos  string
	start StartFunc
}

// New returns an Opener for the running platform.
func New() *Opener {
	return NewWith(runtime.GOOS, startProcess)
}

// NewWith returns an Opener for goos that launches through start.
func NewWith(goos string, start StartFunc) *Opener {
	return &Opener{goos: goos, start: start}
}

// Navigate opens path with the platform handler. The path is passed through
// unchanged and the handler is not waited on.
func (o *Opener) Navigate(path string) error {
	name, args := o.Command(path)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// Command returns the program and arguments used to open path.
func (o *Opener) Command(path string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

func startProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler in the background so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Recorder is a Navigator that only remembers the paths it was given.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

// Navigate records path.
func (r *Recorder) Navigate(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

// Paths returns a copy of the recorded paths.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}
