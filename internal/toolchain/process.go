package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Process is a running player started by StartPlayback
type Process struct {
	cmd  *exec.Cmd
	done chan struct{}
	err  error // exit error, valid once done is closed
}

// startProcess starts name with args, discarding its output, and reaps it
// in the background.
func startProcess(name string, args []string) (*Process, error) {
	cmd := exec.Command(name, args...)
	// nil Stdout/Stderr are connected to the null device
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &Process{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		p.err = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

// Pid returns the OS process id
func (p *Process) Pid() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Exited reports whether the process has exited
func (p *Process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Done is closed once the process has exited
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Err returns the exit error once the process has exited
func (p *Process) Err() error {
	if !p.Exited() {
		return nil
	}
	return p.err
}

// Terminate kills the process and waits up to timeout for it to exit
func (p *Process) Terminate(timeout time.Duration) error {
	if p.Exited() {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill player: %w", err)
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("player (pid %d) did not exit within %s", p.Pid(), timeout)
	}
}
