package exec

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

// Params describes a command to run in a pod
type Params struct {
	// Namespace of the pod. The client's current namespace is used when empty.
	Namespace string
	// Pod is the name of the pod
	Pod string
	// Container is the name of the container. When empty, the pod's default container is used.
	Container string
	// Command is the command line to run. It is split using POSIX shell rules, but not run through a shell.
	Command string
}

// Validate checks that the parameters describe a command that can be run
func (p Params) Validate() error {
	if p.Pod == "" {
		return errors.New("pod is required")
	}
	_, err := p.Args()
	return err
}

// Args returns the command line split in arguments
func (p Params) Args() ([]string, error) {
	if p.Command == "" {
		return nil, errors.New("command is required")
	}
	args, err := shlex.Split(p.Command)
	if err != nil {
		return nil, fmt.Errorf("unable to parse command %q: %w", p.Command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("command %q is empty", p.Command)
	}
	return args, nil
}

// Result is the outcome of a command run in a pod
type Result struct {
	// Changed is always true once the command has been run: there is no way to know what it did
	Changed     bool     `json:"changed"`
	Stdout      string   `json:"stdout"`
	StdoutLines []string `json:"stdout_lines"`
	Stderr      string   `json:"stderr"`
	StderrLines []string `json:"stderr_lines"`
	// RC is the exit status of the command
	RC int `json:"rc"`
	// Failed is set when the command exited with a non-zero status
	Failed bool   `json:"failed"`
	Msg    string `json:"msg,omitempty"`

	Namespace string `json:"-"`
	Pod       string `json:"-"`
	Container string `json:"-"`
}
