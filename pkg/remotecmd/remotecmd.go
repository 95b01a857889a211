package remotecmd

import (
	"context"
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/kclient"
)

// Execute executes the given command in the pod's container and returns what it wrote on stdout and stderr.
// No stdin is attached and no TTY is allocated.
// Non-nil consoleOut and consoleErr receive a copy of the output as it arrives.
// The output read before a failure is returned along with the error.
func Execute(
	ctx context.Context,
	client kclient.ClientInterface,
	podName string,
	containerName string,
	consoleOut io.Writer,
	consoleErr io.Writer,
	cmd ...string,
) (*Output, error) {
	stdout := &chunkWriter{stream: "stdout", console: consoleOut}
	stderr := &chunkWriter{stream: "stderr", console: consoleErr}

	klog.V(2).Infof("Executing command %v for pod: %v in container: %v", cmd, podName, containerName)

	err := client.ExecCMDInContainer(ctx, containerName, podName, cmd, stdout, stderr, nil, false)

	out := &Output{
		StdoutChunks: stdout.Chunks(),
		StderrChunks: stderr.Chunks(),
	}
	if err != nil {
		klog.V(2).Infof("ExecCMDInContainer returned an err: %v. for command '%v'. stderr: %v", err, cmd, out.Stderr())
		return out, fmt.Errorf("unable to exec command %v: %w", cmd, err)
	}
	return out, nil
}
