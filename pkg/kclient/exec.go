package kclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/remotecommand"
	"k8s.io/klog/v2"
)

// ExecCMDInContainer executes the specified command in the container of a pod.
// If an empty string is passed as container name, the API server picks the pod's default container.
// The call blocks until the remote stream is closed or ctx is done.
// A command exiting with a non-zero status is reported as a k8s.io/utils/exec.ExitError.
func (c *Client) ExecCMDInContainer(ctx context.Context, containerName, podName string, cmd []string, stdout io.Writer, stderr io.Writer, stdin io.Reader, tty bool) error {
	u := c.execRequestURL(containerName, podName, cmd, stdout != nil, stderr != nil, stdin != nil, tty)
	klog.V(4).Infof("exec request: %s", u)

	executor, err := remotecommand.NewSPDYExecutor(c.KubeClientConfig, http.MethodPost, u)
	if err != nil {
		return err
	}

	return executor.StreamWithContext(ctx, remotecommand.StreamOptions{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Tty:    tty,
	})
}

func (c *Client) execRequestURL(containerName, podName string, cmd []string, stdout, stderr, stdin, tty bool) *url.URL {
	return c.KubeClient.CoreV1().RESTClient().
		Post().
		Namespace(c.Namespace).
		Resource("pods").
		Name(podName).
		SubResource("exec").
		VersionedParams(&corev1.PodExecOptions{
			Container: containerName,
			Command:   cmd,
			Stdin:     stdin,
			Stdout:    stdout,
			Stderr:    stderr,
			TTY:       tty,
		}, scheme.ParameterCodec).
		URL()
}
