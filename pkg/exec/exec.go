package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"
	utilexec "k8s.io/utils/exec"

	"github.com/redhat-developer/kexec/pkg/kclient"
	"github.com/redhat-developer/kexec/pkg/remotecmd"
)

// defaultContainerAnnotation names the container kubectl picks when none is given
const defaultContainerAnnotation = "kubectl.kubernetes.io/default-container"

type ExecClient struct {
	kubeClient kclient.ClientInterface
}

var _ Client = (*ExecClient)(nil)

func NewExecClient(kubeClient kclient.ClientInterface) *ExecClient {
	return &ExecClient{
		kubeClient: kubeClient,
	}
}

// ExecuteCommand runs the command in the pod's container.
// A command exiting with a non-zero status is not an error: the returned Result is marked as Failed and carries the status.
func (o *ExecClient) ExecuteCommand(ctx context.Context, params Params, stdout, stderr io.Writer) (Result, error) {
	args, err := params.Args()
	if err != nil {
		return Result{}, err
	}

	if params.Namespace != "" {
		o.kubeClient.SetNamespace(params.Namespace)
	}
	namespace := o.kubeClient.GetCurrentNamespace()

	pod, err := o.kubeClient.GetPod(ctx, params.Pod)
	if err != nil {
		return Result{}, err
	}
	container, err := resolveContainer(pod, params.Container)
	if err != nil {
		return Result{}, err
	}

	out, err := remotecmd.Execute(ctx, o.kubeClient, pod.Name, container, stdout, stderr, args...)
	result := Result{
		Namespace: namespace,
		Pod:       pod.Name,
		Container: container,
	}
	if err != nil {
		var exitErr utilexec.ExitError
		if !errors.As(err, &exitErr) {
			if partial := strings.TrimSpace(out.Stderr()); partial != "" {
				return Result{}, fmt.Errorf("failed to execute on pod %s/%s: %w\nstderr: %s", namespace, pod.Name, err, partial)
			}
			return Result{}, fmt.Errorf("failed to execute on pod %s/%s: %w", namespace, pod.Name, err)
		}
		result.RC = exitErr.ExitStatus()
		result.Failed = true
		result.Msg = fmt.Sprintf("command %q terminated with exit code %d", params.Command, result.RC)
		klog.V(2).Info(result.Msg)
	}

	result.Changed = true
	result.Stdout = out.Stdout()
	result.StdoutLines = out.StdoutLines()
	result.Stderr = out.Stderr()
	result.StderrLines = out.StderrLines()
	return result, nil
}

// resolveContainer returns the name of the container to exec into
func resolveContainer(pod *corev1.Pod, name string) (string, error) {
	if pod.Status.Phase == corev1.PodSucceeded || pod.Status.Phase == corev1.PodFailed {
		return "", fmt.Errorf("cannot exec into a container in a completed pod; current phase is %s", pod.Status.Phase)
	}

	names := containerNames(pod)
	if name != "" {
		for _, n := range names {
			if n == name {
				return name, nil
			}
		}
		return "", fmt.Errorf("container %q not found in pod %q, valid containers: %s", name, pod.Name, strings.Join(names, ", "))
	}

	if def, ok := pod.Annotations[defaultContainerAnnotation]; ok {
		for _, c := range pod.Spec.Containers {
			if c.Name == def {
				return def, nil
			}
		}
		klog.V(2).Infof("default container %q of pod %q does not exist, ignoring annotation", def, pod.Name)
	}

	if len(pod.Spec.Containers) == 0 {
		return "", fmt.Errorf("pod %q has no container", pod.Name)
	}
	if len(pod.Spec.Containers) > 1 {
		klog.V(2).Infof("Defaulted container %q out of: %s", pod.Spec.Containers[0].Name, strings.Join(names, ", "))
	}
	return pod.Spec.Containers[0].Name, nil
}

func containerNames(pod *corev1.Pod) []string {
	var names []string
	for _, c := range pod.Spec.Containers {
		names = append(names, c.Name)
	}
	for _, c := range pod.Spec.InitContainers {
		names = append(names, c.Name)
	}
	for _, c := range pod.Spec.EphemeralContainers {
		names = append(names, c.Name)
	}
	return names
}
