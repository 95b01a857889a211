package kclient

import (
	"context"
	"io"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

type ClientInterface interface {

	// kclient.go
	GetClient() kubernetes.Interface
	GetClientConfig() *rest.Config
	GetCurrentNamespace() string
	SetNamespace(ns string)
	GetServerVersion() (*version.Info, error)

	// pods.go
	GetPod(ctx context.Context, name string) (*corev1.Pod, error)

	// exec.go
	ExecCMDInContainer(ctx context.Context, containerName, podName string, cmd []string, stdout io.Writer, stderr io.Writer, stdin io.Reader, tty bool) error
}
