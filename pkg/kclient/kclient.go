package kclient

import (
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // Required for Kube clusters which use auth plugins
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/klog/v2"
)

const (
	// errorMsg is the message for user when invalid configuration error occurs
	errorMsg = `
Please ensure you have an active kubernetes context to your cluster,
or pass the connection settings explicitly (host, api_key, kubeconfig...).
Consult your Kubernetes distribution's documentation for more details
`
)

// Client is a collection of fields used for client configuration and interaction
type Client struct {
	KubeClient       kubernetes.Interface
	KubeConfig       clientcmd.ClientConfig
	KubeClientConfig *rest.Config
	Namespace        string
}

var _ ClientInterface = (*Client)(nil)

// New creates a new client from the default kubeconfig loading rules
func New() (*Client, error) {
	return NewForConfig(nil)
}

// NewForConfig creates a new client with the provided configuration or initializes the configuration if none is provided
func NewForConfig(config clientcmd.ClientConfig) (client *Client, err error) {
	if config == nil {
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		configOverrides := &clientcmd.ConfigOverrides{}
		config = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)
	}

	client = new(Client)
	client.KubeConfig = config

	client.KubeClientConfig, err = client.KubeConfig.ClientConfig()
	if err != nil {
		return nil, errors.Wrapf(err, errorMsg)
	}

	client.KubeClient, err = kubernetes.NewForConfig(client.KubeClientConfig)
	if err != nil {
		return nil, err
	}

	client.Namespace, _, err = client.KubeConfig.Namespace()
	if err != nil {
		return nil, err
	}
	klog.V(4).Infof("kubernetes client created for %s, namespace %q", client.KubeClientConfig.Host, client.Namespace)

	return client, nil
}

func (c *Client) GetClient() kubernetes.Interface {
	return c.KubeClient
}

func (c *Client) GetClientConfig() *rest.Config {
	return c.KubeClientConfig
}

// GetCurrentNamespace returns the namespace commands run against when none is given explicitly
func (c *Client) GetCurrentNamespace() string {
	return c.Namespace
}

func (c *Client) SetNamespace(ns string) {
	c.Namespace = ns
}

// GetServerVersion returns the version reported by the API server discovery endpoint
func (c *Client) GetServerVersion() (*version.Info, error) {
	return c.KubeClient.Discovery().ServerVersion()
}
