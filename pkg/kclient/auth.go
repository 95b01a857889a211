package kclient

import (
	"fmt"
	"os"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/config"
)

// AuthOptions are the connection settings used to reach the API server.
// Empty fields are left to the kubeconfig (or the in-cluster configuration).
type AuthOptions struct {
	Kubeconfig string
	Context    string
	Host       string
	APIKey     string
	Username   string
	Password   string
	// ValidateCerts is nil when the kubeconfig should decide
	ValidateCerts *bool
	CACert        string
	ClientCert    string
	ClientKey     string
	Proxy         string
}

// Merge fills the fields that were not given explicitly with the values from the environment.
func (o AuthOptions) Merge(cfg config.Configuration) (AuthOptions, error) {
	pick := func(explicit, env string) string {
		if explicit != "" {
			return explicit
		}
		return env
	}
	o.Kubeconfig = pick(o.Kubeconfig, cfg.Kubeconfig)
	o.Context = pick(o.Context, cfg.Context)
	o.Host = pick(o.Host, cfg.Host)
	o.APIKey = pick(o.APIKey, cfg.APIKey)
	o.Username = pick(o.Username, cfg.Username)
	o.Password = pick(o.Password, cfg.Password)
	o.CACert = pick(o.CACert, cfg.CACert)
	o.ClientCert = pick(o.ClientCert, cfg.CertFile)
	o.ClientKey = pick(o.ClientKey, cfg.KeyFile)
	o.Proxy = pick(o.Proxy, cfg.Proxy)
	if o.ValidateCerts == nil {
		v, err := cfg.ValidateCerts()
		if err != nil {
			return o, err
		}
		o.ValidateCerts = v
	}
	return o, nil
}

// ClientConfig returns the client-go configuration described by the options
func (o AuthOptions) ClientConfig() (clientcmd.ClientConfig, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if o.Kubeconfig != "" {
		if _, err := os.Stat(o.Kubeconfig); err != nil {
			return nil, fmt.Errorf("unable to read kubeconfig %q: %w", o.Kubeconfig, err)
		}
		loadingRules.ExplicitPath = o.Kubeconfig
	}

	overrides := &clientcmd.ConfigOverrides{
		CurrentContext: o.Context,
		ClusterInfo: clientcmdapi.Cluster{
			Server:               o.Host,
			CertificateAuthority: o.CACert,
			ProxyURL:             o.Proxy,
		},
	}
	if o.ValidateCerts != nil {
		overrides.ClusterInfo.InsecureSkipTLSVerify = !*o.ValidateCerts
		if !*o.ValidateCerts {
			// client-go refuses a CA together with insecure-skip-tls-verify
			overrides.ClusterInfo.CertificateAuthority = ""
		}
	}
	overrides.AuthInfo.Token = o.APIKey
	overrides.AuthInfo.Username = o.Username
	overrides.AuthInfo.Password = o.Password
	overrides.AuthInfo.ClientCertificate = o.ClientCert
	overrides.AuthInfo.ClientKey = o.ClientKey

	klog.V(4).Infof("loading client configuration (kubeconfig=%q, context=%q, host=%q)", o.Kubeconfig, o.Context, o.Host)
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides), nil
}

// NewForAuth creates a new client from the given connection settings
func NewForAuth(o AuthOptions) (*Client, error) {
	cfg, err := o.ClientConfig()
	if err != nil {
		return nil, err
	}
	return NewForConfig(cfg)
}
