package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Configuration holds the settings read from the process environment.
// The K8S_AUTH_* names are the ones the Kubernetes Ansible modules understand,
// so that an inventory configured for them works unchanged.
type Configuration struct {
	Kubeconfig string `env:"K8S_AUTH_KUBECONFIG"`
	Context    string `env:"K8S_AUTH_CONTEXT"`
	Host       string `env:"K8S_AUTH_HOST"`
	APIKey     string `env:"K8S_AUTH_API_KEY"`
	Username   string `env:"K8S_AUTH_USERNAME"`
	Password   string `env:"K8S_AUTH_PASSWORD"`
	VerifySSL  string `env:"K8S_AUTH_VERIFY_SSL"`
	CACert     string `env:"K8S_AUTH_SSL_CA_CERT"`
	CertFile   string `env:"K8S_AUTH_CERT_FILE"`
	KeyFile    string `env:"K8S_AUTH_KEY_FILE"`
	Proxy      string `env:"K8S_AUTH_PROXY"`

	// LogLevel is the default klog verbosity, overridden by -v
	LogLevel int `env:"KEXEC_LOG_LEVEL,default=0"`
}

func GetConfiguration(ctx context.Context) (*Configuration, error) {
	return GetConfigurationWith(ctx, envconfig.OsLookuper())
}

func GetConfigurationWith(ctx context.Context, lookuper envconfig.Lookuper) (*Configuration, error) {
	var s Configuration
	err := envconfig.ProcessWith(ctx, &s, lookuper)
	if err != nil {
		return nil, err
	}
	if _, err = s.ValidateCerts(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateCerts returns the parsed value of K8S_AUTH_VERIFY_SSL, or nil if it is not set.
// yes/no and on/off are accepted along with the usual boolean spellings.
func (c Configuration) ValidateCerts() (*bool, error) {
	if c.VerifySSL == "" {
		return nil, nil
	}
	switch strings.ToLower(c.VerifySSL) {
	case "yes", "on", "y":
		v := true
		return &v, nil
	case "no", "off", "n":
		v := false
		return &v, nil
	}
	v, err := strconv.ParseBool(c.VerifySSL)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for K8S_AUTH_VERIFY_SSL: %w", c.VerifySSL, err)
	}
	return &v, nil
}
