package genericclioptions

import (
	"github.com/spf13/cobra"

	"github.com/redhat-developer/kexec/pkg/kclient"
)

const (
	// OutputFlagName is the name of the flag selecting the output format
	OutputFlagName = "output"
	// InsecureFlagName is the name of the flag disabling the server certificate check
	InsecureFlagName = "insecure-skip-tls-verify"
)

// AddOutputFlag adds a `output` flag to the given cobra command
func AddOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, OutputFlagName, "o", "", "Specify output format, supported format: json")
}

// AuthFlags are the connection flags shared by the commands talking to the cluster
type AuthFlags struct {
	kclient.AuthOptions
	insecure bool
}

// AddAuthFlags adds the connection flags to the given cobra command
func AddAuthFlags(cmd *cobra.Command, f *AuthFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file to use")
	flags.StringVar(&f.Context, "context", "", "The name of the kubeconfig context to use")
	flags.StringVar(&f.Host, "server", "", "The address and port of the Kubernetes API server")
	flags.StringVar(&f.APIKey, "token", "", "Bearer token for authentication to the API server")
	flags.StringVar(&f.Username, "username", "", "Username for basic authentication to the API server")
	flags.StringVar(&f.Password, "password", "", "Password for basic authentication to the API server")
	flags.StringVar(&f.CACert, "certificate-authority", "", "Path to a cert file for the certificate authority")
	flags.StringVar(&f.ClientCert, "client-certificate", "", "Path to a client certificate file for TLS")
	flags.StringVar(&f.ClientKey, "client-key", "", "Path to a client key file for TLS")
	flags.StringVar(&f.Proxy, "proxy-url", "", "URL of the HTTP proxy used to reach the API server")
	flags.BoolVar(&f.insecure, InsecureFlagName, false, "If true, the server's certificate will not be checked for validity")
}

// Resolve returns the connection settings given on the command line.
// Certificates validation is left to the kubeconfig unless the insecure flag is given.
func (f *AuthFlags) Resolve(cmd *cobra.Command) kclient.AuthOptions {
	opts := f.AuthOptions
	if cmd.Flags().Changed(InsecureFlagName) {
		validate := !f.insecure
		opts.ValidateCerts = &validate
	}
	return opts
}
