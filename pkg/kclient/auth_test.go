package kclient

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/redhat-developer/kexec/pkg/config"
)

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	cfg := clientcmdapi.NewConfig()
	cfg.Clusters["dev"] = &clientcmdapi.Cluster{Server: "https://dev.example.com:6443"}
	cfg.Clusters["prod"] = &clientcmdapi.Cluster{Server: "https://prod.example.com:6443"}
	cfg.AuthInfos["dev-user"] = &clientcmdapi.AuthInfo{Token: "dev-token"}
	cfg.AuthInfos["prod-user"] = &clientcmdapi.AuthInfo{Token: "prod-token"}
	cfg.Contexts["dev"] = &clientcmdapi.Context{Cluster: "dev", AuthInfo: "dev-user", Namespace: "team-a"}
	cfg.Contexts["prod"] = &clientcmdapi.Context{Cluster: "prod", AuthInfo: "prod-user"}
	cfg.CurrentContext = "dev"

	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := clientcmd.WriteToFile(*cfg, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewForAuth(t *testing.T) {
	kubeconfig := writeKubeconfig(t)
	no := false

	tests := []struct {
		name          string
		opts          AuthOptions
		wantHost      string
		wantToken     string
		wantNamespace string
		wantInsecure  bool
		wantProxy     bool
		wantErr       bool
	}{
		{
			name:          "current context of the kubeconfig",
			opts:          AuthOptions{Kubeconfig: kubeconfig},
			wantHost:      "https://dev.example.com:6443",
			wantToken:     "dev-token",
			wantNamespace: "team-a",
		},
		{
			name:          "explicit context",
			opts:          AuthOptions{Kubeconfig: kubeconfig, Context: "prod"},
			wantHost:      "https://prod.example.com:6443",
			wantToken:     "prod-token",
			wantNamespace: "default",
		},
		{
			name: "host and api key override the kubeconfig",
			opts: AuthOptions{
				Kubeconfig:    kubeconfig,
				Host:          "https://other.example.com:6443",
				APIKey:        "sha256~abc",
				ValidateCerts: &no,
				Proxy:         "http://proxy.example.com:3128",
			},
			wantHost:      "https://other.example.com:6443",
			wantToken:     "sha256~abc",
			wantNamespace: "team-a",
			wantInsecure:  true,
			wantProxy:     true,
		},
		{
			name:    "missing kubeconfig",
			opts:    AuthOptions{Kubeconfig: filepath.Join(t.TempDir(), "nope")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewForAuth(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewForAuth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			restConfig := client.GetClientConfig()
			if restConfig.Host != tt.wantHost {
				t.Errorf("host = %q, want %q", restConfig.Host, tt.wantHost)
			}
			if restConfig.BearerToken != tt.wantToken {
				t.Errorf("token = %q, want %q", restConfig.BearerToken, tt.wantToken)
			}
			if client.GetCurrentNamespace() != tt.wantNamespace {
				t.Errorf("namespace = %q, want %q", client.GetCurrentNamespace(), tt.wantNamespace)
			}
			if restConfig.Insecure != tt.wantInsecure {
				t.Errorf("insecure = %v, want %v", restConfig.Insecure, tt.wantInsecure)
			}
			if (restConfig.Proxy != nil) != tt.wantProxy {
				t.Errorf("proxy set = %v, want %v", restConfig.Proxy != nil, tt.wantProxy)
			}
		})
	}
}

func TestAuthOptions_Merge(t *testing.T) {
	yes := true
	tests := []struct {
		name    string
		opts    AuthOptions
		env     config.Configuration
		want    AuthOptions
		wantErr bool
	}{
		{
			name: "environment fills empty fields",
			opts: AuthOptions{Host: "https://explicit:6443"},
			env: config.Configuration{
				Host:      "https://env:6443",
				APIKey:    "env-token",
				CertFile:  "/certs/tls.crt",
				KeyFile:   "/certs/tls.key",
				VerifySSL: "true",
			},
			want: AuthOptions{
				Host:          "https://explicit:6443",
				APIKey:        "env-token",
				ClientCert:    "/certs/tls.crt",
				ClientKey:     "/certs/tls.key",
				ValidateCerts: &yes,
			},
		},
		{
			name: "explicit validate certs wins",
			opts: AuthOptions{ValidateCerts: &yes},
			env:  config.Configuration{VerifySSL: "false"},
			want: AuthOptions{ValidateCerts: &yes},
		},
		{
			name:    "invalid verify ssl in environment",
			env:     config.Configuration{VerifySSL: "perhaps"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Merge(tt.env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Merge() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
