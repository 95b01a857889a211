// Package ansible implements the binary module protocol of Ansible:
// the module is run with the path of a file holding its arguments, and reports
// its result as a single JSON object on stdout.
package ansible

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/redhat-developer/kexec/pkg/exec"
	"github.com/redhat-developer/kexec/pkg/kclient"
)

// wrapperKey is the key under which some Ansible versions nest the module arguments
const wrapperKey = "ANSIBLE_MODULE_ARGS"

// ModuleArgs are the arguments accepted by the module
type ModuleArgs struct {
	Namespace string `json:"namespace,omitempty"`
	Pod       string `json:"pod,omitempty"`
	Container string `json:"container,omitempty"`
	Command   string `json:"command,omitempty"`

	Kubeconfig    string `json:"kubeconfig,omitempty"`
	Context       string `json:"context,omitempty"`
	Host          string `json:"host,omitempty"`
	APIKey        string `json:"api_key,omitempty"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	ValidateCerts *bool  `json:"validate_certs,omitempty"`
	CACert        string `json:"ca_cert,omitempty"`
	ClientCert    string `json:"client_cert,omitempty"`
	ClientKey     string `json:"client_key,omitempty"`
	Proxy         string `json:"proxy,omitempty"`

	// CheckMode is set by Ansible when the play runs with --check
	CheckMode bool `json:"-"`
}

// aliases maps alternative argument names to the canonical ones
var aliases = map[string]string{
	"verify_ssl":  "validate_certs",
	"ssl_ca_cert": "ca_cert",
	"cert_file":   "client_cert",
	"key_file":    "client_key",
}

// ignored are arguments accepted for compatibility with the other Kubernetes modules, without effect
var ignored = map[string]struct{}{
	"name":        {},
	"api_version": {},
}

// ReadArgs reads and parses the module arguments file
func ReadArgs(fs afero.Fs, path string) (ModuleArgs, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return ModuleArgs{}, fmt.Errorf("unable to read module arguments: %w", err)
	}
	return ParseArgs(data)
}

// ParseArgs parses module arguments given as a JSON or YAML object, optionally nested under ANSIBLE_MODULE_ARGS
func ParseArgs(data []byte) (ModuleArgs, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ModuleArgs{}, fmt.Errorf("module arguments are empty")
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ModuleArgs{}, fmt.Errorf("unable to parse module arguments: %w", err)
	}
	if wrapped := gjson.GetBytes(jsonData, wrapperKey); wrapped.Exists() {
		jsonData = []byte(wrapped.Raw)
	}

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(jsonData, &raw); err != nil {
		return ModuleArgs{}, fmt.Errorf("module arguments must be an object: %w", err)
	}

	canonical := map[string]json.RawMessage{}
	// names only given a null value, which stands for an argument that is not set
	unset := map[string]struct{}{}
	var args ModuleArgs
	for key, value := range raw {
		switch {
		case key == "_ansible_check_mode":
			if err = json.Unmarshal(value, &args.CheckMode); err != nil {
				return ModuleArgs{}, fmt.Errorf("invalid value for %s: %w", key, err)
			}
			continue
		case strings.HasPrefix(key, "_ansible_"):
			continue
		}
		if _, ok := ignored[key]; ok {
			continue
		}
		name := key
		if alias, ok := aliases[key]; ok {
			name = alias
		}
		if isNull(value) {
			if _, set := canonical[name]; !set {
				canonical[name] = value
				unset[name] = struct{}{}
			}
			continue
		}
		if _, dup := canonical[name]; dup {
			if _, wasUnset := unset[name]; !wasUnset {
				return ModuleArgs{}, fmt.Errorf("parameters are mutually exclusive: %s", aliasesOf(name))
			}
			delete(unset, name)
		}
		if name == "validate_certs" {
			if value, err = normalizeBool(value); err != nil {
				return ModuleArgs{}, fmt.Errorf("invalid value for %s: %w", key, err)
			}
		}
		canonical[name] = value
	}

	merged, err := json.Marshal(canonical)
	if err != nil {
		return ModuleArgs{}, err
	}
	if err = yaml.UnmarshalStrict(merged, &args); err != nil {
		return ModuleArgs{}, fmt.Errorf("unsupported module arguments: %w", err)
	}
	return args, nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// normalizeBool converts the boolean spellings Ansible accepts ("yes", "off", "1"...) to a JSON boolean
func normalizeBool(value json.RawMessage) (json.RawMessage, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		// not a string, left to the decoder
		return value, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on", "1", "true", "y", "t":
		return json.RawMessage("true"), nil
	case "no", "off", "0", "false", "n", "f":
		return json.RawMessage("false"), nil
	}
	return nil, fmt.Errorf("%q is not a valid boolean", s)
}

func aliasesOf(name string) string {
	names := []string{name}
	for alias, canonical := range aliases {
		if canonical == name {
			names = append(names, alias)
		}
	}
	return strings.Join(names, "|")
}

// Params returns the exec parameters described by the arguments
func (a ModuleArgs) Params() exec.Params {
	return exec.Params{
		Namespace: a.Namespace,
		Pod:       a.Pod,
		Container: a.Container,
		Command:   a.Command,
	}
}

// AuthOptions returns the connection settings described by the arguments
func (a ModuleArgs) AuthOptions() kclient.AuthOptions {
	return kclient.AuthOptions{
		Kubeconfig:    a.Kubeconfig,
		Context:       a.Context,
		Host:          a.Host,
		APIKey:        a.APIKey,
		Username:      a.Username,
		Password:      a.Password,
		ValidateCerts: a.ValidateCerts,
		CACert:        a.CACert,
		ClientCert:    a.ClientCert,
		ClientKey:     a.ClientKey,
		Proxy:         a.Proxy,
	}
}
