package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/redhat-developer/kexec/pkg/config"
	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
)

func TestReference(t *testing.T) {
	ctx := envcontext.WithEnvConfig(context.Background(), config.Configuration{})
	root, err := NewCmdKexec(ctx, KexecRecommendedName, KexecRecommendedName, clientset.Clientset{})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{referenceCommandName})
	if err = root.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"# kexec",
		"[exec](#exec)",
		"[module](#module)",
		"## exec",
		"--insecure-skip-tls-verify",
		"kexec module /tmp/ansible-tmp/args",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("reference does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "[reference](#reference)") {
		t.Error("the reference command is hidden and should not be listed")
	}
}
