package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/config"
	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/cli"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/log"
)

func resetGlobalFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	klog.InitFlags(nil)
}

type runOptions struct {
	config map[string]string
}

func runCommand(
	t *testing.T,
	args []string,
	options runOptions,
	clientset clientset.Clientset,
	f func(err error, stdout, stderr string),
) {
	ctx := context.Background()
	envConfig, err := config.GetConfigurationWith(ctx, envconfig.MapLookuper(options.config))
	if err != nil {
		t.Fatal(err)
	}
	ctx = envcontext.WithEnvConfig(ctx, *envConfig)

	resetGlobalFlags()

	var stdoutB, stderrB bytes.Buffer

	restore := log.SetOutput(&stdoutB, &stderrB)
	defer restore()

	clientset.Stdout = &stdoutB
	clientset.Stderr = &stderrB
	root, err := cli.NewCmdKexec(ctx, cli.KexecRecommendedName, cli.KexecRecommendedName, clientset)
	if err != nil {
		t.Fatal(err)
	}

	root.SetOut(&stdoutB)
	root.SetErr(&stderrB)

	root.SetArgs(args)

	err = root.ExecuteContext(ctx)

	f(err, stdoutB.String(), stderrB.String())
}
