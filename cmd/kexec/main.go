package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/config"
	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/cli"
	"github.com/redhat-developer/kexec/pkg/kexec/cli/module"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
)

func main() {
	klog.InitFlags(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envConfig, err := config.GetConfiguration(ctx)
	if err != nil {
		util.LogErrorAndExit(err, "")
	}
	ctx = envcontext.WithEnvConfig(ctx, *envConfig)

	// create the complete command
	root, err := cli.NewCmdKexec(ctx, cli.KexecRecommendedName, cli.KexecRecommendedName, clientset.Clientset{})
	if err != nil {
		util.LogErrorAndExit(err, "")
	}
	root.SetArgs(dispatchModule(afero.NewOsFs(), root, os.Args[1:]))

	err = root.ExecuteContext(ctx)
	stop()
	util.LogErrorAndExit(err, "")
}

// dispatchModule runs the module command when the only argument is an existing file,
// which is how Ansible calls a binary module dropped in a library/ directory
func dispatchModule(fs afero.Fs, root *cobra.Command, args []string) []string {
	if len(args) != 1 {
		return args
	}
	if cmd, _, err := root.Find(args); err == nil && cmd != root {
		return args
	}
	info, err := fs.Stat(args[0])
	if err != nil || info.IsDir() {
		return args
	}
	klog.V(4).Infof("running as an Ansible module with arguments file %q", args[0])
	return []string{module.RecommendedCommandName, args[0]}
}
