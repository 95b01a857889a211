package genericclioptions

import (
	"context"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
)

type Runnable interface {
	SetClientset(clientset *clientset.Clientset)
	Complete(ctx context.Context, cmd *cobra.Command, args []string) error
	Validate(ctx context.Context) error
	Run(ctx context.Context) error
}

// GenericRun fetches the dependencies of the command, then completes, validates and runs it
func GenericRun(o Runnable, testClientset clientset.Clientset, cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := clientset.Fetch(cmd, testClientset)
	if err != nil {
		return err
	}
	o.SetClientset(deps)

	if err = o.Complete(ctx, cmd, args); err != nil {
		return err
	}
	if err = o.Validate(ctx); err != nil {
		return err
	}
	klog.V(4).Infof("running command %q", cmd.CommandPath())
	return o.Run(ctx)
}
