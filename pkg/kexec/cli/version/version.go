package version

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/klog/v2"
	ktemplates "k8s.io/kubectl/pkg/util/templates"

	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
	kexecversion "github.com/redhat-developer/kexec/pkg/version"
)

// RecommendedCommandName is the recommended version command name
const RecommendedCommandName = "version"

var versionLongDesc = ktemplates.LongDesc("Print the client version information, and the version of the Kubernetes cluster")

var versionExample = ktemplates.Examples(`
# Print the client and cluster versions
%[1]s

# Print the client version of kexec
%[1]s --client`,
)

// VersionOptions encapsulates all options for kexec version command
type VersionOptions struct {
	// Clients
	clientset *clientset.Clientset

	// clientFlag indicates if the user only wants client information
	clientFlag bool
	authFlags  genericclioptions.AuthFlags

	cmd *cobra.Command
	// serverInfo contains the remote server information if the user asked for it, nil otherwise
	serverInfo *version.Info
	serverHost string
}

var _ genericclioptions.Runnable = (*VersionOptions)(nil)

// NewVersionOptions creates a new VersionOptions instance
func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func (o *VersionOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

// Complete completes VersionOptions after they have been created
func (o *VersionOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) error {
	o.cmd = cmd
	if o.clientFlag {
		return nil
	}
	// Let's fetch the info about the server, ignoring errors
	auth, err := o.authFlags.Resolve(cmd).Merge(envcontext.GetEnvConfig(ctx))
	if err == nil {
		err = clientset.Connect(cmd, o.clientset, auth)
	}
	if err != nil {
		klog.V(4).Infof("unable to connect to the cluster: %v", err)
		return nil
	}
	o.serverInfo, err = o.clientset.KubernetesClient.GetServerVersion()
	if err != nil {
		klog.V(4).Infof("unable to get the server version: %v", err)
		o.serverInfo = nil
		return nil
	}
	if restConfig := o.clientset.KubernetesClient.GetClientConfig(); restConfig != nil {
		o.serverHost = restConfig.Host
	}
	return nil
}

// Validate validates the VersionOptions based on completed values
func (o *VersionOptions) Validate(ctx context.Context) (err error) {
	return nil
}

// Run contains the logic for the kexec version command
func (o *VersionOptions) Run(ctx context.Context) (err error) {
	fmt.Fprintln(o.clientset.Stdout, "kexec "+kexecversion.VERSION+" ("+kexecversion.GITCOMMIT+")")

	if o.clientFlag || o.serverInfo == nil {
		return nil
	}
	fmt.Fprintln(o.clientset.Stdout)
	table := tablewriter.NewWriter(o.clientset.Stdout)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk([][]string{
		{"Server:", o.serverHost},
		{"Kubernetes:", o.serverInfo.GitVersion},
		{"Platform:", o.serverInfo.Platform},
	})
	table.Render()
	return nil
}

// NewCmdVersion implements the version kexec command
func NewCmdVersion(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewVersionOptions()
	// versionCmd represents the version command
	var versionCmd = &cobra.Command{
		Use:     name,
		Short:   versionLongDesc,
		Long:    versionLongDesc,
		Example: fmt.Sprintf(versionExample, fullName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
	}
	clientset.Add(versionCmd, clientset.KUBERNETES)

	// Add a defined annotation in order to appear in the help menu
	versionCmd.Annotations["command"] = "utility"
	versionCmd.SetUsageTemplate(util.CmdUsageTemplate)
	versionCmd.Flags().BoolVar(&o.clientFlag, "client", false, "Client version only (no server required).")
	genericclioptions.AddAuthFlags(versionCmd, &o.authFlags)

	return versionCmd
}
