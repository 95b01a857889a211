package module

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	ktemplates "k8s.io/kubectl/pkg/util/templates"

	"github.com/redhat-developer/kexec/pkg/ansible"
	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
)

// RecommendedCommandName is the recommended module command name
const RecommendedCommandName = "module"

// checkModeMsg is reported when Ansible runs the module in check mode
const checkModeMsg = "remote module does not support check mode"

var moduleLongDesc = ktemplates.LongDesc(`
	Run as an Ansible module.

	The arguments of the module are read from ARGS_FILE, a JSON (or YAML) object written by
	Ansible. The result is printed on the standard output as a single JSON object, and the
	exit status is 1 when the module failed.

	Connection settings missing from the arguments are read from the K8S_AUTH_* environment
	variables, then from the kubeconfig file.`)

var moduleExample = ktemplates.Examples(`
	# Run the module with the arguments written by Ansible
	%[1]s /tmp/ansible-tmp/args

	# The binary can also be dropped in a library/ directory and called by Ansible directly
	kexec /tmp/ansible-tmp/args`)

// ModuleOptions encapsulates the options for the kexec module command
type ModuleOptions struct {
	// Clients
	clientset *clientset.Clientset

	cmd      *cobra.Command
	argsFile string
}

var _ genericclioptions.Runnable = (*ModuleOptions)(nil)

// NewModuleOptions creates a new ModuleOptions instance
func NewModuleOptions() *ModuleOptions {
	return &ModuleOptions{}
}

func (o *ModuleOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

// Complete completes ModuleOptions after they have been created
func (o *ModuleOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) error {
	o.cmd = cmd
	o.argsFile = args[0]
	return nil
}

// Validate validates the ModuleOptions based on completed values.
// Invalid module arguments are reported by Run, as a failed module response.
func (o *ModuleOptions) Validate(ctx context.Context) error {
	return nil
}

// Run contains the logic for the kexec module command
func (o *ModuleOptions) Run(ctx context.Context) error {
	args, err := ansible.ReadArgs(o.clientset.FS, o.argsFile)
	if err != nil {
		return o.fail(err, nil)
	}
	if args.CheckMode {
		return o.write(ansible.Skip(checkModeMsg, args))
	}

	params := args.Params()
	if err = params.Validate(); err != nil {
		return o.fail(err, &args)
	}
	auth, err := args.AuthOptions().Merge(envcontext.GetEnvConfig(ctx))
	if err != nil {
		return o.fail(err, &args)
	}
	if err = clientset.Connect(o.cmd, o.clientset, auth); err != nil {
		return o.fail(err, &args)
	}

	// stdout carries the module response only, the command output is never echoed
	result, err := o.clientset.ExecClient.ExecuteCommand(ctx, params, nil, nil)
	if err != nil {
		return o.fail(err, &args)
	}
	if err = o.write(ansible.Success(result, args)); err != nil {
		return err
	}
	if result.Failed {
		return util.ExitCodeError{Code: 1}
	}
	return nil
}

func (o *ModuleOptions) fail(err error, args *ansible.ModuleArgs) error {
	klog.V(2).Infof("module failed: %v", err)
	if writeErr := o.write(ansible.Failure(err, args)); writeErr != nil {
		return writeErr
	}
	return util.ExitCodeError{Code: 1}
}

func (o *ModuleOptions) write(response ansible.Response) error {
	if err := response.Write(o.clientset.Stdout); err != nil {
		return fmt.Errorf("unable to write the module response: %w", err)
	}
	return nil
}

// NewCmdModule implements the kexec module command
func NewCmdModule(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewModuleOptions()
	moduleCmd := &cobra.Command{
		Use:     name + " ARGS_FILE",
		Short:   "Run as an Ansible module",
		Long:    moduleLongDesc,
		Example: fmt.Sprintf(moduleExample, fullName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
	}
	clientset.Add(moduleCmd, clientset.EXEC, clientset.FILESYSTEM)

	moduleCmd.Annotations["command"] = "main"
	moduleCmd.SetUsageTemplate(util.CmdUsageTemplate)

	return moduleCmd
}
