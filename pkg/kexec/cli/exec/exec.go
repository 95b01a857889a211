package exec

import (
	"context"
	"errors"
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	ktemplates "k8s.io/kubectl/pkg/util/templates"

	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/exec"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
	"github.com/redhat-developer/kexec/pkg/log"
	"github.com/redhat-developer/kexec/pkg/machineoutput"
)

// RecommendedCommandName is the recommended exec command name
const RecommendedCommandName = "exec"

var execLongDesc = ktemplates.LongDesc(`
	Execute a command in a container of a running pod.

	The command is not run through a shell: it is split into arguments following the
	quoting rules of a POSIX shell. Its standard output and error are printed once it
	terminates, and kexec exits with the exit status of the command.`)

var execExample = ktemplates.Examples(`
	# Run a command in the default container of a pod
	%[1]s zuul-scheduler -- zuul-scheduler full-reconfigure

	# Run a command line in a given container of a pod of another namespace
	%[1]s zuul-scheduler -n zuul -c scheduler --command "ls -l /var/lib/zuul"

	# Print the result as JSON
	%[1]s zuul-scheduler -o json -- cat /etc/hostname`)

// ExecOptions encapsulates the options for the kexec exec command
type ExecOptions struct {
	// Clients
	clientset *clientset.Clientset

	// Flags
	namespaceFlag string
	containerFlag string
	commandFlag   string
	outputFlag    string
	showFlag      bool
	authFlags     genericclioptions.AuthFlags

	cmd    *cobra.Command
	params exec.Params
}

var _ genericclioptions.Runnable = (*ExecOptions)(nil)

// NewExecOptions creates a new ExecOptions instance
func NewExecOptions() *ExecOptions {
	return &ExecOptions{}
}

func (o *ExecOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

// Complete completes ExecOptions after they have been created
func (o *ExecOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) error {
	o.cmd = cmd
	if len(args) == 0 {
		return errors.New("a pod name is required")
	}

	command := o.commandFlag
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		if dash != 1 {
			return fmt.Errorf("exactly one pod name is expected before --, got %d arguments", dash)
		}
		if command != "" && len(args) > 1 {
			return errors.New("the command must be given either with --command or after --, not both")
		}
		if len(args) > 1 {
			command = shellescape.QuoteCommand(args[1:])
		}
	} else if len(args) > 1 {
		return fmt.Errorf("unexpected arguments %v, use -- to separate the command from the pod name", args[1:])
	}

	o.params = exec.Params{
		Namespace: o.namespaceFlag,
		Pod:       args[0],
		Container: o.containerFlag,
		Command:   command,
	}
	return nil
}

// Validate validates the ExecOptions based on completed values
func (o *ExecOptions) Validate(ctx context.Context) error {
	if o.outputFlag != "" && o.outputFlag != "json" {
		return fmt.Errorf("unsupported output format %q, supported format: json", o.outputFlag)
	}
	return o.params.Validate()
}

// Run contains the logic for the kexec exec command
func (o *ExecOptions) Run(ctx context.Context) error {
	jsonOutput := o.outputFlag == "json"
	result, err := o.run(ctx, jsonOutput)
	if err != nil {
		if jsonOutput {
			machineoutput.OutputError(o.clientset.Stderr, err)
			return util.ExitCodeError{Code: 1}
		}
		return err
	}

	if jsonOutput {
		if err = machineoutput.OutputSuccess(o.clientset.Stdout, machineoutput.NewExecOutput(result)); err != nil {
			return err
		}
	} else if !o.showFlag {
		// with --show, the output has already been echoed while the command was running
		fmt.Fprint(o.clientset.Stdout, result.Stdout)
		fmt.Fprint(o.clientset.Stderr, result.Stderr)
	}

	if result.Failed {
		klog.V(2).Info(result.Msg)
		return util.ExitCodeError{Code: result.RC}
	}
	return nil
}

func (o *ExecOptions) run(ctx context.Context, jsonOutput bool) (result exec.Result, err error) {
	auth, err := o.authFlags.Resolve(o.cmd).Merge(envcontext.GetEnvConfig(ctx))
	if err != nil {
		return exec.Result{}, err
	}
	if auth.ValidateCerts != nil && !*auth.ValidateCerts && !jsonOutput {
		log.Warning("The server's certificate will not be checked.\nYour connection to the cluster may be insecure.")
	}
	if err = clientset.Connect(o.cmd, o.clientset, auth); err != nil {
		return exec.Result{}, err
	}

	if !jsonOutput && !o.showFlag && log.IsTerminal(o.clientset.Stderr) {
		spinner := log.Spinnerf("Executing %s in pod %s", log.Sbold(o.params.Command), o.params.Pod)
		defer func() {
			spinner.End(err == nil && !result.Failed)
		}()
	}
	if o.showFlag && !jsonOutput {
		return o.clientset.ExecClient.ExecuteCommand(ctx, o.params, o.clientset.Stdout, o.clientset.Stderr)
	}
	return o.clientset.ExecClient.ExecuteCommand(ctx, o.params, nil, nil)
}

// NewCmdExec implements the kexec exec command
func NewCmdExec(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewExecOptions()
	execCmd := &cobra.Command{
		Use:     name + " POD [-c CONTAINER] [-n NAMESPACE] (--command COMMAND | -- COMMAND [ARGS...])",
		Short:   "Execute a command in a container of a running pod",
		Long:    execLongDesc,
		Example: fmt.Sprintf(execExample, fullName),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
	}
	clientset.Add(execCmd, clientset.EXEC)

	execCmd.Annotations["command"] = "main"
	execCmd.SetUsageTemplate(util.CmdUsageTemplate)

	execCmd.Flags().StringVarP(&o.namespaceFlag, "namespace", "n", "", "Namespace of the pod (default: the namespace of the current context)")
	execCmd.Flags().StringVarP(&o.containerFlag, "container", "c", "", "Container in which to run the command (default: the default container of the pod)")
	execCmd.Flags().StringVar(&o.commandFlag, "command", "", "Command line to run, split following POSIX shell quoting rules")
	execCmd.Flags().BoolVar(&o.showFlag, "show", false, "Print the output of the command while it is running")
	genericclioptions.AddOutputFlag(execCmd, &o.outputFlag)
	genericclioptions.AddAuthFlags(execCmd, &o.authFlags)

	return execCmd
}
