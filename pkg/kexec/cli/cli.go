package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	ktemplates "k8s.io/kubectl/pkg/util/templates"

	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/kexec/cli/exec"
	"github.com/redhat-developer/kexec/pkg/kexec/cli/module"
	"github.com/redhat-developer/kexec/pkg/kexec/cli/version"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
)

// KexecRecommendedName is the recommended kexec command name
const KexecRecommendedName = "kexec"

var (
	// We do not use ktemplates.Normalize here as it messed up the newlines..
	kexecLong = `kexec runs commands in the containers of running Kubernetes pods, and reports their output.
It can be used from a terminal, or as an Ansible module.`

	kexecExample = ktemplates.Examples(`  # Run a command in a pod
  %[1]s exec mypod -- ls -l /

  # Run as an Ansible module
  %[1]s module /path/to/args.json`)

	rootUsageTemplate = `Usage:{{if .Runnable}}
  {{if .HasAvailableFlags}}{{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if .HasAvailableSubCommands}}
  {{ .CommandPath}} [command]{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Main Commands:{{range .Commands}}{{if eq .Annotations.command "main"}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Utility Commands:{{range .Commands}}{{if or (eq .Annotations.command "utility") (eq .Name "help") }}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)

// NewCmdKexec creates a new root command for kexec.
// The environment configuration must have been set in ctx with envcontext.WithEnvConfig.
func NewCmdKexec(ctx context.Context, name, fullName string, testClientset clientset.Clientset) (*cobra.Command, error) {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:           name,
		Short:         "kexec",
		Long:          kexecLong,
		Example:       fmt.Sprintf(kexecExample, fullName),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Here we add the necessary "logging" flags.. However, we choose to hide some of these from the user
	// as they are not necessarily needed and more for advanced debugging
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	for _, hidden := range []string{
		"add_dir_header", "alsologtostderr", "log_backtrace_at", "log_dir", "log_file",
		"log_file_max_size", "logtostderr", "one_output", "skip_headers", "skip_log_headers",
		"stderrthreshold", "vmodule",
	} {
		_ = pflag.CommandLine.MarkHidden(hidden)
	}

	// Override the verbosity flag description
	if verbosity := pflag.Lookup("v"); verbosity != nil {
		verbosity.Usage += ". Level varies from 0 to 9 (default 0)."
		if level := envcontext.GetEnvConfig(ctx).LogLevel; level > 0 {
			if err := verbosity.Value.Set(strconv.Itoa(level)); err != nil {
				return nil, err
			}
		}
	}

	rootCmd.SetUsageTemplate(rootUsageTemplate)

	// Add all subcommands to base commands
	rootCmd.AddCommand(
		exec.NewCmdExec(exec.RecommendedCommandName, util.GetFullName(fullName, exec.RecommendedCommandName), testClientset),
		module.NewCmdModule(module.RecommendedCommandName, util.GetFullName(fullName, module.RecommendedCommandName), testClientset),
		version.NewCmdVersion(version.RecommendedCommandName, util.GetFullName(fullName, version.RecommendedCommandName), testClientset),
	)
	rootCmd.AddCommand(newCmdReference(rootCmd))

	return rootCmd, nil
}
