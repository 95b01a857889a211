package util

import (
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/log"
)

// ExitCodeError is returned by a command which already reported its outcome
// and only needs the process to exit with the given status
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// LogErrorAndExit prints the cause of the given error and exits the code with an
// exit code of 1.
// If the context is provided, then that is printed, if not, then the cause is
// detected using errors.Cause(err)
// An ExitCodeError is not printed: the process exits with its code.
func LogErrorAndExit(err error, context string, a ...interface{}) {
	if err == nil {
		return
	}
	var exitErr ExitCodeError
	if errors.As(err, &exitErr) {
		klog.V(4).Infof("exiting with status %d", exitErr.Code)
		os.Exit(exitErr.Code)
	}
	klog.V(4).Infof("Error:\n%v", err)
	if context == "" {
		log.Error(pkgerrors.Cause(err))
	} else {
		log.Errorf(fmt.Sprintf("%s\n", context), a...)
	}
	os.Exit(1)
}

var CmdUsageTemplate = `Usage:{{if .Runnable}}
  {{if .HasAvailableFlags}}{{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if .HasAvailableSubCommands}}
  {{ .CommandPath}} [command]{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}
`

// GetFullName generates a command's full name based on its parent's full name and its own name
func GetFullName(parentName, name string) string {
	return parentName + " " + name
}
