// Package log contains the user-facing output of kexec.
// Debug traces go through klog instead.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/log/fidget"
)

// Spacing for logging
const suffixSpacing = " "

var (
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error
)

// GetStdout returns the writer used for regular output
func GetStdout() io.Writer {
	return stdout
}

// GetStderr returns the writer used for error output
func GetStderr() io.Writer {
	return stderr
}

// SetOutput replaces the writers used for regular and error output, and returns a function restoring them
func SetOutput(out, errOut io.Writer) (restore func()) {
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		stdout, stderr = prevOut, prevErr
	}
}

// Status is used to track ongoing status in a CLI, with a nice loading spinner
// when attached to a terminal
type Status struct {
	spinner *fidget.Spinner
	status  string
	writer  io.Writer
}

// NewStatus creates a new default Status
func NewStatus(w io.Writer) *Status {
	return &Status{
		spinner: fidget.NewSpinner(w),
		writer:  w,
	}
}

// IsTerminal returns true if the writer w is a terminal
func IsTerminal(w io.Writer) bool {
	if v, ok := (w).(*os.File); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}

// Start starts a new phase of the status, if attached to a terminal
// there will be a loading spinner with this status
func (s *Status) Start(status string, debug bool) {
	s.End(true)
	s.status = status

	// If we are in debug mode, don't spin!
	if !IsTerminal(s.writer) || debug {
		fmt.Fprintf(s.writer, " •  %s  ...\n", s.status)
		return
	}
	s.spinner.SetSuffix(fmt.Sprintf("  %s", s.status))
	s.spinner.Start()
}

// End completes the current status, ending any previous spinning and
// marking the status as success or failure
func (s *Status) End(success bool) {
	if s.status == "" {
		return
	}

	if IsTerminal(s.writer) {
		s.spinner.Stop()
		fmt.Fprint(s.writer, "\r")
	}

	timeSpent := s.spinner.TimeSpent()
	if success {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(s.writer, " %s  %s [%s]\n", green("✓"), s.status, timeSpent)
	} else {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(s.writer, " %s  %s [%s]\n", red("✗"), s.status, timeSpent)
	}

	s.status = ""
}

// Successf will output in an appropriate "progress" manner
func Successf(format string, a ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(GetStdout(), " %s%s%s\n", green("✓"), suffixSpacing, fmt.Sprintf(format, a...))
}

// Warningf will output in an appropriate "warning" manner
func Warningf(format string, a ...interface{}) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(GetStderr(), " %s%s%s\n", yellow("⚠"), suffixSpacing, fmt.Sprintf(format, a...))
}

// Errorf will output in an appropriate "progress" manner
func Errorf(format string, a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(GetStderr(), " %s%s%s\n", red("✗"), suffixSpacing, fmt.Sprintf(format, a...))
}

// Error will output in an appropriate "progress" manner
func Error(a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(GetStderr(), " %s%s%s", red("✗"), suffixSpacing, fmt.Sprintln(a...))
}

// Infof will simply print out information on a new (bolded) line
func Infof(format string, a ...interface{}) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(GetStdout(), "%s\n", bold(fmt.Sprintf(format, a...)))
}

// Spinnerf creates a spinner, sets the prefix then returns it.
// Remember to use .End(bool) to stop the spin / when you're done.
// For example: defer s.End(false)
func Spinnerf(format string, a ...interface{}) *Status {
	s := NewStatus(GetStderr())
	s.Start(fmt.Sprintf(format, a...), IsDebug())
	return s
}

// Sbold will return a bold string
func Sbold(s string) string {
	bold := color.New(color.Bold).SprintFunc()
	return bold(s)
}

// IsDebug returns true if we are debugging (-v is set to anything but 0)
func IsDebug() bool {
	return klog.V(1).Enabled()
}

// wrapWarningMessage surrounds a message with "=" lines as wide as its longest line
func wrapWarningMessage(fullMessage string) string {
	if strings.TrimSpace(fullMessage) == "" {
		return fullMessage
	}
	width := 0
	for _, line := range strings.Split(fullMessage, "\n") {
		if len(line) > width {
			width = len(line)
		}
	}
	rule := strings.Repeat("=", width)
	return fmt.Sprintf("%[1]s\n%[2]s\n%[1]s", rule, fullMessage)
}

// Warning prints a message surrounded by "=" lines, for warnings the user must not miss
func Warning(fullMessage string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintln(GetStderr(), yellow(wrapWarningMessage(fullMessage)))
}
