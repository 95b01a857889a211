package ansible

import (
	"encoding/json"
	"io"

	"github.com/redhat-developer/kexec/pkg/exec"
)

// noLogValue replaces the value of secret arguments in the reported invocation
const noLogValue = "VALUE_SPECIFIED_IN_NO_LOG_PARAMETER"

var noLogArgs = []string{"api_key", "password"}

// Response is the JSON object a module prints on stdout
type Response struct {
	Changed bool   `json:"changed"`
	Failed  bool   `json:"failed,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
	Msg     string `json:"msg,omitempty"`

	*exec.Result

	Invocation *Invocation `json:"invocation,omitempty"`
}

type Invocation struct {
	ModuleArgs map[string]interface{} `json:"module_args"`
}

// Success reports a command that was run, whatever its exit status
func Success(result exec.Result, args ModuleArgs) Response {
	return Response{
		Changed:    result.Changed,
		Failed:     result.Failed,
		Msg:        result.Msg,
		Result:     &result,
		Invocation: newInvocation(&args),
	}
}

// Failure reports an error that prevented the command from running.
// args is nil when the arguments could not be read.
func Failure(err error, args *ModuleArgs) Response {
	return Response{
		Failed:     true,
		Msg:        err.Error(),
		Invocation: newInvocation(args),
	}
}

// Skip reports a module that did nothing, for instance in check mode
func Skip(msg string, args ModuleArgs) Response {
	return Response{
		Skipped:    true,
		Msg:        msg,
		Invocation: newInvocation(&args),
	}
}

// Write prints the response as a single JSON object
func (r Response) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

func newInvocation(args *ModuleArgs) *Invocation {
	if args == nil {
		return nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil
	}
	moduleArgs := map[string]interface{}{}
	if err = json.Unmarshal(data, &moduleArgs); err != nil {
		return nil
	}
	for _, key := range noLogArgs {
		if _, ok := moduleArgs[key]; ok {
			moduleArgs[key] = noLogValue
		}
	}
	return &Invocation{ModuleArgs: moduleArgs}
}
