package machineoutput

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/redhat-developer/kexec/pkg/exec"
)

// APIVersion is the version of the machine readable output
const APIVersion = "kexec.dev/v1alpha1"

// Error for machine readable output error messages
type Error struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Message           string `json:"message"`
}

// ExecOutput is the machine readable output of a command run in a pod.
// The pod is the object name; its namespace and the container used are in the metadata.
type ExecOutput struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Container         string `json:"container"`
	exec.Result       `json:",inline"`
}

func NewExecOutput(result exec.Result) ExecOutput {
	return ExecOutput{
		TypeMeta: metav1.TypeMeta{
			Kind:       "ExecResult",
			APIVersion: APIVersion,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      result.Pod,
			Namespace: result.Namespace,
		},
		Container: result.Container,
		Result:    result,
	}
}

func NewError(err error) Error {
	return Error{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Error",
			APIVersion: APIVersion,
		},
		Message: err.Error(),
	}
}
