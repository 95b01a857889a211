package kclient

import "fmt"

// PodNotFoundError returns an error if no pod is found with the given name
type PodNotFoundError struct {
	Name      string
	Namespace string
}

func (e *PodNotFoundError) Error() string {
	return fmt.Sprintf("pod %q not found in namespace %q", e.Name, e.Namespace)
}
