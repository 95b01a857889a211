// Package clientset is used to inject clients inside commands
//
// To use this package:
// From a command definition, use the `Add` function to declare the clients needed by the command
// Then, from the `SetClientset` method of the `Runnable` interface, you can access the clients.
// Clients talking to the cluster are only created when the command calls `Connect`,
// once it knows the connection settings.
//
// To add a new client to this package:
// - add a new constant for the client
// - if the client has sub-dependencies, define a new entry in the map of sub-dependencies
// - add the packages's client to the Clientset structure
// - complete the Fetch (or Connect) function to instantiate the package's client
package clientset

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/redhat-developer/kexec/pkg/exec"
	"github.com/redhat-developer/kexec/pkg/kclient"
	"github.com/redhat-developer/kexec/pkg/log"
)

const (
	// EXEC instantiates client for pkg/exec
	EXEC = "DEP_EXEC"
	// FILESYSTEM instantiates client for the filesystem
	FILESYSTEM = "DEP_FILESYSTEM"
	// KUBERNETES instantiates client for pkg/kclient
	KUBERNETES = "DEP_KUBERNETES"
	/* Add key for new package here */
)

// subdeps defines the sub-dependencies
// Clients will be created only once and be reused for sub-dependencies
var subdeps = map[string][]string{
	EXEC: {KUBERNETES},
	/* Add sub-dependencies here, if any */
}

type Clientset struct {
	ExecClient       exec.Client
	FS               afero.Fs
	KubernetesClient kclient.ClientInterface

	Stdout io.Writer
	Stderr io.Writer
	/* Add client by alphabetic order */
}

func Add(command *cobra.Command, dependencies ...string) {
	if command.Annotations == nil {
		command.Annotations = map[string]string{}
	}
	for _, dependency := range dependencies {
		_, ok := command.Annotations[dependency]
		// prevent infinite loop with circular dependencies
		if !ok {
			command.Annotations[dependency] = "true"
			Add(command, subdeps[dependency]...)
		}
	}
}

func isDefined(command *cobra.Command, dependency string) bool {
	_, ok := command.Annotations[dependency]
	return ok
}

// Fetch instantiates the clients not depending on the cluster.
// Clients set in testClientset are used instead of the real ones.
func Fetch(command *cobra.Command, testClientset Clientset) (*Clientset, error) {
	dep := Clientset{
		Stdout: log.GetStdout(),
		Stderr: log.GetStderr(),
	}
	if testClientset.Stdout != nil {
		dep.Stdout = testClientset.Stdout
	}
	if testClientset.Stderr != nil {
		dep.Stderr = testClientset.Stderr
	}

	/* Without sub-dependencies */
	if isDefined(command, FILESYSTEM) {
		if testClientset.FS != nil {
			dep.FS = testClientset.FS
		} else {
			dep.FS = afero.NewOsFs()
		}
	}
	if isDefined(command, KUBERNETES) {
		dep.KubernetesClient = testClientset.KubernetesClient
	}

	/* With sub-dependencies */
	if isDefined(command, EXEC) {
		dep.ExecClient = testClientset.ExecClient
	}

	return &dep, nil
}

// Connect instantiates the clients talking to the cluster, using the given connection settings.
// Clients already set (by tests) are kept.
func Connect(command *cobra.Command, dep *Clientset, auth kclient.AuthOptions) error {
	if isDefined(command, KUBERNETES) && dep.KubernetesClient == nil {
		client, err := kclient.NewForAuth(auth)
		if err != nil {
			return err
		}
		dep.KubernetesClient = client
	}
	if isDefined(command, EXEC) && dep.ExecClient == nil {
		klog.V(4).Info("creating exec client")
		dep.ExecClient = exec.NewExecClient(dep.KubernetesClient)
	}
	/* Instantiate new clients here. Take care to instantiate after all sub-dependencies */
	return nil
}
