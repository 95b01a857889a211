package machineoutput

import (
	"encoding/json"
	"fmt"
	"io"

	"k8s.io/klog/v2"
)

// OutputSuccess outputs a "successful" machine-readable output format in json
func OutputSuccess(w io.Writer, machineOutput interface{}) error {
	printableOutput, err := json.MarshalIndent(machineOutput, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", printableOutput)
	return err
}

// OutputError outputs a "failed" machine-readable output format in json
func OutputError(w io.Writer, err error) {
	if outErr := OutputSuccess(w, NewError(err)); outErr != nil {
		klog.Errorf("unable to output error %q: %v", err, outErr)
	}
}
