package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_wrapWarningMessage(t *testing.T) {
	tests := []struct {
		name        string
		fullMessage string
		want        string
	}{
		{
			name:        "empty message",
			fullMessage: "",
			want:        "",
		},
		{
			name:        "single-line message",
			fullMessage: "TLS verification is disabled",
			want: `============================
TLS verification is disabled
============================`,
		},
		{
			name: "multi-line message",
			fullMessage: `
Certificates of the API server will not be verified.
Use it for test clusters only.
`,
			want: `====================================================

Certificates of the API server will not be verified.
Use it for test clusters only.

====================================================`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWarningMessage(tt.fullMessage)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wrapWarningMessage() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatus_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatus(&buf)
	s.Start("Executing command in pod nodejs", false)
	s.End(true)
	s.End(false) // no status anymore, prints nothing

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "Executing command in pod nodejs  ...") {
		t.Errorf("unexpected start line %q", lines[0])
	}
	if !strings.Contains(lines[1], "✓") || !strings.Contains(lines[1], "Executing command in pod nodejs") {
		t.Errorf("unexpected end line %q", lines[1])
	}
}

func TestSetOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	Successf("done %d", 1)
	Errorf("failed %d", 2)
	restore()

	if !strings.Contains(out.String(), "done 1") {
		t.Errorf("stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "failed 2") {
		t.Errorf("stderr got %q", errOut.String())
	}
	if GetStdout() == &out {
		t.Error("stdout was not restored")
	}
}
