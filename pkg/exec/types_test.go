package exec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParams_Args(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
		wantErr bool
	}{
		{
			name:    "simple command",
			command: "zuul-scheduler full-reconfigure",
			want:    []string{"zuul-scheduler", "full-reconfigure"},
		},
		{
			name:    "quoted arguments",
			command: `sh -c "echo 'hello world' && ls -l /tmp"`,
			want:    []string{"sh", "-c", "echo 'hello world' && ls -l /tmp"},
		},
		{
			name:    "escaped space",
			command: `cat /data/my\ file`,
			want:    []string{"cat", "/data/my file"},
		},
		{
			name:    "empty command",
			command: "",
			wantErr: true,
		},
		{
			name:    "blank command",
			command: "   ",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			command: `echo "hello`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Params{Pod: "pod", Command: tt.command}.Args()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Args() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Args() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	if err := (Params{Command: "ls"}).Validate(); err == nil {
		t.Error("expected an error when pod is missing")
	}
	if err := (Params{Pod: "nodejs"}).Validate(); err == nil {
		t.Error("expected an error when command is missing")
	}
	if err := (Params{Pod: "nodejs", Command: "ls -l"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
