package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "search command with help",
			args:           []string{"search", "--help"},
			wantErr:        false,
			expectedOutput: "one-shot blog search",
		},
		{
			name:    "search command without pattern",
			args:    []string{"search"},
			wantErr: true,
		},
		{
			name:           "search command with invalid from time",
			args:           []string{"search", "--from", "02/01/2013", "spotify"},
			wantErr:        true,
			expectedOutput: "invalid --from value",
		},
		{
			name:           "search command with invalid to time",
			args:           []string{"search", "--from", "", "--to", "yesterday", "spotify"},
			wantErr:        true,
			expectedOutput: "invalid --to value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" {
				combined := buf.String()
				if err != nil {
					combined += err.Error()
				}
				if !strings.Contains(combined, tt.expectedOutput) {
					t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, combined)
				}
			}
		})
	}
}
