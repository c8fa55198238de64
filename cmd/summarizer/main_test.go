package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown command", []string{"-config", missing, "publish"}, 2},
		{"run without video", []string{"-config", missing, "run"}, 2},
		{"missing config file", []string{"-config", missing, "-env", "", "serve"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs, oldFlags := os.Args, flag.CommandLine
			defer func() { os.Args, flag.CommandLine = oldArgs, oldFlags }()

			os.Args = append([]string{"summarizer"}, tt.args...)
			flag.CommandLine = flag.NewFlagSet("summarizer", flag.ContinueOnError)
			flag.CommandLine.SetOutput(io.Discard)

			if got := run(); got != tt.want {
				t.Errorf("run() = %d, want %d", got, tt.want)
			}
		})
	}
}
