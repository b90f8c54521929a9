package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Material Search API") {
		t.Errorf("Expected version banner, got: %s", output)
	}
	if !strings.Contains(output, "Version:") {
		t.Errorf("Expected Version field, got: %s", output)
	}
}

func TestVersionCommandShortFlag(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version", "--short"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(output, "v") {
		t.Errorf("Expected short version output starting with v, got: %s", output)
	}
	if strings.Contains(output, "Git Commit:") {
		t.Errorf("Short output should not include details, got: %s", output)
	}
}
