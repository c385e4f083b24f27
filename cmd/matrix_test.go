package cmd

import (
	"strings"
	"testing"
)

func TestNewMatrixCmd(t *testing.T) {
	matrixCmd := newMatrixCmd()

	if matrixCmd.Use != "matrix" {
		t.Errorf("Expected Use to be 'matrix', got %s", matrixCmd.Use)
	}

	if matrixCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}

	for _, flag := range []string{"json", "github-output", "min-runtime", "max-runtime", "local-companions"} {
		if matrixCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected flag --%s to be registered", flag)
		}
	}
}

func TestParseBound(t *testing.T) {
	v, err := parseBound("", "--min-runtime")
	if err != nil {
		t.Fatalf("Empty bound should not error: %v", err)
	}
	if v != nil {
		t.Error("Empty bound should be nil")
	}

	v, err = parseBound("3.9", "--min-runtime")
	if err != nil {
		t.Fatalf("Valid bound should not error: %v", err)
	}
	if v == nil || v.String() != "3.9" {
		t.Errorf("Expected parsed bound 3.9, got %v", v)
	}

	_, err = parseBound("bogus", "--min-runtime")
	if err == nil {
		t.Error("Expected error for malformed bound")
	}
	if !strings.Contains(err.Error(), "--min-runtime") {
		t.Errorf("Error should name the flag, got: %v", err)
	}
}

func TestNewSessionsCmd(t *testing.T) {
	sessionsCmd := newSessionsCmd()

	if sessionsCmd.Name() != "sessions" {
		t.Errorf("Expected command name 'sessions', got %s", sessionsCmd.Name())
	}

	if sessionsCmd.Flags().Lookup("json") == nil {
		t.Error("Expected --json flag to be registered")
	}
}

func TestNewCheckGroupsCmd(t *testing.T) {
	checkCmd := newCheckGroupsCmd()

	if checkCmd.Use != "check-groups" {
		t.Errorf("Expected Use to be 'check-groups', got %s", checkCmd.Use)
	}

	if checkCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}
}
