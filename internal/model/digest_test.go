package model

import (
	"strings"
	"testing"
)

func TestDigestFull(t *testing.T) {
	d := Digest{
		Tree:    "Directory structure:\n└── repo/",
		Content: "FILE: README.md\nhello",
	}

	full := d.Full()
	if !strings.HasPrefix(full, d.Tree) {
		t.Errorf("Full() should start with the tree, got %q", full)
	}
	if !strings.HasSuffix(full, d.Content) {
		t.Errorf("Full() should end with the content, got %q", full)
	}
	if !strings.Contains(full, FullDigestSeparator) {
		t.Errorf("Full() should contain the separator label, got %q", full)
	}
}

func TestDigestEmpty(t *testing.T) {
	if !(Digest{}).Empty() {
		t.Error("zero Digest should be empty")
	}
	if (Digest{Summary: "x"}).Empty() {
		t.Error("Digest with a summary should not be empty")
	}
}

func TestRequestStatusString(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected string
	}{
		{StatusIdle, "Idle"},
		{StatusSubmitting, "Ingesting..."},
		{StatusCompleted, "Completed"},
		{StatusError, "Error"},
		{RequestStatus("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("%q.String() = %q, expected %q", string(tt.status), got, tt.expected)
		}
	}
}

func TestTrimmedCredentials(t *testing.T) {
	req := IngestRequest{GitUsername: "  alice ", GitPAT: "\ttoken\n"}

	user, pat := req.TrimmedCredentials()
	if user != "alice" || pat != "token" {
		t.Errorf("TrimmedCredentials() = (%q, %q), expected (alice, token)", user, pat)
	}

	if !req.HasCredentials() {
		t.Error("request with credentials should report HasCredentials")
	}
	if (IngestRequest{GitUsername: "   "}).HasCredentials() {
		t.Error("blank credentials should not report HasCredentials")
	}
}
