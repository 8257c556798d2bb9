package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "digests", "nested")

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestWriteDigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hello.txt")

	if err := WriteDigestFile(path, "digest body"); err != nil {
		t.Fatalf("Failed to write digest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read digest back: %v", err)
	}
	if string(data) != "digest body" {
		t.Errorf("Digest content = %q, expected %q", string(data), "digest body")
	}
}

func TestDigestFilename(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"https://github.com/octocat/hello", "hello.txt"},
		{"https://github.com/octocat/hello.git", "hello.txt"},
		{"https://github.com/octocat/hello/", "hello.txt"},
		{"octocat/hello", "hello.txt"},
		{"/home/user/projects/myrepo", "myrepo.txt"},
		{"https://github.com/octocat/hello?ref=main", "hello.txt"},
		{"", "digest.txt"},
		{".", "digest.txt"},
	}

	for _, tt := range tests {
		if got := DigestFilename(tt.source); got != tt.expected {
			t.Errorf("DigestFilename(%q) = %q, expected %q", tt.source, got, tt.expected)
		}
	}
}

func TestOpenFileInManagerNonExistentFile(t *testing.T) {
	nonExistent := filepath.Join(t.TempDir(), "nonexistent.txt")

	if err := OpenFileInManager(nonExistent); err == nil {
		t.Error("Expected error for non-existent file")
	}
}
