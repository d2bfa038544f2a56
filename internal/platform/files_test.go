package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "a", "b", "c")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
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

func TestEnsureDir_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := EnsureDir(fs, "/dl/nested"); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	ok, err := afero.DirExists(fs, "/dl/nested")
	if err != nil || !ok {
		t.Fatalf("Expected /dl/nested to exist, got ok=%v err=%v", ok, err)
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/dl", []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(fs, "/dl")
	if err == nil {
		t.Fatal("Expected error when a file occupies the path")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestEnsureDir_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	if err := EnsureDir(fs, "/dl"); err == nil {
		t.Fatal("Expected error on read-only filesystem")
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

func TestOpenFolderInManager_Missing(t *testing.T) {
	err := OpenFolderInManager(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing folder, got nil")
	}

	if !strings.Contains(err.Error(), "folder does not exist:") {
		t.Errorf("Error message should contain 'folder does not exist:', got: %v", err)
	}
}
