package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

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

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestGetCustomDownloadsDir(t *testing.T) {
	dir, err := GetCustomDownloadsDir("")
	if err != nil {
		t.Fatalf("Failed to get custom directory: %v", err)
	}
	if filepath.Base(dir) != CustomFolderName {
		t.Errorf("Expected default folder %s, got %s", CustomFolderName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != DownloadsFolderName {
		t.Errorf("Custom folder should live under Downloads, got %s", dir)
	}

	dir, err = GetCustomDownloadsDir("Clips")
	if err != nil {
		t.Fatalf("Failed to get custom directory: %v", err)
	}
	if filepath.Base(dir) != "Clips" {
		t.Errorf("Expected folder Clips, got %s", dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_UsesPlatformCommand(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skip("unsupported platform")
	}

	file := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	var gotName string
	var gotArgs []string
	orig := runCommand
	runCommand = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}
	defer func() { runCommand = orig }()

	if err := OpenFileWithDefaultApp(file); err != nil {
		t.Fatalf("OpenFileWithDefaultApp failed: %v", err)
	}
	if gotName == "" {
		t.Fatal("Expected a command to be run")
	}
	if gotArgs[len(gotArgs)-1] != file {
		t.Errorf("Expected last argument %s, got %v", file, gotArgs)
	}
}
