package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteCatalog(t *testing.T) {
	path := WriteCatalog(t, "names.txt", "Zelda\n")
	if filepath.Base(path) != "names.txt" {
		t.Errorf("WriteCatalog() path = %q, want names.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Zelda\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFile_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	path := WriteFile(t, dir, "x.yaml", "k: v\n")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestSetupConfigHome(t *testing.T) {
	dir := SetupConfigHome(t)
	if got := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "searchbox"); got != dir {
		t.Errorf("SetupConfigHome() = %q, want %q", dir, got)
	}
}

func TestReceiveAndNever(t *testing.T) {
	ch := make(chan int, 1)
	Never(t, ch, 10*time.Millisecond, "value")

	ch <- 7
	if got := Receive(t, ch, time.Second, "value"); got != 7 {
		t.Errorf("Receive() = %d, want 7", got)
	}
}
