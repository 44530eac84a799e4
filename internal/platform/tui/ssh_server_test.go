package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerHostKeyErrorOpensNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o600); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "life.db")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")
	cfg.DBPath = dbPath
	cfg.Logger = log.New(io.Discard)

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("NewSSHServer() should fail when the host key directory cannot be created")
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("board database should not be opened on host key errors, stat err = %v", err)
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "life.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
	if srv.store == nil {
		t.Fatal("store should be open")
	}
	if _, err := srv.store.ListBoards(); err != nil {
		t.Fatalf("ListBoards() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.ListBoards(); err == nil {
		t.Error("store should be closed after Shutdown()")
	}
}
