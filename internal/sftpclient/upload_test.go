package sftpclient

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Host: "host", User: "user", Pass: "pass"}.withDefaults()

	if cfg.Port != 22 {
		t.Errorf("Expected default port 22, got %d", cfg.Port)
	}
	if cfg.RemoteDir != "/" {
		t.Errorf("Expected default remote dir '/', got %q", cfg.RemoteDir)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).validate(); err == nil {
		t.Error("Expected error for empty config")
	}
	if err := (Config{Host: "h", User: "u"}).validate(); err == nil {
		t.Error("Expected error for missing password")
	}
	if err := (Config{Host: "h", User: "u", Pass: "p"}).validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

// The actual transfer needs a live SFTP server; these exercise only the
// validation and failure paths.

func TestUploadFileValidation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name:          "Unresolvable host",
			cfg:           Config{Host: "sftp.invalid", User: "user", Pass: "pass"},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(ctx, tc.cfg, "catalog.json", "catalog.json")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestUploadDirValidation(t *testing.T) {
	ctx := context.Background()

	if err := UploadDir(ctx, Config{}, t.TempDir()); err == nil {
		t.Error("Expected error for empty config")
	}

	cfg := Config{Host: "sftp.invalid", User: "user", Pass: "pass"}
	err := UploadDir(ctx, cfg, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing local dir, got nil")
	}
	if !strings.Contains(err.Error(), "sftp: read local dir") {
		t.Errorf("Expected local dir error, got %q", err.Error())
	}
}

func TestUploadDirReadsLocalFirst(t *testing.T) {
	// The local dir is read before dialing, so a bad host only surfaces once
	// the directory exists.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CS.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Host: "sftp.invalid", User: "user", Pass: "pass"}
	err := UploadDir(context.Background(), cfg, dir)
	if err == nil {
		t.Fatal("Expected dial error, got nil")
	}
	if !strings.Contains(err.Error(), "sftp: dial error") {
		t.Errorf("Expected dial error, got %q", err.Error())
	}
}
