package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
		want    string
	}{
		{
			name:    "simple value",
			content: "REPO_PATH=/home/user/repo",
			key:     "REPO_PATH",
			want:    "/home/user/repo",
		},
		{
			name:    "double quoted",
			content: `REPO_PATH="/home/user/my repo"`,
			key:     "REPO_PATH",
			want:    "/home/user/my repo",
		},
		{
			name:    "single quoted",
			content: `REPO_PATH='/home/user/repo'`,
			key:     "REPO_PATH",
			want:    "/home/user/repo",
		},
		{
			name:    "whitespace around equals",
			content: "REPO_PATH = /home/user/repo",
			key:     "REPO_PATH",
			want:    "/home/user/repo",
		},
		{
			name: "comments and blank lines ignored",
			content: `# repository locations

REPO_PATH=/home/user/repo
# trailing comment`,
			key:  "REPO_PATH",
			want: "/home/user/repo",
		},
		{
			name:    "export prefix",
			content: "export DEBUG=true",
			key:     "DEBUG",
			want:    "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := cfg.Get(tt.key, ""); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestGetFallback(t *testing.T) {
	cfg, err := Load(writeConfig(t, "REPO_PATH=/repo"))
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.Get("MISSING", "default"); got != "default" {
		t.Errorf("Get(MISSING) = %q, want %q", got, "default")
	}
	if _, ok := cfg.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) ok = true, want false")
	}
}

func TestRepoPath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "current key",
			content: "REPO_PATH=/home/user/repo",
			want:    "/home/user/repo",
		},
		{
			name:    "legacy key",
			content: "REPO_PFAD_LIN=/home/user/alt",
			want:    "/home/user/alt",
		},
		{
			name: "current key wins over legacy",
			content: `REPO_PFAD_LIN=/old
REPO_PATH=/new`,
			want: "/new",
		},
		{
			name:    "empty value treated as unset",
			content: "REPO_PATH=",
			wantErr: true,
		},
		{
			name:    "no key at all",
			content: "OTHER=x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatal(err)
			}

			got, err := cfg.RepoPath()
			if (err != nil) != tt.wantErr {
				t.Fatalf("RepoPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RepoPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
