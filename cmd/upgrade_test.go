package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsGitRepo(t *testing.T) {
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git: %v", err)
	}
	plainFile := t.TempDir()
	if err := os.WriteFile(filepath.Join(plainFile, ".git"), []byte("gitdir: elsewhere"), 0644); err != nil {
		t.Fatalf("Failed to write .git file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"repository", repo, true},
		{"plain directory", t.TempDir(), false},
		{".git file", plainFile, false},
		{"non-existent path", "/nonexistent/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGitRepo(tt.path); got != tt.want {
				t.Errorf("isGitRepo(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := os.WriteFile(src, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old content that is longer"), 0644); err != nil {
		t.Fatalf("Failed to write destination: %v", err)
	}

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"valid copy", src, false},
		{"non-existent source", filepath.Join(dir, "missing"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := copyFile(tt.src, dst)
			if (err != nil) != tt.wantErr {
				t.Fatalf("copyFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got, err := os.ReadFile(dst)
			if err != nil {
				t.Fatalf("Failed to read destination: %v", err)
			}
			if string(got) != "test content" {
				t.Errorf("destination = %q, want %q", got, "test content")
			}
		})
	}
}

func TestFindRepository_WorkingDirectory(t *testing.T) {
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git: %v", err)
	}
	t.Chdir(repo)

	got, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(repo)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("findRepository() = %q, want %q", got, repo)
	}
}
