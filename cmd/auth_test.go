package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestLoginCommand(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
		want    string
	}{
		{
			name:    "wrong password",
			args:    []string{"login", "user@roblox.ai", "--password", "nope"},
			wantErr: true,
		},
		{
			name:    "unknown account",
			args:    []string{"login", "who@roblox.ai", "-p", "password123"},
			wantErr: true,
		},
		{
			name: "password flag",
			args: []string{"login", "user@roblox.ai", "-p", "password123"},
			want: "Regular User",
		},
		{
			name:  "password from stdin",
			stdin: "password123\n",
			args:  []string{"login", "admin@roblox.ai"},
			want:  "Admin User (admin)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.run(t, tt.stdin, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("login error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	out, err := env.run(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out, "admin@roblox.ai") {
		t.Errorf("whoami = %q, want the last signed-in account", out)
	}
}

func TestRegisterCommand(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{
			name:    "mismatched confirmation",
			args:    []string{"register", "Budi", "budi@example.com", "-p", "password123", "--confirm", "password124"},
			wantErr: "Password tidak cocok",
		},
		{
			name:    "short name",
			args:    []string{"register", "Bu", "budi@example.com", "-p", "password123", "--confirm", "password123"},
			wantErr: "Nama harus 3-50 karakter",
		},
		{
			name:    "bad email",
			stdin:   "password123\npassword123\n",
			args:    []string{"register", "Budi", "budi-at-example"},
			wantErr: "Format email tidak valid",
		},
		{
			name:  "valid from stdin",
			stdin: "password123\npassword123\n",
			args:  []string{"register", "Budi", "budi@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.run(t, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("register error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("register failed: %v", err)
			}
			if !strings.Contains(out, "Welcome, Budi") {
				t.Errorf("output = %q", out)
			}
		})
	}

	out, err := env.run(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out, "Role: user") {
		t.Errorf("registered accounts should be plain users: %q", out)
	}
}

func TestLogoutCommand(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.run(t, "", "login", "user@roblox.ai", "-p", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := env.run(t, "", "send", "Halo"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := env.run(t, "", "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	out, err := env.run(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out, "Not signed in") {
		t.Errorf("whoami after logout = %q", out)
	}

	out, err = env.run(t, "", "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if strings.Contains(out, "#1") {
		t.Errorf("logout should clear the conversation:\n%s", out)
	}
}

func TestAdminCommands(t *testing.T) {
	env := newTestEnv(t)

	for _, args := range [][]string{{"users"}, {"analytics"}, {"settings"}} {
		if _, err := env.run(t, "", args...); !errors.Is(err, errAdminOnly) {
			t.Errorf("%v without login error = %v, want errAdminOnly", args, err)
		}
	}

	if _, err := env.run(t, "", "login", "user@roblox.ai", "-p", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := env.run(t, "", "users"); !errors.Is(err, errAdminOnly) {
		t.Errorf("users as regular user error = %v, want errAdminOnly", err)
	}

	if _, err := env.run(t, "", "login", "admin@roblox.ai", "-p", "password123"); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{"users table", []string{"users"}, []string{"Alice Brown", "moderator", "inactive"}, false},
		{"single user json", []string{"users", "--id", "3", "--output", "json"}, []string{`"name": "Jane Smith"`}, false},
		{"missing user", []string{"users", "--id", "42"}, nil, true},
		{"analytics table", []string{"analytics"}, []string{"Overview", "Buat sistem inventory", "Optimization"}, false},
		{"analytics yaml", []string{"analytics", "--output", "yaml"}, []string{"overview:", "top_prompts:"}, false},
		{"bad output", []string{"analytics", "--output", "xml"}, nil, true},
		{"settings", []string{"settings"}, []string{"site_name: " + "Roblox AI Studio", "theme: dark"}, false},
		{"update settings", []string{"settings", "--tagline", "Build faster"}, []string{"Settings saved", "tagline: Build faster"}, false},
		{"settings persisted", []string{"settings", "--output", "json"}, []string{`"tagline": "Build faster"`, `"siteName": "Roblox AI Studio"`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.run(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("%v error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("%v output missing %q:\n%s", tt.args, want, out)
				}
			}
		})
	}
}
