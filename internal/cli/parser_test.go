package cli

import (
	"reflect"
	"testing"
)

func TestParseLaunch(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    LaunchArgs
		wantErr string
	}{
		{
			name: "bare command",
			argv: []string{"deskrun", "backup.sh"},
			want: LaunchArgs{Command: []string{"backup.sh"}},
		},
		{
			name: "command with arguments",
			argv: []string{"deskrun", "backup.sh", "--full", "-v"},
			want: LaunchArgs{Command: []string{"backup.sh", "--full", "-v"}},
		},
		{
			name: "desktop override",
			argv: []string{"deskrun", "--desktop", "XFCE", "backup.sh"},
			want: LaunchArgs{Desktop: "XFCE", Command: []string{"backup.sh"}},
		},
		{
			name: "forced terminal",
			argv: []string{"deskrun", "--terminal", "kitty", "backup.sh"},
			want: LaunchArgs{Terminal: "kitty", Command: []string{"backup.sh"}},
		},
		{
			name: "inline",
			argv: []string{"deskrun", "--inline", "backup.sh"},
			want: LaunchArgs{Inline: true, Command: []string{"backup.sh"}},
		},
		{
			name: "list with no command",
			argv: []string{"deskrun", "--list"},
			want: LaunchArgs{List: true, Command: []string{}},
		},
		{
			name: "double dash passthrough",
			argv: []string{"deskrun", "--", "--weird-name", "-x"},
			want: LaunchArgs{Command: []string{"--weird-name", "-x"}},
		},
		{
			name: "launcher flags after command stay verbatim",
			argv: []string{"deskrun", "backup.sh", "--inline"},
			want: LaunchArgs{Command: []string{"backup.sh", "--inline"}},
		},
		{
			name:    "desktop missing value",
			argv:    []string{"deskrun", "--desktop"},
			wantErr: "--desktop requires an argument",
		},
		{
			name:    "unknown flag",
			argv:    []string{"deskrun", "--frobnicate"},
			wantErr: "unknown flag: --frobnicate (use -- before a command that starts with a dash)",
		},
		{
			name:    "help",
			argv:    []string{"deskrun", "-h"},
			wantErr: "show_help",
		},
		{
			name:    "version",
			argv:    []string{"deskrun", "--version"},
			wantErr: "show_version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLaunch(tt.argv)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("ParseLaunch() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLaunch() error = %v", err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("ParseLaunch() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseSync(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    SyncArgs
		wantErr string
	}{
		{
			name: "defaults",
			argv: []string{"gitsync"},
			want: SyncArgs{ConfigPath: ".env"},
		},
		{
			name: "config path",
			argv: []string{"gitsync", "--config", "/etc/deskrun.env"},
			want: SyncArgs{ConfigPath: "/etc/deskrun.env"},
		},
		{
			name: "message and pause",
			argv: []string{"gitsync", "-m", "nightly backup", "--pause"},
			want: SyncArgs{ConfigPath: ".env", Message: "nightly backup", Pause: true},
		},
		{
			name:    "message missing value",
			argv:    []string{"gitsync", "--message"},
			wantErr: "--message requires an argument",
		},
		{
			name:    "unknown argument",
			argv:    []string{"gitsync", "extra"},
			wantErr: "unknown argument: extra",
		},
		{
			name:    "help",
			argv:    []string{"gitsync", "--help"},
			wantErr: "show_help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSync(tt.argv)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("ParseSync() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSync() error = %v", err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("ParseSync() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
