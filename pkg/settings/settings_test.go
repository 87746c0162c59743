package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.DefaultSource != `D:\` {
		t.Errorf("DefaultSource = %q, want %q", s.DefaultSource, `D:\`)
	}
	if s.DefaultDestination != `B:\DayAfter` {
		t.Errorf("DefaultDestination = %q, want %q", s.DefaultDestination, `B:\DayAfter`)
	}
	want := Version{Major: 1, Minor: 0, Patch: 0, Build: 0}
	if *s.Version != want {
		t.Errorf("Version = %+v, want %+v", *s.Version, want)
	}

	// Defaults must be persisted to disk, identical to what was returned
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("defaults were not written: %v", err)
	}
	var onDisk Settings
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("written defaults are not valid JSON: %v", err)
	}
	if onDisk.DefaultSource != s.DefaultSource || *onDisk.Version != *s.Version {
		t.Errorf("on-disk settings = %+v, want %+v", onDisk, s)
	}
}

func TestLoad_InjectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"defaultSource": "C:\\src", "defaultDestination": "E:\\dst"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.DefaultSource != `C:\src` {
		t.Errorf("DefaultSource = %q, want C:\\src", s.DefaultSource)
	}
	if s.Version == nil {
		t.Fatal("Version was not injected")
	}
	want := Version{Major: 1}
	if *s.Version != want {
		t.Errorf("injected Version = %+v, want %+v", *s.Version, want)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestAdvanceBuild(t *testing.T) {
	tests := []struct {
		name      string
		before    Version
		wantBuild int
		wantPatch int
	}{
		{
			name:      "simple increment",
			before:    Version{Major: 1, Build: 0},
			wantBuild: 1,
			wantPatch: 0,
		},
		{
			name:      "below ceiling",
			before:    Version{Major: 1, Build: 9998},
			wantBuild: 9999,
			wantPatch: 0,
		},
		{
			name:      "rollover at ceiling",
			before:    Version{Major: 1, Patch: 2, Build: 9999},
			wantBuild: 0,
			wantPatch: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			v := tt.before
			s := &Settings{Version: &v}

			if err := s.AdvanceBuild(path); err != nil {
				t.Fatalf("AdvanceBuild() error = %v", err)
			}

			if s.Version.Build != tt.wantBuild {
				t.Errorf("Build = %d, want %d", s.Version.Build, tt.wantBuild)
			}
			if s.Version.Patch != tt.wantPatch {
				t.Errorf("Patch = %d, want %d", s.Version.Patch, tt.wantPatch)
			}

			// Advance always persists
			reloaded, err := Load(path)
			if err != nil {
				t.Fatalf("reload after advance: %v", err)
			}
			if reloaded.Version.Build != tt.wantBuild || reloaded.Version.Patch != tt.wantPatch {
				t.Errorf("persisted version = %+v, want build=%d patch=%d",
					*reloaded.Version, tt.wantBuild, tt.wantPatch)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 2, Minor: 1, Patch: 7, Build: 345}
	if got := v.String(); got != "2.1.7.345" {
		t.Errorf("String() = %q, want 2.1.7.345", got)
	}
}
