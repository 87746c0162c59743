// Package settings persists the bundler's settings file and the artifact
// version counter.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// maxBuild is the ceiling for the build counter. Reaching it resets build
// to zero and bumps patch.
const maxBuild = 9999

// Version is the 4-part artifact version. Build is a monotonic counter,
// separate from the semantic parts.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
	Build int `json:"build"`
}

// String renders the version as "major.minor.patch.build", the form used
// in artifact filenames.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Settings mirrors the settings.json document.
type Settings struct {
	DefaultSource      string   `json:"defaultSource"`
	DefaultDestination string   `json:"defaultDestination"`
	Version            *Version `json:"version"`
}

// Default returns the settings written when no settings file exists yet.
func Default() *Settings {
	return &Settings{
		DefaultSource:      `D:\`,
		DefaultDestination: `B:\DayAfter`,
		Version:            &Version{Major: 1},
	}
}

// Load reads settings from path, creating the file with defaults when it
// does not exist. An existing file missing the version block gets the
// default version injected in memory; nothing is written back until the
// next AdvanceBuild.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := Default()
		if err := s.Save(path); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Version == nil {
		s.Version = Default().Version
	}
	return &s, nil
}

// Save writes the full settings document to path, replacing whatever is
// there.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AdvanceBuild increments the build counter, rolling over into patch at
// the ceiling, and persists the updated settings to path.
func (s *Settings) AdvanceBuild(path string) error {
	if s.Version.Build >= maxBuild {
		s.Version.Build = 0
		s.Version.Patch++
	} else {
		s.Version.Build++
	}
	return s.Save(path)
}
