// Package config holds run configuration and the curriculum profile.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the command line options.
const (
	DefaultUnit = "u1"
	DefaultOut  = "src/content/content.v1.json"
)

// Default curriculum profile values.
const (
	DefaultSubject      = "chinese"
	DefaultGrade        = 2
	DefaultTerm         = "up"
	DefaultSectionTitle = "识字表（自动抽取）"
)

// Config holds everything one extraction run needs.
type Config struct {
	Docx    string  // Input document path
	Unit    string  // Unit identifier, e.g. "u1"
	Out     string  // Output JSON path
	Verbose bool    // Debug logging and item preview
	Profile Profile // Curriculum metadata
}

// Profile describes where the extracted unit sits in the curriculum.
type Profile struct {
	Subject      string `yaml:"subject"`
	Grade        int    `yaml:"grade"`
	Term         string `yaml:"term"`
	SectionTitle string `yaml:"section_title"`
}

// DefaultProfile returns the fixed profile used when no file is given.
func DefaultProfile() Profile {
	return Profile{
		Subject:      DefaultSubject,
		Grade:        DefaultGrade,
		Term:         DefaultTerm,
		SectionTitle: DefaultSectionTitle,
	}
}

// LoadProfile loads a profile from a YAML file. Fields missing from the
// file keep their default values.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("reading profile file: %w", err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parsing profile file: %w", err)
	}

	return profile, nil
}
