// Package update checks GitHub releases for newer calc builds and replaces
// the running binary.
package update

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub slug releases are published under.
const Repository = "pengelbrecht/calc"

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("development build cannot be updated")

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallBinary InstallMethod = iota
	InstallHomebrew
	InstallGo
)

func (m InstallMethod) String() string {
	switch m {
	case InstallHomebrew:
		return "homebrew"
	case InstallGo:
		return "go install"
	default:
		return "binary"
	}
}

// Release is the subset of release metadata the CLI prints.
type Release struct {
	Version   string
	URL       string
	AssetURL  string
	AssetName string
}

// DetectInstallMethod inspects the executable path.
func DetectInstallMethod() InstallMethod {
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return InstallBinary
	}
	return methodForPath(exe)
}

func methodForPath(exe string) InstallMethod {
	p := filepath.ToSlash(exe)
	switch {
	case strings.Contains(p, "/Cellar/"), strings.Contains(p, "/homebrew/"), strings.Contains(p, "/linuxbrew/"):
		return InstallHomebrew
	case strings.Contains(p, "/go/bin/"):
		return InstallGo
	default:
		return InstallBinary
	}
}

// normalizeVersion validates current and strips a leading "v".
func normalizeVersion(current string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(current), "v")
	if v == "" || v == "dev" {
		return "", ErrDevBuild
	}
	if _, err := semver.NewVersion(v); err != nil {
		return "", fmt.Errorf("invalid version %q: %w", current, err)
	}
	return v, nil
}

// CheckForUpdate returns the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	v, err := normalizeVersion(current)
	if err != nil {
		return nil, false, err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{
		Version:   latest.Version(),
		URL:       latest.URL,
		AssetURL:  latest.AssetURL,
		AssetName: latest.AssetName,
	}
	return release, !latest.LessOrEqual(v), nil
}

// Update downloads the latest release and replaces the running executable.
func Update(ctx context.Context, current string) (*Release, error) {
	release, hasUpdate, err := CheckForUpdate(ctx, current)
	if err != nil {
		return nil, err
	}
	if release == nil || !hasUpdate {
		return release, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		return nil, fmt.Errorf("update binary: %w", err)
	}
	return release, nil
}
