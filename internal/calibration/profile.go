// Package calibration determines the engine's algorithm thresholds
// empirically: it times multiplication at candidate Karatsuba crossovers
// and caches the winner in a JSON profile, which the threshold resolution
// chain picks up on later runs.
package calibration

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/mpint/internal/config"
)

// ProfileVersion is bumped whenever the profile schema or the meaning of
// a threshold changes; stale versions are ignored, not migrated.
const ProfileVersion = 1

// profileFileName is the default profile file, placed in the user's home
// directory.
const profileFileName = ".mpint_calibration.json"

// Profile is a persisted calibration result.
type Profile struct {
	Version        int       `json:"version"`
	KaratsubaWords int       `json:"karatsuba_words"`
	ParallelWords  int       `json:"parallel_words"`
	NumCPU         int       `json:"num_cpu"`
	CreatedAt      time.Time `json:"created_at"`
}

// DefaultPath returns the default profile location, or an empty string
// when no home directory is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, profileFileName)
}

// Save writes p to path atomically enough for a cache: full write, then
// rename into place.
func Save(path string, p Profile) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return errors.New("calibration: no profile path available")
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads and validates a profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	if p.Version != ProfileVersion {
		return Profile{}, errors.New("calibration: stale profile version")
	}
	return p, nil
}

// LoadCached returns the usable cached profile, if any. A profile taken
// on a machine with a different core count is ignored: the parallel
// threshold it recorded would be tuned for the wrong hardware.
func LoadCached(path string) (Profile, bool) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Profile{}, false
	}
	p, err := Load(path)
	if err != nil {
		return Profile{}, false
	}
	if p.NumCPU != 0 && p.NumCPU != runtime.NumCPU() {
		return Profile{}, false
	}
	return p, true
}

// Fill copies the profile's thresholds into every field of t still at
// zero; the profile is one stage of config's resolution chain and never
// overrides an explicit setting.
func (p Profile) Fill(t config.Thresholds) config.Thresholds {
	if t.KaratsubaWords == 0 && p.KaratsubaWords > 0 {
		t.KaratsubaWords = p.KaratsubaWords
	}
	if t.ParallelWords == 0 && p.ParallelWords != 0 {
		t.ParallelWords = p.ParallelWords
	}
	return t
}
