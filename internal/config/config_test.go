package config

import "testing"

func TestFromEnvReadsOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "56")
	t.Setenv(EnvPrefix+"PARALLEL_THRESHOLD", "8192")
	t.Setenv(EnvPrefix+"CALIBRATION_PROFILE", "/tmp/profile.json")

	got := FromEnv()
	if got.KaratsubaWords != 56 {
		t.Errorf("KaratsubaWords = %d, want 56", got.KaratsubaWords)
	}
	if got.ParallelWords != 8192 {
		t.Errorf("ParallelWords = %d, want 8192", got.ParallelWords)
	}
	if got.ProfilePath != "/tmp/profile.json" {
		t.Errorf("ProfilePath = %q", got.ProfilePath)
	}
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "not-a-number")
	if got := FromEnv(); got.KaratsubaWords != 0 {
		t.Errorf("malformed value resolved to %d, want 0", got.KaratsubaWords)
	}
}

func TestApplyAdaptiveFillsZeroFields(t *testing.T) {
	got := ApplyAdaptive(Thresholds{})
	if got.KaratsubaWords != EstimateKaratsubaWords() {
		t.Errorf("KaratsubaWords = %d, want estimate %d", got.KaratsubaWords, EstimateKaratsubaWords())
	}
	if got.ParallelWords != EstimateParallelWords() {
		t.Errorf("ParallelWords = %d, want estimate %d", got.ParallelWords, EstimateParallelWords())
	}
}

func TestApplyAdaptiveKeepsExplicitSettings(t *testing.T) {
	in := Thresholds{KaratsubaWords: 72, ParallelWords: -1}
	got := ApplyAdaptive(in)
	if got.KaratsubaWords != 72 || got.ParallelWords != -1 {
		t.Errorf("explicit settings overridden: %+v", got)
	}
}

func TestApplyAdaptiveClampsKaratsuba(t *testing.T) {
	got := ApplyAdaptive(Thresholds{KaratsubaWords: 2})
	if got.KaratsubaWords != MinKaratsubaWords {
		t.Errorf("KaratsubaWords = %d, want clamp to %d", got.KaratsubaWords, MinKaratsubaWords)
	}
}

func TestVerbose(t *testing.T) {
	if Verbose() {
		t.Error("Verbose true with no env set")
	}
	t.Setenv(EnvPrefix+"VERBOSE", "true")
	if !Verbose() {
		t.Error("Verbose false with env set")
	}
}
