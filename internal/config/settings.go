package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/iburimskiy/heartswarm/internal/swarm"
)

// Settings are the user-tunable values read from settings.json.
type Settings struct {
	ParticleCount int     `json:"particle_count"`
	HeartScale    float64 `json:"heart_scale"`
	Jitter        float64 `json:"jitter"`
	Title         string  `json:"title"`
	Sound         bool    `json:"sound"`
	Volume        float64 `json:"volume"`
	ScreenshotDir string  `json:"screenshot_dir"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() *Settings {
	p := swarm.DefaultParams()
	return &Settings{
		ParticleCount: p.ParticleCount,
		HeartScale:    p.HeartScale,
		Jitter:        p.Jitter,
		Title:         "Hold to make a heart",
		Sound:         true,
		Volume:        0.6,
		ScreenshotDir: defaultScreenshotDir(),
	}
}

// Params converts the settings into scene tuning.
func (s *Settings) Params() swarm.Params {
	p := swarm.DefaultParams()
	p.ParticleCount = s.ParticleCount
	p.HeartScale = s.HeartScale
	p.Jitter = s.Jitter
	return p
}

// GetSettingsPath returns ~/.config/heartswarm/settings.json, creating the
// directory if needed.
func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// LoadSettings reads the settings file at path, or the default location when
// path is empty. A missing file is created with defaults. Malformed content
// and out-of-range values fall back to defaults with a log line; only I/O
// failures are returned.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		p, err := GetSettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	defaults := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", path)
			if err := createDefaultSettings(path, defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range raw {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Keys absent from the file keep their defaults.
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	settings.validate(defaults)
	return settings, nil
}

func (s *Settings) validate(d *Settings) {
	if s.ParticleCount < 1 || s.ParticleCount > 5000 {
		log.Printf("Invalid particle_count %d, must be between 1 and 5000, using default %d",
			s.ParticleCount, d.ParticleCount)
		s.ParticleCount = d.ParticleCount
	}
	if s.HeartScale <= 0 {
		log.Printf("Invalid heart_scale %.2f, must be positive, using default %.2f",
			s.HeartScale, d.HeartScale)
		s.HeartScale = d.HeartScale
	}
	if s.Jitter < 0 {
		log.Printf("Invalid jitter %.3f, must not be negative, using default %.3f",
			s.Jitter, d.Jitter)
		s.Jitter = d.Jitter
	}
	if s.Volume < 0.0 || s.Volume > 1.0 {
		log.Printf("Invalid volume value %.2f, must be between 0.0 and 1.0, using default %.2f",
			s.Volume, d.Volume)
		s.Volume = d.Volume
	}
	if s.ScreenshotDir == "" {
		s.ScreenshotDir = d.ScreenshotDir
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}

func defaultScreenshotDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, "Pictures")
	}
	return "."
}
