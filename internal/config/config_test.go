package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Google: GoogleConfig{
			CredentialsFile: "secrets/sa.json",
			APIKey:          "test-key",
			Bucket:          "kch-minutes",
			SharedDriveID:   "drive-id",
		},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing credentials file",
			mutate:  func(c *Config) { c.Google.CredentialsFile = "" },
			wantErr: true,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Google.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "missing bucket",
			mutate:  func(c *Config) { c.Google.Bucket = "" },
			wantErr: true,
		},
		{
			name:    "missing shared drive",
			mutate:  func(c *Config) { c.Google.SharedDriveID = "" },
			wantErr: true,
		},
		{
			name:    "missing paths",
			mutate:  func(c *Config) { c.Paths = PathsConfig{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Google.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %v, want gemini-2.0-flash", cfg.Google.Model)
	}
	if cfg.Google.RosterFile != "명부.xlsx" {
		t.Errorf("RosterFile = %v, want 명부.xlsx", cfg.Google.RosterFile)
	}
	if cfg.Speech.Language != "ko-KR" {
		t.Errorf("Language = %v, want ko-KR", cfg.Speech.Language)
	}
	if cfg.Speech.MinSpeakers != 2 || cfg.Speech.MaxSpeakers != 8 {
		t.Errorf("Speakers = %d..%d, want 2..8", cfg.Speech.MinSpeakers, cfg.Speech.MaxSpeakers)
	}
	if cfg.Mail.SMTP.Port != 587 {
		t.Errorf("SMTP port = %d, want 587", cfg.Mail.SMTP.Port)
	}
	if cfg.Mail.SMTP.StartTLS == nil || !*cfg.Mail.SMTP.StartTLS {
		t.Error("SMTP StartTLS should default to true")
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
google:
  credentials_file: "secrets/sa.json"
  api_key: "test-key"
  bucket: "kch-minutes"
  shared_drive_id: "drive-id"
  model: "gemini-2.0-flash"

speech:
  language: "ko-KR"
  min_speakers: 2
  max_speakers: 6

mail:
  from_name: "KCH Global"
  gmail_impersonate: "bot@kch.example"
  smtp:
    host: "smtp.kch.example"
    port: 465
    ssl: true

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Google.Bucket != "kch-minutes" {
		t.Errorf("Bucket = %v, want kch-minutes", cfg.Google.Bucket)
	}
	if cfg.Speech.MaxSpeakers != 6 {
		t.Errorf("MaxSpeakers = %v, want 6", cfg.Speech.MaxSpeakers)
	}
	if !cfg.GmailEnabled() {
		t.Error("GmailEnabled() should be true")
	}
	if !cfg.SMTPEnabled() {
		t.Error("SMTPEnabled() should be true")
	}
	if cfg.Mail.SMTP.Port != 465 {
		t.Errorf("SMTP port = %v, want 465", cfg.Mail.SMTP.Port)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
