package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Google      GoogleConfig      `yaml:"google"`
	Speech      SpeechConfig      `yaml:"speech"`
	Mail        MailConfig        `yaml:"mail"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	Bucket          string `yaml:"bucket"`
	SharedDriveID   string `yaml:"shared_drive_id"`
	RosterFolderID  string `yaml:"roster_folder_id"`
	RosterFile      string `yaml:"roster_file"`
}

type SpeechConfig struct {
	Language    string `yaml:"language"`
	MinSpeakers int    `yaml:"min_speakers"`
	MaxSpeakers int    `yaml:"max_speakers"`
}

type MailConfig struct {
	FromName         string     `yaml:"from_name"`
	LogoURL          string     `yaml:"logo_url"`
	GmailImpersonate string     `yaml:"gmail_impersonate"`
	SMTP             SMTPConfig `yaml:"smtp"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	SSL      bool   `yaml:"ssl"`
	StartTLS *bool  `yaml:"starttls"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Google.CredentialsFile == "" {
		return fmt.Errorf("google.credentials_file is required")
	}
	if c.Google.APIKey == "" {
		return fmt.Errorf("google.api_key is required")
	}
	if c.Google.Bucket == "" {
		return fmt.Errorf("google.bucket is required")
	}
	if c.Google.SharedDriveID == "" {
		return fmt.Errorf("google.shared_drive_id is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Google.Model == "" {
		c.Google.Model = "gemini-2.0-flash"
	}
	if c.Google.RosterFile == "" {
		c.Google.RosterFile = "명부.xlsx"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "ko-KR"
	}
	if c.Speech.MinSpeakers == 0 {
		c.Speech.MinSpeakers = 2
	}
	if c.Speech.MaxSpeakers == 0 {
		c.Speech.MaxSpeakers = 8
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "KCH Global"
	}
	if c.Mail.SMTP.Port == 0 {
		c.Mail.SMTP.Port = 587
	}
	if c.Mail.SMTP.StartTLS == nil {
		t := true
		c.Mail.SMTP.StartTLS = &t
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// GmailEnabled reports whether the delegated Gmail backend is configured.
func (c *Config) GmailEnabled() bool {
	return c.Mail.GmailImpersonate != ""
}

// SMTPEnabled reports whether the direct SMTP backend is configured.
func (c *Config) SMTPEnabled() bool {
	return c.Mail.SMTP.Host != ""
}
