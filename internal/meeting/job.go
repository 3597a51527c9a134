package meeting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Send modes for the email stage of a job.
const (
	ModeNone     = "none"
	ModeInvite   = "invite"
	ModeFollowup = "followup"
)

// ExternalRecipient is an ad-hoc attendee outside the roster.
type ExternalRecipient struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Job is the per-meeting sidecar dropped next to an audio file. It holds the
// session state a form would otherwise collect: metadata, who to mail, and
// how.
type Job struct {
	Meta          Meta                `yaml:"meta"`
	Mode          string              `yaml:"mode"`
	SelectedNames []string            `yaml:"selected_names"`
	External      []ExternalRecipient `yaml:"external"`
	CC            string              `yaml:"cc"`
	BCC           string              `yaml:"bcc"`
	Subject       string              `yaml:"subject"`
	Signature     string              `yaml:"signature"`
}

// JobPath returns the sidecar path for an audio file:
// meeting.m4a -> meeting.m4a.meeting.yaml.
func JobPath(audioPath string) string {
	return audioPath + ".meeting.yaml"
}

// LoadJob reads a sidecar job file. A missing file is not an error; the
// caller receives a default job with the email stage disabled.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Job{Mode: ModeNone, Meta: Meta{Security: "사내공유"}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read meeting job: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse meeting job %s: %w", filepath.Base(path), err)
	}

	if err := job.validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

func (j *Job) validate() error {
	switch strings.ToLower(strings.TrimSpace(j.Mode)) {
	case "":
		j.Mode = ModeNone
	case ModeNone, ModeInvite, ModeFollowup:
		j.Mode = strings.ToLower(strings.TrimSpace(j.Mode))
	default:
		return fmt.Errorf("unknown mode %q (want none, invite or followup)", j.Mode)
	}

	if j.Meta.Security == "" {
		j.Meta.Security = "사내공유"
	}
	if j.Signature == "" {
		j.Signature = "KCH Global AI 회의록"
	}

	return nil
}
