package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kchglobal/minutes-flow/internal/mailer"
	"github.com/kchglobal/minutes-flow/internal/meeting"
	"github.com/kchglobal/minutes-flow/internal/roster"
	"github.com/kchglobal/minutes-flow/pkg/textutil"
)

// runEmailStage resolves recipients from the roster plus the job's ad-hoc
// rows and sends invite or follow-up mail. Nothing is sent when the job
// disables the stage or selects nobody.
func (p *implProcessor) runEmailStage(ctx context.Context, job *meeting.Job, summary, docURL string) error {
	if job.Mode == meeting.ModeNone {
		p.logger.Debug(ctx, "Email stage disabled for this meeting")
		return nil
	}
	if p.sender == nil {
		p.logger.Warn(ctx, "Email stage requested but no mail backend is configured")
		return nil
	}

	records := p.loadRoster(ctx)
	external := make([]roster.External, 0, len(job.External))
	for _, e := range job.External {
		external = append(external, roster.External{Name: e.Name, Email: e.Email})
	}

	recipients := roster.Resolve(records, job.SelectedNames, external)
	if len(recipients) == 0 {
		p.logger.Info(ctx, "발송 대상이 없습니다 (selected: %d, external: %d)", len(job.SelectedNames), len(external))
		return nil
	}

	meta := job.Meta
	if meta.Participants == "" {
		meta.Participants = roster.ParticipantsText(recipients)
	}

	manualCC := textutil.SplitEmailList(job.CC)
	bcc := textutil.SplitEmailList(job.BCC)
	now := time.Now()

	var previews []mailer.Preview
	var err error
	switch job.Mode {
	case meeting.ModeInvite:
		subject := job.Subject
		if subject == "" {
			subject = meta.InviteSubject(now)
		}
		previews, err = mailer.BuildInvitePreviews(ctx, p.generator, meta, recipients, mailer.InviteOptions{
			Subject:     subject,
			MeetingInfo: meta.InfoText(),
			ManualCC:    manualCC,
			BCC:         bcc,
		})
	case meeting.ModeFollowup:
		subject := job.Subject
		if subject == "" {
			subject = meta.FollowupSubject(now)
		}
		previews, err = mailer.BuildFollowupPreviews(ctx, p.generator, meta, recipients, mailer.FollowupOptions{
			Subject:   subject,
			Summary:   summary,
			DocURL:    docURL,
			Signature: job.Signature,
			ManualCC:  manualCC,
			BCC:       bcc,
		})
	default:
		return fmt.Errorf("unknown mail mode %q", job.Mode)
	}
	if err != nil {
		return fmt.Errorf("build previews: %w", err)
	}

	fallbacks := 0
	for _, pv := range previews {
		if pv.Fallback {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		p.logger.Warn(ctx, "%d/%d bodies used the templated fallback", fallbacks, len(previews))
	}

	logo := mailer.FetchLogo(p.cfg.Mail.LogoURL)
	report := mailer.SendAll(ctx, p.sender, p.senderName, p.senderEmail, previews, logo, p.cfg.Mail.LogoURL, p.logger)

	p.logger.Info(ctx, "발송 성공: %d건", report.Sent)
	for _, f := range report.Failed {
		p.logger.Error(ctx, "발송 실패: %s", f)
	}
	return nil
}

// loadRoster reads the local roster workbook. A missing or broken file is
// only a warning; the job's ad-hoc rows can still be mailed.
func (p *implProcessor) loadRoster(ctx context.Context) []roster.Record {
	raw, err := os.ReadFile(p.cfg.Google.RosterFile)
	if err != nil {
		p.logger.Warn(ctx, "기본 명부 로드 실패: %v", err)
		return nil
	}

	records, err := roster.LoadXLSX(raw)
	if err != nil {
		p.logger.Warn(ctx, "기본 명부 로드 실패: %v", err)
		return nil
	}
	return records
}
