package mailer

import (
	"context"

	"github.com/kchglobal/minutes-flow/internal/meeting"
	"github.com/kchglobal/minutes-flow/internal/prompt"
	"github.com/kchglobal/minutes-flow/internal/roster"
	"github.com/kchglobal/minutes-flow/internal/summarizer"
)

// Preview is one ready-to-send message. Fallback marks a follow-up (or
// invite) whose body came from the templated fallback instead of the model.
type Preview struct {
	Name     string
	To       string
	CC       []string
	BCC      []string
	Subject  string
	Body     string
	Fallback bool
}

// InviteOptions parameterize the shared invite mail.
type InviteOptions struct {
	Subject     string
	MeetingInfo string
	ManualCC    []string
	BCC         []string
}

// FollowupOptions parameterize the per-recipient follow-up mail.
type FollowupOptions struct {
	Subject   string
	Summary   string
	DocURL    string
	Signature string
	ManualCC  []string
	BCC       []string
}

// BuildInvitePreviews generates one shared invite body and fans it out to
// every recipient with their individual CC list. A failed generation falls
// back to the raw meeting info wrapped in a greeting.
func BuildInvitePreviews(ctx context.Context, gen summarizer.Generator, meta meeting.Meta, recipients []roster.Recipient, opts InviteOptions) ([]Preview, error) {
	text, err := prompt.Build(prompt.KindInvite, meta, map[string]string{
		"meeting_info": opts.MeetingInfo,
	})
	if err != nil {
		return nil, err
	}

	body, genErr := gen.Generate(ctx, text)
	fallback := genErr != nil
	if fallback {
		body = inviteFallbackBody(opts.MeetingInfo)
	}

	previews := make([]Preview, 0, len(recipients))
	for _, r := range recipients {
		previews = append(previews, Preview{
			Name:     r.Name,
			To:       r.Email,
			CC:       roster.EffectiveCC(r, opts.ManualCC),
			BCC:      opts.BCC,
			Subject:  opts.Subject,
			Body:     body,
			Fallback: fallback,
		})
	}
	return previews, nil
}

// BuildFollowupPreviews runs one generation per recipient. A recipient
// whose generation fails gets the templated fallback body instead; the
// failure never aborts the rest of the batch.
func BuildFollowupPreviews(ctx context.Context, gen summarizer.Generator, meta meeting.Meta, recipients []roster.Recipient, opts FollowupOptions) ([]Preview, error) {
	previews := make([]Preview, 0, len(recipients))
	for _, r := range recipients {
		text, err := prompt.Build(prompt.KindFollowup, meta, map[string]string{
			"recipient_name": r.Name,
			"subject":        opts.Subject,
			"doc_url":        opts.DocURL,
			"refs":           meta.Refs,
			"signature":      opts.Signature,
			"summary":        opts.Summary,
		})
		if err != nil {
			return nil, err
		}

		subject := opts.Subject
		var body string
		var fallback bool
		if generated, genErr := gen.Generate(ctx, text); genErr == nil {
			subject, body = SplitSubjectBody(generated, opts.Subject)
		} else {
			fallback = true
			body = FallbackBody(r.Name, meta.Title, opts.Summary, opts.DocURL, meta.Refs, opts.Signature)
		}

		previews = append(previews, Preview{
			Name:     r.Name,
			To:       r.Email,
			CC:       roster.EffectiveCC(r, opts.ManualCC),
			BCC:      opts.BCC,
			Subject:  subject,
			Body:     body,
			Fallback: fallback,
		})
	}
	return previews, nil
}
