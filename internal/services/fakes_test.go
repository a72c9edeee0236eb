package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"opternportal/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// fakeProfileRepo implements domain.ProfileRepository in memory, keyed by identity user id.
type fakeProfileRepo struct {
	mu         sync.Mutex
	byIdentity map[string]*domain.CandidateProfile
	nextID     int
	writes     int

	getErr    error
	createErr error
	updateErr error
	markErr   error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byIdentity: make(map[string]*domain.CandidateProfile)}
}

func (f *fakeProfileRepo) GetByIdentityID(ctx context.Context, identityUserID string) (*domain.CandidateProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.byIdentity[identityUserID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.CandidateProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byIdentity[p.IdentityUserID]; ok {
		return domain.ErrDuplicateProfile
	}
	f.nextID++
	f.writes++
	p.ID = fmt.Sprintf("profile-%d", f.nextID)
	cp := *p
	f.byIdentity[p.IdentityUserID] = &cp
	return nil
}

func (f *fakeProfileRepo) UpdateRegistration(ctx context.Context, p *domain.CandidateProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := f.byID(p.ID)
	if stored == nil {
		return domain.ErrProfileNotFound
	}
	f.writes++
	sentAt, msgID := stored.QualifierEmailSentAt, stored.QualifierEmailMessageID
	*stored = *p
	stored.QualifierEmailSentAt, stored.QualifierEmailMessageID = sentAt, msgID
	return nil
}

func (f *fakeProfileRepo) MarkQualifierSent(ctx context.Context, profileID string, state domain.QualifierSendState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	stored := f.byID(profileID)
	if stored == nil || stored.QualifierEmailSentAt != nil {
		return domain.ErrQualifierAlreadyRecorded
	}
	f.writes++
	sentAt := state.SentAt
	stored.Email = state.Email
	stored.EmailVerified = state.EmailVerified
	stored.QualifierEmailSentAt = &sentAt
	stored.QualifierEmailMessageID = state.MessageID
	return nil
}

func (f *fakeProfileRepo) byID(id string) *domain.CandidateProfile {
	for _, p := range f.byIdentity {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fakeProfileRepo) put(p *domain.CandidateProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.byIdentity[p.IdentityUserID] = &cp
}

func (f *fakeProfileRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byIdentity)
}

// fakeCohortRepo implements domain.CohortRepository.
type fakeCohortRepo struct {
	cohorts []*domain.Cohort
	listErr error
	getErr  error
}

func (f *fakeCohortRepo) List(ctx context.Context) ([]*domain.Cohort, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Cohort, len(f.cohorts))
	copy(out, f.cohorts)
	return out, nil
}

func (f *fakeCohortRepo) GetByID(ctx context.Context, id string) (*domain.Cohort, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, c := range f.cohorts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCohortNotFound
}

func (f *fakeCohortRepo) Upsert(ctx context.Context, c *domain.Cohort) error {
	f.cohorts = append(f.cohorts, c)
	return nil
}

// fakeLogRepo implements domain.QualifierEmailLogRepository.
type fakeLogRepo struct {
	entries []*domain.QualifierEmailLog
	err     error
}

func (f *fakeLogRepo) Append(ctx context.Context, entry *domain.QualifierEmailLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

// fakeEmailService implements domain.EmailService and records every send.
type fakeEmailService struct {
	sent      []*domain.QualifierEmailData
	messageID string
	err       error
}

func (f *fakeEmailService) SendQualifierLink(ctx context.Context, data *domain.QualifierEmailData) (string, error) {
	f.sent = append(f.sent, data)
	if f.err != nil {
		return "", f.err
	}
	return f.messageID, nil
}

// fakeMailer implements domain.Mailer.
type fakeMailer struct {
	msgs []*domain.EmailMessage
	id   string
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	f.msgs = append(f.msgs, msg)
	return f.id, f.err
}

// fakeRenderer implements domain.EmailTemplateRenderer.
type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
