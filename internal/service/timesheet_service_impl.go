package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/export"
	"github.com/nconsulting/timecard/internal/repository"
	"github.com/nconsulting/timecard/internal/session"
	"github.com/nconsulting/timecard/internal/workflow"
)

type timesheetService struct {
	api      api.Client
	drafts   repository.DraftStore
	observer UseCaseObserver

	// loadSeq orders month loads. A fetch that finishes after a newer load
	// has started is dropped instead of overwriting newer state.
	loadSeq atomic.Uint64
}

func NewTimesheetService(client api.Client, drafts repository.DraftStore, observers ...UseCaseObserver) TimesheetService {
	return &timesheetService{
		api:      client,
		drafts:   drafts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timesheetService) LoadMonth(ctx context.Context, viewer session.Context, targetUser string, month calendar.Month) (sess *workflow.Session, err error) {
	fields := map[string]any{"month": month.String()}
	if targetUser != "" {
		fields["target_user"] = targetUser
	}
	defer observe(ctx, s.observer, "load-month", viewer.Username, fields, &err)()

	token := s.loadSeq.Add(1)

	detail, err := s.api.GetTimesheetByMonth(ctx, month.String(), targetUser)
	if err != nil {
		return nil, err
	}
	if s.loadSeq.Load() != token {
		return nil, ErrStaleLoad
	}

	sess = workflow.NewSession(viewer, month)
	sess.TargetUser = targetUser
	sess.ApplyServerState(detail.Summary, detail.DailyRows, detail.TaskDetails, detail.Holidays)
	return sess, nil
}

func (s *timesheetService) Save(ctx context.Context, sess *workflow.Session) (err error) {
	defer observe(ctx, s.observer, "save-month", sess.Viewer.Username, map[string]any{"month": sess.Month.String()}, &err)()
	return s.store(ctx, sess, domain.StatusSaved)
}

func (s *timesheetService) Submit(ctx context.Context, sess *workflow.Session) (err error) {
	defer observe(ctx, s.observer, "submit-month", sess.Viewer.Username, map[string]any{"month": sess.Month.String()}, &err)()
	return s.store(ctx, sess, domain.StatusSubmitted)
}

// store assembles and uploads the full month. Submission additionally
// attaches the rendered PDF statement, matching what approvers download.
func (s *timesheetService) store(ctx context.Context, sess *workflow.Session, status domain.Status) error {
	if sess.TargetUser != "" {
		return fmt.Errorf("%w: only the owner may save a timesheet", ErrNotPermitted)
	}
	if !sess.CanSave() {
		return workflow.ErrLocked
	}

	asm, err := sess.Assemble()
	if err != nil {
		return err
	}

	req := api.SaveTimesheetRequest{
		MonthYear:   sess.Month.String(),
		Status:      status,
		WorkingDays: asm.WorkingDays,
		TotalHours:  asm.TotalHours,
		Timesheet:   asm.Entries,
	}
	if status == domain.StatusSubmitted {
		name, data, err := s.ExportPDF(sess)
		if err != nil {
			return err
		}
		req.PDFBase64 = base64.StdEncoding.EncodeToString(data)
		req.FileName = name
	}

	if err := s.api.SaveTimesheet(ctx, req); err != nil {
		return err
	}

	// The draft is now stale regardless of whether the delete succeeds.
	_ = s.drafts.Delete(ctx, sess.Viewer.Username, sess.Month.String())

	return s.refresh(ctx, sess)
}

// refresh re-reads the month so the session reflects what the server stored.
// A refresh that lost the race to a newer load leaves the session untouched.
func (s *timesheetService) refresh(ctx context.Context, sess *workflow.Session) error {
	token := s.loadSeq.Add(1)
	detail, err := s.api.GetTimesheetByMonth(ctx, sess.Month.String(), sess.TargetUser)
	if err != nil {
		return fmt.Errorf("refreshing month after save: %w", err)
	}
	if s.loadSeq.Load() == token {
		sess.ApplyServerState(detail.Summary, detail.DailyRows, detail.TaskDetails, detail.Holidays)
	}
	return nil
}

func (s *timesheetService) ActivityLog(ctx context.Context, sess *workflow.Session) ([]domain.AuditLogEntry, error) {
	return s.api.GetActivityLog(ctx, sess.Month.String(), sess.TargetUser)
}

func (s *timesheetService) MonthSelector(ctx context.Context, viewer session.Context, now time.Time) ([]calendar.SelectorEntry, error) {
	summaries := map[string]domain.TimesheetSummary{}
	for i := 0; i <= 1; i++ {
		m := calendar.MonthOf(now).Add(i)
		detail, err := s.api.GetTimesheetByMonth(ctx, m.String(), "")
		if err != nil {
			return nil, err
		}
		if detail.Summary != nil {
			summaries[m.String()] = *detail.Summary
		}
	}
	return calendar.SelectorEntries(now, summaries), nil
}

func (s *timesheetService) ExportPDF(sess *workflow.Session) (string, []byte, error) {
	asm, err := sess.Assemble()
	if err != nil {
		return "", nil, err
	}

	name := sess.Viewer.DisplayName()
	slug := sess.Viewer.FileSlug()
	if sess.TargetUser != "" {
		name = sess.TargetUser
		slug = sess.TargetUser
	}

	data, err := export.MonthPDF(export.PDFInput{
		DisplayName: name,
		Month:       sess.Month,
		Summary:     sess.Summary,
		Task:        sess.Task,
		DailyRows:   asm.Entries,
	})
	if err != nil {
		return "", nil, err
	}
	return export.PDFFileName(slug, sess.Month.String()), data, nil
}

func (s *timesheetService) SaveDraft(ctx context.Context, sess *workflow.Session) error {
	if sess.TargetUser != "" || !sess.Editable() {
		return nil
	}
	return s.drafts.Save(ctx, repository.Draft{
		Username:  sess.Viewer.Username,
		MonthYear: sess.Month.String(),
		Rows:      sess.Rows,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *timesheetService) RestoreDraft(ctx context.Context, sess *workflow.Session) (bool, error) {
	if sess.TargetUser != "" || !sess.Editable() {
		return false, nil
	}
	d, err := s.drafts.Load(ctx, sess.Viewer.Username, sess.Month.String())
	if err != nil {
		if err == repository.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	sess.Rows = d.Rows
	return true, nil
}

func (s *timesheetService) DiscardDraft(ctx context.Context, sess *workflow.Session) error {
	return s.drafts.Delete(ctx, sess.Viewer.Username, sess.Month.String())
}
