package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	statsRecentScams   = 5
	activityPerSource  = 10
	activityFeedLength = 20
)

type AdminService struct {
	users    repositories.UserRepository
	scams    repositories.ScamRepository
	comments repositories.CommentRepository
	reports  repositories.ReportRepository
	now      func() time.Time
}

func NewAdminService(
	users repositories.UserRepository,
	scams repositories.ScamRepository,
	comments repositories.CommentRepository,
	reports repositories.ReportRepository,
) *AdminService {
	return &AdminService{
		users:    users,
		scams:    scams,
		comments: comments,
		reports:  reports,
		now:      time.Now,
	}
}

func scamActivity(scam models.Scam) string {
	return fmt.Sprintf("Nova denúncia \"%s\" por %s", scam.Title, scam.User.Name)
}

func commentActivity(comment models.Comment) string {
	return fmt.Sprintf("%s comentou em \"%s\"", comment.User.Name, comment.Scam.Title)
}

func userActivity(user models.User) string {
	return fmt.Sprintf("Novo usuário cadastrado: %s", user.Name)
}

// SystemStats runs every counter concurrently and fails as a whole if any query fails.
func (s *AdminService) SystemStats(ctx context.Context) (*types.SystemStats, error) {
	var (
		stats  types.SystemStats
		recent []models.Scam
	)
	resolved := true

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.users.Count(groupCtx)
		return errors.Wrap(err, "count users")
	})
	g.Go(func() (err error) {
		stats.TotalScams, err = s.scams.Count(groupCtx, types.ScamFilter{})
		return errors.Wrap(err, "count scams")
	})
	g.Go(func() (err error) {
		stats.PendingScams, err = s.scams.Count(groupCtx, types.ScamFilter{Status: models.ScamStatusPending})
		return errors.Wrap(err, "count pending scams")
	})
	g.Go(func() (err error) {
		stats.VerifiedScams, err = s.scams.Count(groupCtx, types.ScamFilter{Status: models.ScamStatusVerified})
		return errors.Wrap(err, "count verified scams")
	})
	g.Go(func() (err error) {
		stats.ResolvedScams, err = s.scams.Count(groupCtx, types.ScamFilter{Resolved: &resolved})
		return errors.Wrap(err, "count resolved scams")
	})
	g.Go(func() (err error) {
		stats.TotalComments, err = s.comments.Count(groupCtx)
		return errors.Wrap(err, "count comments")
	})
	g.Go(func() (err error) {
		stats.PendingReports, err = s.reports.CountByStatus(groupCtx, models.ReportStatusPending)
		return errors.Wrap(err, "count pending reports")
	})
	g.Go(func() (err error) {
		recent, err = s.scams.Recent(groupCtx, statsRecentScams)
		return errors.Wrap(err, "recent scams")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	stats.RecentActivity = make([]types.ActivitySummary, 0, len(recent))
	for _, scam := range recent {
		stats.RecentActivity = append(stats.RecentActivity, types.ActivitySummary{
			Description: scamActivity(scam),
			Time:        utils.TimeAgo(scam.CreatedAt, now),
		})
	}

	return &stats, nil
}

// RecentActivity merges the newest scams, comments and users into one feed,
// newest first, capped at activityFeedLength entries.
func (s *AdminService) RecentActivity(ctx context.Context) ([]types.ActivityItem, error) {
	var (
		scams    []models.Scam
		comments []models.Comment
		users    []models.User
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		scams, err = s.scams.Recent(groupCtx, activityPerSource)
		return errors.Wrap(err, "recent scams")
	})
	g.Go(func() (err error) {
		comments, err = s.comments.Recent(groupCtx, activityPerSource)
		return errors.Wrap(err, "recent comments")
	})
	g.Go(func() (err error) {
		users, err = s.users.Recent(groupCtx, activityPerSource)
		return errors.Wrap(err, "recent users")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]types.ActivityItem, 0, len(scams)+len(comments)+len(users))
	for _, scam := range scams {
		items = append(items, types.ActivityItem{Type: types.ActivityScam, Description: scamActivity(scam), Time: scam.CreatedAt})
	}
	for _, comment := range comments {
		items = append(items, types.ActivityItem{Type: types.ActivityComment, Description: commentActivity(comment), Time: comment.CreatedAt})
	}
	for _, user := range users {
		items = append(items, types.ActivityItem{Type: types.ActivityUser, Description: userActivity(user), Time: user.CreatedAt})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time.After(items[j].Time)
	})
	if len(items) > activityFeedLength {
		items = items[:activityFeedLength]
	}

	now := s.now()
	for i := range items {
		items[i].TimeAgo = utils.TimeAgo(items[i].Time, now)
	}
	return items, nil
}

func (s *AdminService) PendingReports(ctx context.Context) ([]types.PendingReport, error) {
	reports, err := s.reports.ListByStatus(ctx, models.ReportStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "list pending reports")
	}

	pending := make([]types.PendingReport, 0, len(reports))
	for _, report := range reports {
		pending = append(pending, types.PendingReport{
			ID:          report.ID,
			Reason:      report.Reason,
			Description: report.Description,
			Status:      string(report.Status),
			CreatedAt:   report.CreatedAt,
			Scam:        types.ReportScam{ID: report.Scam.ID, Title: report.Scam.Title},
			Reporter:    types.Reporter{Name: report.User.Name, Email: report.User.Email},
		})
	}
	return pending, nil
}

func (s *AdminService) UpdateReportStatus(ctx context.Context, id uint, status models.ReportStatus) error {
	if status != models.ReportStatusReviewed && status != models.ReportStatusDismissed {
		return apperrors.Validation("Status inválido")
	}
	return errors.Wrapf(s.reports.UpdateStatus(ctx, id, status), "update report %d", id)
}

func (s *AdminService) UpdateScamStatus(ctx context.Context, id uint, status models.ScamStatus) error {
	if !status.Valid() {
		return apperrors.Validation("Status inválido")
	}
	err := s.scams.Update(ctx, id, map[string]interface{}{"status": status})
	return errors.Wrapf(err, "update scam %d status", id)
}
