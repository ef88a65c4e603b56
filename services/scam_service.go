package services

import (
	"context"
	"strings"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ScamService struct {
	scams   repositories.ScamRepository
	likes   repositories.LikeRepository
	saved   repositories.SavedScamRepository
	reports repositories.ReportRepository
	cache   repositories.DomainCache
	log     *logrus.Logger
	now     func() time.Time
}

// NewScamService builds the service. cache is the domain check cache and may be nil.
func NewScamService(
	scams repositories.ScamRepository,
	likes repositories.LikeRepository,
	saved repositories.SavedScamRepository,
	reports repositories.ReportRepository,
	cache repositories.DomainCache,
	log *logrus.Logger,
) *ScamService {
	return &ScamService{
		scams:   scams,
		likes:   likes,
		saved:   saved,
		reports: reports,
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

// forgetDomains drops cached domain checks so the next check sees the change.
// The scam write has already happened, so failures are only logged.
func (s *ScamService) forgetDomains(ctx context.Context, domains ...*string) {
	if s.cache == nil {
		return
	}
	for _, domain := range domains {
		if domain == nil {
			continue
		}
		if err := s.cache.Delete(ctx, *domain); err != nil {
			s.log.WithError(err).WithField("domain", *domain).Warn("domain cache invalidation failed")
		}
	}
}

// scammerDomain derives the indexed domain from a website, or nil when it has none.
func scammerDomain(website *string) *string {
	if website == nil {
		return nil
	}
	domain := utils.NormalizeDomain(*website)
	if !utils.IsValidDomain(domain) {
		return nil
	}
	return &domain
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *ScamService) List(ctx context.Context, filter types.ScamFilter, page, limit int) ([]types.ScamResponse, types.Pagination, error) {
	rows, total, err := s.scams.List(ctx, filter, types.Offset(page, limit), limit)
	if err != nil {
		return nil, types.Pagination{}, errors.Wrap(err, "list scams")
	}
	return toScamResponses(rows), types.NewPagination(total, page, limit), nil
}

// Get returns the scam and counts the read as a view.
func (s *ScamService) Get(ctx context.Context, id uint) (*types.ScamResponse, error) {
	if err := s.scams.IncrementViews(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "get scam %d", id)
	}
	return s.detail(ctx, id)
}

func (s *ScamService) detail(ctx context.Context, id uint) (*types.ScamResponse, error) {
	row, err := s.scams.GetDetail(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get scam %d", id)
	}
	response := toScamResponse(*row)
	return &response, nil
}

// OwnerOf returns the id of the user who filed the scam.
func (s *ScamService) OwnerOf(ctx context.Context, id uint) (uint, error) {
	scam, err := s.scams.FindByID(ctx, id)
	if err != nil {
		return 0, errors.Wrapf(err, "get scam %d", id)
	}
	return scam.UserID, nil
}

func (s *ScamService) Create(ctx context.Context, ownerID uint, req types.CreateScamRequest) (*types.ScamResponse, error) {
	if !req.Category.Valid() {
		return nil, apperrors.Validation("Categoria inválida")
	}

	website := optionalString(req.ScammerWebsite)
	scam := &models.Scam{
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Category:       req.Category,
		Status:         models.ScamStatusPending,
		ScammerWebsite: website,
		ScammerDomain:  scammerDomain(website),
		ScammerPhone:   optionalString(req.ScammerPhone),
		AmountLost:     req.AmountLost,
		Evidence:       pq.StringArray(req.Evidence),
		UserID:         ownerID,
	}
	if scam.Evidence == nil {
		scam.Evidence = pq.StringArray{}
	}
	scam.ResolutionLinks = pq.StringArray{}

	if err := s.scams.Create(ctx, scam); err != nil {
		return nil, errors.Wrap(err, "create scam")
	}
	s.forgetDomains(ctx, scam.ScammerDomain)
	return s.detail(ctx, scam.ID)
}

func (s *ScamService) Update(ctx context.Context, id uint, req types.UpdateScamRequest) (*types.ScamResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, apperrors.Validation("Categoria inválida")
		}
		updates["category"] = *req.Category
	}
	var previousDomain, nextDomain *string
	if req.ScammerWebsite != nil {
		current, err := s.scams.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "get scam %d", id)
		}
		previousDomain = current.ScammerDomain

		website := optionalString(req.ScammerWebsite)
		nextDomain = scammerDomain(website)
		updates["scammer_website"] = website
		updates["scammer_domain"] = nextDomain
	}
	if req.ScammerPhone != nil {
		updates["scammer_phone"] = optionalString(req.ScammerPhone)
	}
	if req.AmountLost != nil {
		updates["amount_lost"] = req.AmountLost
	}
	if req.Evidence != nil {
		updates["evidence"] = pq.StringArray(req.Evidence)
	}

	if err := s.scams.Update(ctx, id, updates); err != nil {
		return nil, errors.Wrapf(err, "update scam %d", id)
	}
	s.forgetDomains(ctx, previousDomain, nextDomain)
	return s.detail(ctx, id)
}

func (s *ScamService) Delete(ctx context.Context, id uint) error {
	scam, err := s.scams.FindByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "get scam %d", id)
	}
	if err := s.scams.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete scam %d", id)
	}
	s.forgetDomains(ctx, scam.ScammerDomain)
	return nil
}

// Resolve records the owner's closure of the case. A scam resolves once.
func (s *ScamService) Resolve(ctx context.Context, id uint, note string, links []string) (*types.ScamResponse, error) {
	if links == nil {
		links = []string{}
	}
	if err := s.scams.Resolve(ctx, id, optionalString(&note), pq.StringArray(links), s.now()); err != nil {
		return nil, errors.Wrapf(err, "resolve scam %d", id)
	}
	return s.detail(ctx, id)
}

func (s *ScamService) ToggleLike(ctx context.Context, scamID, userID uint) (*types.LikeResult, error) {
	liked, err := s.likes.Toggle(ctx, scamID, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "toggle like on scam %d", scamID)
	}
	likes, err := s.likes.CountForScam(ctx, scamID)
	if err != nil {
		return nil, errors.Wrap(err, "count likes")
	}
	return &types.LikeResult{Liked: liked, Likes: likes}, nil
}

// Save bookmarks the scam. Saving twice is a no-op.
func (s *ScamService) Save(ctx context.Context, userID, scamID uint) error {
	return errors.Wrapf(s.saved.Save(ctx, userID, scamID), "save scam %d", scamID)
}

func (s *ScamService) Unsave(ctx context.Context, userID, scamID uint) error {
	return errors.Wrapf(s.saved.Unsave(ctx, userID, scamID), "unsave scam %d", scamID)
}

func (s *ScamService) ListSaved(ctx context.Context, userID uint, page, limit int) ([]types.ScamResponse, types.Pagination, error) {
	return s.List(ctx, types.ScamFilter{SavedBy: &userID}, page, limit)
}

func (s *ScamService) Report(ctx context.Context, scamID, reporterID uint, reason string, description *string) (*models.Report, error) {
	report := &models.Report{
		ScamID:      scamID,
		UserID:      reporterID,
		Reason:      strings.TrimSpace(reason),
		Description: optionalString(description),
		Status:      models.ReportStatusPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, errors.Wrapf(err, "report scam %d", scamID)
	}
	return report, nil
}
