package services

import (
	"context"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

const (
	domainReportsShown  = 5
	domainLookupTimeout = 5 * time.Second
	DomainCacheTTL      = 5 * time.Minute
)

type DomainService struct {
	scams repositories.ScamRepository
	cache repositories.DomainCache
	cb    *gobreaker.CircuitBreaker
	sf    singleflight.Group
	log   *logrus.Logger
	now   func() time.Time
}

// NewDomainService wires the lookup behind a circuit breaker. cache may be nil.
func NewDomainService(scams repositories.ScamRepository, cache repositories.DomainCache, log *logrus.Logger) *DomainService {
	st := gobreaker.Settings{
		Name:        "DomainLookup",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		IsSuccessful: breakerSuccessful,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	}

	return &DomainService{
		scams: scams,
		cache: cache,
		cb:    gobreaker.NewCircuitBreaker(st),
		log:   log,
		now:   time.Now,
	}
}

// Check reports how many scams name the domain and classifies the risk.
// Store failures are surfaced as ServiceUnavailable; no result is invented.
func (s *DomainService) Check(ctx context.Context, input string) (*types.DomainCheckResult, error) {
	domain := utils.NormalizeDomain(input)
	if !utils.IsValidDomain(domain) {
		return nil, apperrors.Validation("Domínio inválido")
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, domain)
		if err != nil {
			s.log.WithError(err).WithField("domain", domain).Warn("domain cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	// concurrent misses for one domain share a single store lookup, which
	// must not die with whichever caller happened to start it
	out, err, _ := s.sf.Do(domain, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), domainLookupTimeout)
		defer cancel()
		return s.cb.Execute(func() (interface{}, error) {
			return s.lookup(lookupCtx, domain)
		})
	})
	if err != nil {
		s.log.WithError(err).WithField("domain", domain).Error("domain lookup failed")
		return nil, apperrors.ServiceUnavailable("Verificação de domínio indisponível no momento", err)
	}
	result := out.(*types.DomainCheckResult)

	if s.cache != nil {
		if err := s.cache.Set(ctx, domain, result, DomainCacheTTL); err != nil {
			s.log.WithError(err).WithField("domain", domain).Warn("domain cache write failed")
		}
	}
	return result, nil
}

func (s *DomainService) lookup(ctx context.Context, domain string) (*types.DomainCheckResult, error) {
	count, err := s.scams.CountByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	scams, err := s.scams.FindByDomain(ctx, domain, domainReportsShown)
	if err != nil {
		return nil, err
	}

	reports := make([]types.DomainReport, 0, len(scams))
	for _, scam := range scams {
		reports = append(reports, types.DomainReport{
			ID:        scam.ID,
			Title:     scam.Title,
			Category:  string(scam.Category),
			Status:    string(scam.Status),
			CreatedAt: scam.CreatedAt,
		})
	}

	return &types.DomainCheckResult{
		Domain:      domain,
		Risk:        types.DomainRiskFor(count),
		ReportCount: count,
		Reports:     reports,
		CheckedAt:   s.now(),
	}, nil
}

// breakerSuccessful keeps client cancellations out of the failure count.
// A deadline still counts: the lookup only runs out of time on its own timeout.
func breakerSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}
