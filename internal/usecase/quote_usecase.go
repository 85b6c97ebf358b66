package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"
	"dubiqo_quotes/internal/domain/quoteform"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/infrastructure/metrics"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidQuote          = errors.New("invalid quote request")
	ErrSubmissionInFlight    = errors.New("a quote request for this email is already being sent")
	ErrNotificationFailed    = errors.New("quote request could not be delivered")
	ErrQuoteRequestNotFound  = errors.New("quote request not found")
	ErrInvalidQuoteRequestID = errors.New("invalid quote request id")
	ErrInvalidEmail          = errors.New("invalid email")
)

const DefaultLockTTL = 2 * time.Minute

// ValidationError carries field-level messages. It matches ErrInvalidQuote.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidQuote.Error(), strings.Join(slices.Sorted(maps.Keys(e.Fields)), ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidQuote }

// EstimateResult is what the estimate endpoint and the CLI show.
// Estimate and Breakdown are nil while no project type is chosen.
type EstimateResult struct {
	Selection    entities.QuoteSelection
	Estimate     *entities.PriceEstimate
	Breakdown    *pricing.Breakdown
	DeliveryTime string
	RangeText    string
}

type IQuoteUseCase interface {
	Estimate(ctx context.Context, sel entities.QuoteSelection) (EstimateResult, error)
	Submit(ctx context.Context, submission entities.QuoteSubmission) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByEmail(ctx context.Context, email string) ([]entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRequestRepository
	notifier interfaces.IQuoteNotifier
	lock     interfaces.ISubmissionLock
	log      logger.Logger
	lockTTL  time.Duration
	now      func() time.Time
	newID    func() string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

var validate = validator.New()

func NewQuoteUseCase(
	repo interfaces.IQuoteRequestRepository,
	notifier interfaces.IQuoteNotifier,
	lock interfaces.ISubmissionLock,
	log logger.Logger,
	lockTTL time.Duration,
) *QuoteUseCase {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	return &QuoteUseCase{
		repo:     repo,
		notifier: notifier,
		lock:     lock,
		log:      log,
		lockTTL:  lockTTL,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (u *QuoteUseCase) Estimate(_ context.Context, sel entities.QuoteSelection) (EstimateResult, error) {
	sel = sel.Normalized()
	res, err := pricing.Calculate(sel)
	if err != nil {
		return EstimateResult{}, err
	}

	out := EstimateResult{
		Selection:    sel,
		DeliveryTime: pricing.DeliveryTime(sel.ProjectType, sel.Urgency),
	}
	if res == nil {
		return out, nil
	}

	projectLabel := string(sel.ProjectType)
	if !sel.ProjectType.Known() {
		u.log.Warn("[quote][usecase] unrecognized project type, using fallback price", map[string]interface{}{
			"project_type": sel.ProjectType,
		})
		projectLabel = "unrecognized"
	}
	metrics.EstimatesComputed.WithLabelValues(projectLabel, string(sel.Urgency)).Inc()

	out.Estimate = &res.Estimate
	out.Breakdown = &res.Breakdown
	out.RangeText = pricing.FormatRange(res.Estimate)
	return out, nil
}

// Submit records the quote request and hands it to the notifier exactly once.
//
// The estimate is recomputed from the selection; the range text sent to the
// agency never comes from the caller.
func (u *QuoteUseCase) Submit(ctx context.Context, sub entities.QuoteSubmission) (entities.QuoteRequest, error) {
	sel := sub.Selection()
	contact := sub.Contact().Trimmed()

	if fields := quoteform.FromInput(sel, contact).Validate(); len(fields) > 0 {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return entities.QuoteRequest{}, &ValidationError{Fields: fields}
	}

	est, err := pricing.Estimate(sel)
	if err != nil || est == nil {
		// Validate covers both; kept so a nil estimate can never be dereferenced.
		return entities.QuoteRequest{}, ErrInvalidQuote
	}
	canonical := entities.NewQuoteSubmission(contact, sel, pricing.FormatRange(*est))

	key := entities.NormalizeEmail(canonical.Email)
	log := u.log.WithFields(map[string]interface{}{"email": key})

	token, acquired, err := u.lock.Acquire(ctx, key, u.lockTTL)
	switch {
	case err != nil:
		log.WithError(err).Warn("[quote][usecase] submission lock unavailable, continuing without it", nil)
	case !acquired:
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return entities.QuoteRequest{}, ErrSubmissionInFlight
	default:
		defer func() {
			// released with a fresh context so a cancelled request still frees the key
			if err := u.lock.Release(context.WithoutCancel(ctx), key, token); err != nil {
				log.WithError(err).Warn("[quote][usecase] failed to release submission lock", nil)
			}
		}()
	}

	now := u.now()
	record := entities.QuoteRequest{
		ID:                u.newID(),
		Submission:        canonical,
		MinPrice:          est.MinPrice,
		MaxPrice:          est.MaxPrice,
		UrgencyMultiplier: est.UrgencyMultiplier,
		DeliveryTime:      pricing.DeliveryTime(sel.ProjectType, sel.Urgency),
		Status:            entities.QuoteRequestStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := u.repo.Create(ctx, record); err != nil {
		log.WithError(err).Error("[quote][usecase] failed to record quote request", nil)
		return entities.QuoteRequest{}, fmt.Errorf("record quote request: %w", err)
	}
	log = log.WithFields(map[string]interface{}{"quote_id": record.ID})

	start := time.Now()
	delivered, sendErr := u.notifier.SendQuoteRequest(ctx, canonical)
	status := entities.QuoteRequestStatusSent
	if sendErr != nil || !delivered {
		status = entities.QuoteRequestStatusFailed
	}
	metrics.NotificationDuration.WithLabelValues(u.notifier.Name(), string(status)).Observe(time.Since(start).Seconds())

	if status == entities.QuoteRequestStatusFailed {
		reason := "notifier reported failure"
		if sendErr != nil {
			reason = sendErr.Error()
		}
		log.Warn("[quote][usecase] quote request delivery failed", map[string]interface{}{"reason": reason})
		if _, err := u.repo.UpdateStatusByID(context.WithoutCancel(ctx), record.ID, status, reason); err != nil {
			log.WithError(err).Error("[quote][usecase] failed to mark quote request failed", nil)
		}
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		if sendErr != nil {
			return entities.QuoteRequest{}, fmt.Errorf("%w: %w", ErrNotificationFailed, sendErr)
		}
		return entities.QuoteRequest{}, ErrNotificationFailed
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeSent).Inc()
	log.Info("[quote][usecase] quote request sent", map[string]interface{}{"range": canonical.EstimatedRangeText})

	// Delivered already: a failed status update is logged, not returned.
	updated, err := u.repo.UpdateStatusByID(context.WithoutCancel(ctx), record.ID, status, "")
	switch {
	case err != nil:
		log.WithError(err).Error("[quote][usecase] failed to mark quote request sent", nil)
	case updated.ID == "":
		log.Error("[quote][usecase] quote request vanished before it could be marked sent", nil)
	default:
		return updated, nil
	}
	record.Status = status
	record.UpdatedAt = u.now()
	return record, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.QuoteRequest, error) {
	email = strings.TrimSpace(email)
	if email == "" || validate.Var(email, "email") != nil {
		return nil, ErrInvalidEmail
	}
	return u.repo.ListByEmail(ctx, email)
}
