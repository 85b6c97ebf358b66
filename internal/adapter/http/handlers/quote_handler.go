package handlers

import (
	"errors"
	"net/http"

	request "dubiqo_quotes/internal/adapter/http/dto/request"
	response "dubiqo_quotes/internal/adapter/http/dto/response"
	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/quoteform"
	"dubiqo_quotes/internal/usecase"
	"dubiqo_quotes/pkg"

	"github.com/gin-gonic/gin"
)

const inFlightMessage = "Your previous quote request is still being sent. Please wait a moment."

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the estimator and the quote request hand-off.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Estimate godoc
// @Summary      Estimate a quote
// @Description  Computes the price range for a selection. The estimate is null while no project type is chosen.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        selection  body      request.QuoteSelectionRequest  true  "Quote selection"
// @Success      200        {object}  response.EstimateResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /quotes/estimate [post]
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var payload request.QuoteSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Estimate(c.Request.Context(), payload.ToSelection())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// Submit godoc
// @Summary      Submit a quote request
// @Description  Validates the form, records the request and hands it to the notifier once. Every response carries the form state to render next.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.SubmitQuoteRequest  true  "Quote form"
// @Success      201    {object}  response.SubmitQuoteResponse
// @Failure      400    {object}  response.SubmitQuoteErrorResponse
// @Failure      409    {object}  response.SubmitQuoteErrorResponse
// @Failure      502    {object}  response.SubmitQuoteErrorResponse
// @Failure      500    {object}  response.SubmitQuoteErrorResponse
// @Router       /quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	form := quoteform.FromInput(payload.ToSelection(), payload.Contact())
	submitting, submission, err := form.BeginSubmit()
	if err != nil {
		appErr := mapQuoteError(err).WithFields(submitting.FieldErrors)
		writeSubmitError(c, appErr, submitting)
		return
	}

	record, err := h.usecase.Submit(c.Request.Context(), *submission)
	if err != nil {
		appErr := mapQuoteError(err)
		next := submitting.Failed(appErr.Message)
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			appErr = appErr.WithFields(verr.Fields)
		}
		writeSubmitError(c, appErr, next)
		return
	}

	c.JSON(http.StatusCreated, response.SubmitQuoteResponse{
		QuoteRequest: response.FromQuoteRequest(record),
		Form:         response.FromForm(submitting.Succeeded()),
	})
}

// GetQuoteRequest godoc
// @Summary      Get a quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote request ID"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuoteRequest(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// ListQuoteRequests godoc
// @Summary      List quote requests by email
// @Description  Newest first.
// @Tags         quotes
// @Produce      json
// @Param        email  query     string  true  "Client email"
// @Success      200    {array}   response.QuoteRequestResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuoteRequests(c *gin.Context) {
	qs, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(qs))
}

func writeSubmitError(c *gin.Context, appErr *pkg.AppError, form quoteform.Form) {
	c.JSON(appErr.HTTPStatus, response.SubmitQuoteErrorResponse{
		HTTPError: appErr.ToHTTPError(),
		Form:      response.FromForm(form),
	})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidPageCount):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_COUNT", "Page count must be one of 1, 3, 5, 8 or 10", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidUrgency):
		return pkg.NewDomainErrorSimple("INVALID_URGENCY", "Urgency must be normal, urgent or rush", http.StatusBadRequest)
	case errors.Is(err, quoteform.ErrInvalidForm), errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Please correct the highlighted fields", http.StatusBadRequest)
	case errors.Is(err, quoteform.ErrSubmitInFlight), errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", inFlightMessage, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("NOTIFICATION_FAILED", quoteform.DefaultFailureMessage, err, http.StatusBadGateway).WithRetryable()
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
