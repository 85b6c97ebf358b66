package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dubiqo_quotes/internal/adapter/http/handlers/mocks"
	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"
	"dubiqo_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/estimate", h.Estimate)
	r.POST("/v1/quotes", h.Submit)
	r.GET("/v1/quotes", h.ListQuoteRequests)
	r.GET("/v1/quotes/:id", h.GetQuoteRequest)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

const validQuoteBody = `{"projectType":"dashboard","pageCount":5,"features":["payment","admin"],"urgency":"rush",
	"name":"Asha Rao","email":"asha@example.com","details":"Need a CRM"}`

func TestQuoteHandler_Estimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w, _ := doJSON(r, http.MethodPost, "/v1/quotes/estimate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid page count", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, entities.ErrInvalidPageCount)

		w, body := doJSON(r, http.MethodPost, "/v1/quotes/estimate", `{"projectType":"website","pageCount":4}`)
		if w.Code != http.StatusBadRequest || body["code"] != "INVALID_PAGE_COUNT" {
			t.Fatalf("expected 400 INVALID_PAGE_COUNT, got %d %v", w.Code, body)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		sel := entities.NewSelection(entities.ProjectTypeEcommerce, 10, nil, entities.UrgencyUrgent)
		res, _ := pricing.Calculate(sel)
		uc.EXPECT().Estimate(gomock.Any(), sel).Return(usecase.EstimateResult{
			Selection:    sel,
			Estimate:     &res.Estimate,
			Breakdown:    &res.Breakdown,
			DeliveryTime: "Priority delivery",
			RangeText:    "₹23,062 - ₹30,750",
		}, nil)

		w, body := doJSON(r, http.MethodPost, "/v1/quotes/estimate", `{"projectType":"ecommerce","pageCount":10,"urgency":"urgent"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		est := body["estimate"].(map[string]interface{})
		if est["minPrice"] != float64(23062) || est["maxPrice"] != float64(30750) {
			t.Fatalf("unexpected estimate: %v", est)
		}
		if body["range_text"] != "₹23,062 - ₹30,750" {
			t.Fatalf("unexpected range text: %v", body["range_text"])
		}
	})

	t.Run("no project type yields null estimate", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Estimate(gomock.Any(), entities.DefaultSelection()).Return(usecase.EstimateResult{Selection: entities.DefaultSelection()}, nil)

		w, body := doJSON(r, http.MethodPost, "/v1/quotes/estimate", `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if v, ok := body["estimate"]; !ok || v != nil {
			t.Fatalf("expected null estimate, got %v", v)
		}
	})
}

func TestQuoteHandler_Submit(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w, body := doJSON(r, http.MethodPost, "/v1/quotes", `{"name":`)
		if w.Code != http.StatusBadRequest || body["code"] != "INVALID_QUOTE_INPUT" {
			t.Fatalf("expected 400 INVALID_QUOTE_INPUT, got %d %v", w.Code, body)
		}
	})

	t.Run("field errors without calling the usecase", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w, body := doJSON(r, http.MethodPost, "/v1/quotes", `{"email":"bad","pageCount":3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		fields := body["fields"].(map[string]interface{})
		for _, f := range []string{"name", "email", "projectType"} {
			if _, ok := fields[f]; !ok {
				t.Fatalf("expected field error for %s, got %v", f, fields)
			}
		}
		form := body["form"].(map[string]interface{})
		if form["status"] != "editing" || form["busy"] != false {
			t.Fatalf("unexpected form: %v", form)
		}
		sel := form["selection"].(map[string]interface{})
		if sel["pageCount"] != float64(3) {
			t.Fatalf("form must keep entered values: %v", sel)
		}
	})

	t.Run("success resets form", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.QuoteSubmission) (entities.QuoteRequest, error) {
				if s.EstimatedRangeText != "₹27,000 - ₹36,000" {
					t.Fatalf("unexpected range text %q", s.EstimatedRangeText)
				}
				return entities.QuoteRequest{
					ID:         "q-1",
					Submission: s,
					Status:     entities.QuoteRequestStatusSent,
					CreatedAt:  time.Now().UTC(),
				}, nil
			},
		)

		w, body := doJSON(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		qr := body["quote_request"].(map[string]interface{})
		if qr["id"] != "q-1" || qr["status"] != "sent" {
			t.Fatalf("unexpected quote request: %v", qr)
		}
		form := body["form"].(map[string]interface{})
		sel := form["selection"].(map[string]interface{})
		if form["status"] != "editing" || sel["projectType"] != "" || sel["pageCount"] != float64(1) || form["estimate"] != nil {
			t.Fatalf("expected reset form, got %v", form)
		}
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		retryable  bool
	}{
		{"notifier failure", fmt.Errorf("%w: smtp down", usecase.ErrNotificationFailed), http.StatusBadGateway, "NOTIFICATION_FAILED", true},
		{"in flight", usecase.ErrSubmissionInFlight, http.StatusConflict, "SUBMISSION_IN_FLIGHT", false},
		{"storage down", errors.New("dynamodb unavailable"), http.StatusInternalServerError, "INTERNAL_ERROR", false},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newQuoteRouter(t)
			uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, tc.err)

			w, body := doJSON(r, http.MethodPost, "/v1/quotes", validQuoteBody)
			if w.Code != tc.wantStatus || body["code"] != tc.wantCode {
				t.Fatalf("expected %d %s, got %d %v", tc.wantStatus, tc.wantCode, w.Code, body)
			}
			if got, _ := body["retryable"].(bool); got != tc.retryable {
				t.Fatalf("retryable = %v, want %v", got, tc.retryable)
			}
			form := body["form"].(map[string]interface{})
			if form["status"] != "failed" || form["failure_message"] == "" {
				t.Fatalf("expected failed form, got %v", form)
			}
			contact := form["contact"].(map[string]interface{})
			if contact["email"] != "asha@example.com" {
				t.Fatalf("failed form must keep contact details: %v", contact)
			}
		})
	}
}

func TestQuoteHandler_GetQuoteRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.QuoteRequest{}, usecase.ErrQuoteRequestNotFound)
		w, _ := doJSON(r, http.MethodGet, "/v1/quotes/q-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteRequestStatusFailed, FailureReason: "smtp down"}, nil)
		w, body := doJSON(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK || body["status"] != "failed" || body["failure_reason"] != "smtp down" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})
}

func TestQuoteHandler_ListQuoteRequests(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListByEmail(gomock.Any(), "").Return(nil, usecase.ErrInvalidEmail)
		w, _ := doJSON(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListByEmail(gomock.Any(), "asha@example.com").Return([]entities.QuoteRequest{{ID: "b"}, {ID: "a"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?email=asha@example.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 2 || out[0]["id"] != "b" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
