package response

import (
	"encoding/json"
	"testing"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/quoteform"
	"dubiqo_quotes/internal/usecase"
	"dubiqo_quotes/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEstimateResult_NullEstimate(t *testing.T) {
	raw, err := json.Marshal(FromEstimateResult(usecase.EstimateResult{Selection: entities.DefaultSelection()}))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Nil(t, body["estimate"])
	assert.Nil(t, body["breakdown"])
	assert.Contains(t, body, "estimate")
}

func TestNewCatalogResponse(t *testing.T) {
	c := NewCatalogResponse()
	require.Len(t, c.ProjectTypes, 6)
	assert.Equal(t, ProjectTypeResponse{ID: "portfolio", Label: "Portfolio", BasePrice: 4999}, c.ProjectTypes[1])
	assert.Len(t, c.Features, 8)
	assert.Equal(t, []PageOptionResponse{
		{1, "1 page"}, {3, "3 pages"}, {5, "5 pages"}, {8, "8 pages"}, {10, "10+ pages"},
	}, c.PageOptions)
	assert.Equal(t, UrgencyResponse{ID: "rush", Label: "Rush", Multiplier: 1.5}, c.Urgencies[2])
}

func TestSubmitQuoteErrorResponse_FlattensError(t *testing.T) {
	appErr := pkg.NewDomainErrorSimple("NOTIFICATION_FAILED", "try again", 502).WithRetryable()
	raw, err := json.Marshal(SubmitQuoteErrorResponse{
		HTTPError: appErr.ToHTTPError(),
		Form:      FromForm(quoteform.New().Failed("")),
	})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "NOTIFICATION_FAILED", body["code"])
	assert.Equal(t, true, body["retryable"])
	form := body["form"].(map[string]interface{})
	assert.Equal(t, "failed", form["status"])
	assert.Equal(t, false, form["busy"])
	assert.Equal(t, quoteform.DefaultFailureMessage, form["failure_message"])
}
