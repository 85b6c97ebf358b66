package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateText(t *testing.T) {
	out, err := execute(t, "--project-type", "dashboard", "--pages", "5", "-f", "admin", "-f", "payment", "--urgency", "rush")
	require.NoError(t, err)
	assert.Contains(t, out, "₹27,000 - ₹36,000")
	assert.Contains(t, out, "50% faster delivery")
	assert.Contains(t, out, "x1.50")
}

func TestEstimateJSON(t *testing.T) {
	out, err := execute(t, "-t", "ecommerce", "-p", "10", "-u", "urgent", "--json")
	require.NoError(t, err)

	var got estimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(23062), got.Estimate.MinPrice)
	assert.Equal(t, int64(30750), got.Estimate.MaxPrice)
	assert.Equal(t, int64(20500), got.Breakdown.Subtotal)
	assert.Equal(t, "Priority delivery", got.DeliveryTime)
}

func TestEstimateErrors(t *testing.T) {
	_, err := execute(t, "-t", "website", "-p", "4")
	assert.Error(t, err)

	_, err = execute(t, "-t", "website", "-u", "yesterday")
	assert.Error(t, err)

	_, err = execute(t, "--pages", "3")
	assert.Error(t, err, "project type is required")
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "ecommerce")
	assert.Contains(t, out, "Multi-language Support")
	assert.Contains(t, out, "x1.25")
}
