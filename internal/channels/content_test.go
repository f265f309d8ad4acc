package channels

import (
	"testing"
	"time"

	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleAlert() *models.Alert {
	return &models.Alert{
		BaseModel:   models.BaseModel{ID: "alert-1"},
		Title:       "Car break-in on Elm Street",
		Description: "Driver side window smashed, glovebox emptied.",
		Severity:    models.SeverityCritical,
		Address:     "12 Elm Street",
		Latitude:    40.7128,
		Longitude:   -74.006,
		IncidentAt:  time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
		Community:   &models.Community{Name: "Riverside"},
		Category:    &models.AlertCategory{Name: "Theft"},
	}
}

func TestRenderEmail(t *testing.T) {
	user := &models.User{FirstName: "Dana", LastName: "Kim", Email: "dana@example.com"}
	content := RenderEmail(sampleAlert(), user, "https://alerts.example.com")

	assert.Equal(t, "[Community Alert] Critical: Car break-in on Elm Street", content.Subject)
	assert.Contains(t, content.Body, "Hello Dana Kim,")
	assert.Contains(t, content.Body, "Riverside")
	assert.Contains(t, content.Body, "Category: Theft")
	assert.Contains(t, content.Body, "Severity: Critical")
	assert.Contains(t, content.Body, "Location: 12 Elm Street")
	assert.Contains(t, content.Body, "Driver side window smashed")
	assert.Contains(t, content.Body, "https://alerts.example.com/alerts/alert-1")
}

func TestRenderEmailFallsBackToCoordinates(t *testing.T) {
	alert := sampleAlert()
	alert.Address = ""
	content := RenderEmail(alert, &models.User{Email: "x@example.com"}, "http://localhost")
	assert.Contains(t, content.Body, "40.71280, -74.00600")
}

func TestRenderPush(t *testing.T) {
	content := RenderPush(sampleAlert())

	assert.Contains(t, content.Subject, "Critical Alert - Riverside")
	assert.Equal(t, "Theft: Car break-in on Elm Street", content.Body)
	assert.Equal(t, "alert-1", content.Data["alert_id"])
	assert.Equal(t, "critical", content.Data["severity"])
}

func TestRenderPushWithoutRelations(t *testing.T) {
	alert := sampleAlert()
	alert.Community = nil
	alert.Category = nil

	content := RenderPush(alert)
	assert.Contains(t, content.Subject, "your community")
	assert.Contains(t, content.Body, "Alert: Car break-in on Elm Street")
}
