package channels

import (
	"fmt"
	"strings"

	"alertnet_backend/internal/models"
)

func severityEmoji(severity models.AlertSeverity) string {
	switch severity {
	case models.SeverityCritical:
		return "\U0001F6A8" // rotating light
	case models.SeverityHigh:
		return "⚠️" // warning sign
	case models.SeverityMedium:
		return "\U0001F4E2" // loudspeaker
	default:
		return "ℹ️" // information
	}
}

func categoryName(alert *models.Alert) string {
	if alert.Category != nil {
		return alert.Category.Name
	}
	return "Alert"
}

func communityName(alert *models.Alert) string {
	if alert.Community != nil {
		return alert.Community.Name
	}
	return "your community"
}

// RenderEmail builds the plain-text alert email for one recipient.
func RenderEmail(alert *models.Alert, user *models.User, baseURL string) Content {
	subject := fmt.Sprintf("[Community Alert] %s: %s", alert.Severity.Display(), alert.Title)

	location := alert.Address
	if location == "" {
		location = fmt.Sprintf("%.5f, %.5f", alert.Latitude, alert.Longitude)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", user.FullName())
	fmt.Fprintf(&b, "A new security alert has been posted in %s.\n\n", communityName(alert))
	b.WriteString("ALERT DETAILS\n")
	fmt.Fprintf(&b, "Title: %s\n", alert.Title)
	fmt.Fprintf(&b, "Category: %s\n", categoryName(alert))
	fmt.Fprintf(&b, "Severity: %s\n", alert.Severity.Display())
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Reported: %s\n\n", alert.IncidentAt.Format("Jan 2, 2006 at 15:04"))
	b.WriteString("DESCRIPTION\n")
	b.WriteString(alert.Description)
	b.WriteString("\n\n")
	b.WriteString("WHAT TO DO\n")
	b.WriteString("- Stay aware of your surroundings.\n")
	b.WriteString("- Report anything suspicious to local authorities.\n")
	b.WriteString("- Check on neighbors who may be affected.\n\n")
	fmt.Fprintf(&b, "View the full alert: %s/alerts/%s\n\n", baseURL, alert.ID)
	b.WriteString("Stay safe,\nThe Community Alert Team\n")

	return Content{Subject: subject, Body: b.String()}
}

// RenderPush builds the push payload. The body stays short; details go
// in the data map so the client can deep-link.
func RenderPush(alert *models.Alert) Content {
	title := fmt.Sprintf("%s %s Alert - %s", severityEmoji(alert.Severity), alert.Severity.Display(), communityName(alert))
	body := fmt.Sprintf("%s: %s", categoryName(alert), alert.Title)

	return Content{
		Subject: title,
		Body:    body,
		Data: map[string]string{
			"alert_id": alert.ID,
			"severity": string(alert.Severity),
			"category": categoryName(alert),
		},
	}
}

// RenderTest is the payload for the self-service delivery check.
func RenderTest(channel models.NotificationChannel) Content {
	return Content{
		Subject: "Test Notification",
		Body:    fmt.Sprintf("This is a test %s notification from Community Alert. If you can read this, delivery works.", channel),
	}
}
