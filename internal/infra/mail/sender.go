package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/AKastantin/BPP-LP/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPropertyReport renders the valuation snapshot captured at request time
// and mails it. The snapshot is opaque JSON, so numbers come in as float64.
func (s *EmailSender) SendPropertyReport(payload queue.EmailReportPayload) error {
	data := PropertyReportData{
		PropertyAddress:  payload.PropertyAddress,
		CurrentValue:     poundFigure(payload.Results, "currentValue"),
		OneYearForecast:  poundFigure(payload.Results, "oneYearForecast"),
		FiveYearForecast: poundFigure(payload.Results, "fiveYearForecast"),
		Confidence:       plainFigure(payload.Results, "confidence"),
	}

	tmplPath := filepath.Join("templates", "property-report.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render report template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your property forecast for %s", payload.PropertyAddress))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report via SMTP: %w", err)
	}

	return nil
}

func poundFigure(results map[string]any, key string) string {
	figure := plainFigure(results, key)
	if figure == "N/A" {
		return figure
	}
	return "£" + figure
}

func plainFigure(results map[string]any, key string) string {
	value, ok := results[key]
	if !ok {
		return "N/A"
	}

	switch v := value.(type) {
	case float64:
		return groupThousands(int64(v))
	case int:
		return groupThousands(int64(v))
	case string:
		return v
	default:
		return "N/A"
	}
}

func groupThousands(n int64) string {
	raw := fmt.Sprintf("%d", n)
	if len(raw) <= 3 {
		return raw
	}

	var parts []string
	for len(raw) > 3 {
		parts = append([]string{raw[len(raw)-3:]}, parts...)
		raw = raw[:len(raw)-3]
	}
	parts = append([]string{raw}, parts...)
	return strings.Join(parts, ",")
}
