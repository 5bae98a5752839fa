// Package notify composes and delivers transactional email. Callers hand it
// plain data and get back a delivered/not-delivered outcome; a failed send is
// never an error for the primary operation.
package notify

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/hrithikcode/TO-DO-LIST/internal/config"
	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	appURL  string
	enabled bool
	log     zerolog.Logger
}

func NewMailer(cfg config.MailConfig, log zerolog.Logger) *Mailer {
	enabled := cfg.Enabled && cfg.Username != "" && cfg.Password != ""
	if !enabled {
		log.Warn().Msg("mail delivery disabled or not configured, emails will be skipped")
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    from,
		appURL:  cfg.AppURL,
		enabled: enabled,
		log:     log,
	}
}

func (m *Mailer) SendPasswordReset(to, username, resetToken string) bool {
	data := resetData{
		Username:  username,
		Email:     to,
		ResetLink: fmt.Sprintf("%s/reset-password?token=%s", m.appURL, url.QueryEscape(resetToken)),
		Requested: timestamp(),
	}

	var html, text bytes.Buffer
	if err := resetHTML.Execute(&html, data); err != nil {
		m.log.Error().Err(err).Msg("render reset email")
		return false
	}
	if err := resetText.Execute(&text, data); err != nil {
		m.log.Error().Err(err).Msg("render reset email")
		return false
	}

	return m.send(to, "Password Reset Request - Todo App", html.String(), text.String())
}

// SendTodoCreated delivers the creation digest: the new task plus every task
// still open.
func (m *Mailer) SendTodoCreated(to, username string, created models.Todo, active []models.Todo) bool {
	data := digestData{
		Username:    username,
		TodoTitle:   created.Title,
		TodoDesc:    created.Description,
		ActiveTodos: active,
		AppURL:      m.appURL,
		Sent:        timestamp(),
	}

	var html, text bytes.Buffer
	if err := digestHTML.Execute(&html, data); err != nil {
		m.log.Error().Err(err).Msg("render digest email")
		return false
	}
	if err := digestText.Execute(&text, data); err != nil {
		m.log.Error().Err(err).Msg("render digest email")
		return false
	}

	subject := fmt.Sprintf("New Task Created: %s", created.Title)
	return m.send(to, subject, html.String(), text.String())
}

func (m *Mailer) SendSummary(to, username string, active []models.Todo) bool {
	data := summaryData{
		Username:    username,
		ActiveTodos: active,
		AppURL:      m.appURL,
		Sent:        timestamp(),
	}

	var html, text bytes.Buffer
	if err := summaryHTML.Execute(&html, data); err != nil {
		m.log.Error().Err(err).Msg("render summary email")
		return false
	}
	if err := summaryText.Execute(&text, data); err != nil {
		m.log.Error().Err(err).Msg("render summary email")
		return false
	}

	subject := fmt.Sprintf("Todo Summary: %d Active Tasks", len(active))
	return m.send(to, subject, html.String(), text.String())
}

func (m *Mailer) send(to, subject, htmlBody, textBody string) bool {
	if !m.enabled {
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("email delivery failed")
		return false
	}

	m.log.Info().Str("to", to).Str("subject", subject).Msg("email delivered")
	return true
}
