// Package mailer renders HTML email templates and hands them to an SMTP
// sender. Delivery is best effort: failures are logged and never returned.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer

const (
	TemplateWelcome             = "welcome"
	TemplateForgotPassword      = "forgot_password"
	TemplateRecoverPassword     = "recover_password"
	TemplateDeleteAccount       = "delete_account"
	TemplateDonationReceipt     = "donation_receipt"
	TemplateContactConfirmation = "contact_confirmation"
)

//go:embed templates/*.html
var templateFS embed.FS

type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

type Mailer struct {
	sender    Sender
	from      string
	templates map[string]*template.Template
}

func New(sender Sender, from string) (*Mailer, error) {
	names := []string{
		TemplateWelcome,
		TemplateForgotPassword,
		TemplateRecoverPassword,
		TemplateDeleteAccount,
		TemplateDonationReceipt,
		TemplateContactConfirmation,
	}
	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse email template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Mailer{
		sender:    sender,
		from:      from,
		templates: templates,
	}, nil
}

func (m *Mailer) Render(name string, data any) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *Mailer) Notify(ctx context.Context, to, subject, name string, data any) {
	log := zap.L().With(zap.String("to", to), zap.String("template", name))

	body, err := m.Render(name, data)
	if err != nil {
		log.Error("can't render email", zap.Error(err))
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		log.Error("invalid sender address", zap.Error(err))
		return
	}
	if err := msg.To(to); err != nil {
		log.Error("invalid recipient address", zap.Error(err))
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.sender.Send(ctx, msg); err != nil {
		log.Error("email failed", zap.Error(err))
		return
	}
	log.Info("email sent")
}
