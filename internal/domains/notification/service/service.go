package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"aircon/config"
	"aircon/infras/mail"
	"aircon/infras/otel"
	contentService "aircon/internal/domains/content/service"
	"aircon/internal/domains/notification/model"
	submissionModel "aircon/internal/domains/submission/model"
	"aircon/shared/constant"
	"aircon/shared/metrics"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmlTemplate "html/template"
	"strings"
	"sync"
	textTemplate "text/template"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var ErrNoAlertRecipient = errors.New("no alert recipient configured")

// Dispatcher delivers the acknowledgment and alert for a new submission. Deliveries are best
// effort: they run detached from the caller, are never retried, and failures are only logged.
type Dispatcher interface {
	Dispatch(ctx context.Context, submission submissionModel.Submission)
	// Wait blocks until every delivery started so far has finished.
	Wait()
}

type builder func(data model.TemplateData) (mail.Message, error)

type dispatcherImpl struct {
	mailer  mail.Mailer
	content contentService.Content
	cfg     *config.Config
	otel    otel.Otel
	text    *textTemplate.Template
	html    *htmlTemplate.Template
	wg      sync.WaitGroup
}

func New(mailer mail.Mailer, content contentService.Content, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		mailer:  mailer,
		content: content,
		cfg:     cfg,
		otel:    otel,
		text:    textTemplate.Must(textTemplate.ParseFS(templateFS, "templates/*.txt.tmpl")),
		html:    htmlTemplate.Must(htmlTemplate.ParseFS(templateFS, "templates/*.html.tmpl")),
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, submission submissionModel.Submission) {
	ctx = context.WithoutCancel(ctx)

	if strings.TrimSpace(submission.Email) == "" {
		log.Info().
			Str("submission_id", submission.ID).
			Str("notification", model.Acknowledgment).
			Msg("submission has no email, acknowledgment skipped")
		metrics.RecordNotification(model.Acknowledgment, metrics.ResultSkipped)
	} else {
		d.spawn(ctx, model.Acknowledgment, submission, d.acknowledgment)
	}

	d.spawn(ctx, model.Alert, submission, d.alert)
}

func (d *dispatcherImpl) Wait() {
	d.wg.Wait()
}

func (d *dispatcherImpl) spawn(ctx context.Context, notification string, submission submissionModel.Submission, build builder) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("submission_id", submission.ID).
					Str("notification", notification).
					Msg("notification delivery panicked")
				metrics.RecordNotification(notification, metrics.ResultFailed)
			}
		}()

		d.deliver(ctx, notification, submission, build)
	}()
}

func (d *dispatcherImpl) deliver(ctx context.Context, notification string, submission submissionModel.Submission, build builder) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+"."+notification)
	defer scope.End()

	scope.SetAttribute("submission.id", submission.ID)

	data := model.NewTemplateData(submission, d.content.Company(ctx))

	msg, err := build(data)
	if err == nil {
		err = d.mailer.Send(ctx, msg)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("submission_id", submission.ID).
			Str("notification", notification).
			Msg("failed to deliver notification")
		metrics.RecordNotification(notification, metrics.ResultFailed)

		return
	}

	log.Info().
		Str("submission_id", submission.ID).
		Str("notification", notification).
		Msg("notification delivered")
	metrics.RecordNotification(notification, metrics.ResultSent)
}

func (d *dispatcherImpl) acknowledgment(data model.TemplateData) (mail.Message, error) {
	msg := mail.Message{
		To:      data.Submission.Email,
		ReplyTo: data.Company.Email,
		Subject: d.subject(fmt.Sprintf("We have received your %s request", data.ServiceType), data.Company.Name),
	}

	return d.render(msg, "acknowledgment", data)
}

func (d *dispatcherImpl) alert(data model.TemplateData) (mail.Message, error) {
	recipient := d.cfg.Notification.AlertRecipient
	if recipient == "" {
		recipient = data.Company.Email
	}

	if recipient == "" {
		return mail.Message{}, ErrNoAlertRecipient
	}

	msg := mail.Message{
		To:      recipient,
		ReplyTo: data.Submission.Email,
		Subject: d.subject(fmt.Sprintf("New %s from %s (%s)", data.Submission.Kind, data.Submission.Name, data.ServiceType), ""),
	}

	return d.render(msg, "alert", data)
}

func (d *dispatcherImpl) subject(subject, signature string) string {
	if signature != "" {
		subject += " - " + signature
	}

	if prefix := d.cfg.Notification.SubjectPrefix; prefix != "" {
		subject = prefix + " " + subject
	}

	return subject
}

func (d *dispatcherImpl) render(msg mail.Message, name string, data model.TemplateData) (mail.Message, error) {
	var text, html bytes.Buffer

	if err := d.text.ExecuteTemplate(&text, name+".txt.tmpl", data); err != nil {
		return msg, fmt.Errorf("failed to render %s text: %w", name, err)
	}

	if err := d.html.ExecuteTemplate(&html, name+".html.tmpl", data); err != nil {
		return msg, fmt.Errorf("failed to render %s html: %w", name, err)
	}

	msg.Text = text.String()
	msg.HTML = html.String()

	return msg, nil
}
