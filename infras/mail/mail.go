package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"aircon/config"
	"aircon/infras/otel"
	"aircon/shared/constant"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

var ErrNoRecipient = errors.New("message has no recipient")

// Message is a single outbound email with a plain text body and an optional HTML alternative.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

type logMailer struct {
	otel otel.Otel
}

// New returns an SMTP mailer, or a mailer that only logs when delivery is disabled or no host is
// configured.
func New(cfg *config.Config, ot otel.Otel) Mailer {
	if !cfg.Mail.Enable || cfg.Mail.Host == "" {
		log.Warn().Bool("enable", cfg.Mail.Enable).Msg("Mail delivery disabled, messages will only be logged")

		return &logMailer{otel: ot}
	}

	return &smtpMailer{cfg: cfg, otel: ot}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"mail.subject": msg.Subject,
		"mail.host":    m.cfg.Mail.Host,
	})

	message, err := BuildMessage(m.cfg, msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Mail.Host, clientOptions(m.cfg)...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func (m *logMailer) Send(ctx context.Context, msg Message) error {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Log")
	defer scope.End()

	if strings.TrimSpace(msg.To) == "" {
		scope.TraceError(ErrNoRecipient)

		return ErrNoRecipient
	}

	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("[MOCK EMAIL] mail delivery disabled, message not sent")

	return nil
}

// BuildMessage renders msg into a go-mail message using the configured sender.
func BuildMessage(cfg *config.Config, msg Message) (*gomail.Msg, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, ErrNoRecipient
	}

	message := gomail.NewMsg()

	if err := message.FromFormat(cfg.Mail.FromName, cfg.Mail.FromAddress); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	if msg.ReplyTo != "" {
		if err := message.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}

	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Text)

	if msg.HTML != "" {
		message.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	return message, nil
}

func clientOptions(cfg *config.Config) []gomail.Option {
	options := []gomail.Option{
		gomail.WithTLSPolicy(tlsPolicy(cfg.Mail.TLSPolicy)),
	}

	if cfg.Mail.Port > 0 {
		options = append(options, gomail.WithPort(cfg.Mail.Port))
	}

	if cfg.Mail.TimeoutSeconds > 0 {
		options = append(options, gomail.WithTimeout(time.Duration(cfg.Mail.TimeoutSeconds)*time.Second))
	}

	if cfg.Mail.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.Username),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	return options
}

func tlsPolicy(policy string) gomail.TLSPolicy {
	switch strings.ToLower(policy) {
	case "mandatory":
		return gomail.TLSMandatory
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSOpportunistic
	}
}
