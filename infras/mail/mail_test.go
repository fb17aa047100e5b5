package mail_test

import (
	"aircon/config"
	"aircon/infras/mail"
	"aircon/infras/otel/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func mailConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mail.FromAddress = "noreply@aircon.example"
	cfg.Mail.FromName = "Aircon Services"

	return cfg
}

func TestBuildMessage(t *testing.T) {
	cfg := mailConfig()

	msg, err := mail.BuildMessage(cfg, mail.Message{
		To:      "alice@example.com",
		ReplyTo: "ops@aircon.example",
		Subject: "We received your booking",
		Text:    "Thanks",
		HTML:    "<p>Thanks</p>",
	})
	require.NoError(t, err)

	to := msg.GetToString()
	assert.Equal(t, []string{"<alice@example.com>"}, to)
	assert.Equal(t, []string{"We received your booking"}, msg.GetGenHeader(gomail.HeaderSubject))
}

func TestBuildMessageErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		message mail.Message
	}{
		{
			name:    "blank recipient",
			cfg:     mailConfig(),
			message: mail.Message{To: "  ", Subject: "hello"},
		},
		{
			name:    "invalid recipient",
			cfg:     mailConfig(),
			message: mail.Message{To: "not an address", Subject: "hello"},
		},
		{
			name:    "missing sender",
			cfg:     &config.Config{},
			message: mail.Message{To: "alice@example.com", Subject: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mail.BuildMessage(tt.cfg, tt.message)
			assert.Error(t, err)
		})
	}
}

func TestDisabledMailerOnlyLogs(t *testing.T) {
	cfg := mailConfig()
	cfg.Mail.Enable = false

	mailer := mail.New(cfg, mocks.NewOtel())

	err := mailer.Send(context.Background(), mail.Message{To: "alice@example.com", Subject: "hello"})
	assert.NoError(t, err)

	err = mailer.Send(context.Background(), mail.Message{Subject: "hello"})
	assert.ErrorIs(t, err, mail.ErrNoRecipient)
}

func TestEnabledWithoutHostFallsBackToLog(t *testing.T) {
	cfg := mailConfig()
	cfg.Mail.Enable = true

	mailer := mail.New(cfg, mocks.NewOtel())

	assert.NoError(t, mailer.Send(context.Background(), mail.Message{To: "alice@example.com", Subject: "hello"}))
}
