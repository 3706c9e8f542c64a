package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-server/internal/config"
)

func TestSendContactRequiresConfiguration(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Port: "587"})
	err := m.SendContact("Visitor", "v@example.com", "hi")
	assert.ErrorContains(t, err, "credentials not configured")

	m = New(config.SMTPConfig{Host: "smtp.example.com", Port: "587", User: "u", Password: "p"})
	err = m.SendContact("Visitor", "v@example.com", "hi")
	assert.ErrorContains(t, err, "recipient not configured")
}
