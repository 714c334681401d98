package email

import (
	"testing"

	"github.com/kartavya/website/internal/app/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyWithoutCredentialsOnlyLogs(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{}, zerolog.Nop())
	called := false
	n.send = func(string, string, string) error { called = true; return nil }

	require.NoError(t, n.NotifyApplication(models.Application{NGOName: "Green Roots"}))
	assert.False(t, called)
}

func TestNotifySendsToStaffInbox(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Username: "u", Password: "p", NotifyEmail: "staff@kartavya.org", SiteName: "KARTAVYA"}, zerolog.Nop())
	var to, subject, body string
	n.send = func(t, s, b string) error { to, subject, body = t, s, b; return nil }

	require.NoError(t, n.NotifyApplication(models.Application{NGOName: "Green <Roots>", Email: "a@b.org", Description: "trees"}))
	assert.Equal(t, "staff@kartavya.org", to)
	assert.Equal(t, "New incubator application: Green <Roots>", subject)
	assert.Contains(t, body, "Green &lt;Roots&gt;")
	assert.NotContains(t, body, "Website", "empty optional fields are omitted")
}
