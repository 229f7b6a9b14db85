// Package notify alerts the care team when a submission is classified as an
// emergency.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"triagedesk/internal/domain/triage"
	"triagedesk/internal/shared/config"
	"triagedesk/internal/shared/logger"
)

// EmergencyNotifier sends a mail to the care team address for every
// EMERGENCY classification. Delivery is best effort: a failed alert is
// logged, never surfaced to the patient.
type EmergencyNotifier struct {
	cfg    *config.NotifyConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewEmergencyNotifier(cfg *config.NotifyConfig, log logger.Interface) *EmergencyNotifier {
	var dialer *gomail.Dialer
	if cfg != nil && cfg.Enabled {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}

	return &EmergencyNotifier{
		cfg:    cfg,
		dialer: dialer,
		logger: log,
	}
}

// NotifyEmergency alerts the care team about an emergency case. Returns
// without doing anything when notifications are disabled.
func (n *EmergencyNotifier) NotifyEmergency(c *triage.Case) {
	if n.dialer == nil || n.cfg.CareTeamAddr == "" {
		return
	}

	subject := fmt.Sprintf("EMERGENCY triage case %s", c.Number())

	plainBody := fmt.Sprintf(`An emergency triage case requires immediate attention.

Case number: %s
Urgency: %s
Summary: %s
Recommended action: %s

Red flags: %v
`, c.Number(), c.UrgencyLevel().String(), c.AISummary(), c.RecommendedAction(), c.RedFlags())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Emergency triage case %s</h2>
			<p>An emergency triage case requires immediate attention.</p>
			<p><strong>Summary:</strong> %s</p>
			<p><strong>Recommended action:</strong> %s</p>
			<p><strong>Red flags:</strong> %v</p>
		</body>
		</html>
	`, c.Number(), c.AISummary(), c.RecommendedAction(), c.RedFlags())

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.FromAddress, n.cfg.FromName))
	m.SetHeader("To", n.cfg.CareTeamAddr)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Errorw("failed to send emergency alert",
			"case_number", c.Number(),
			"error", err,
		)
		return
	}

	n.logger.Infow("emergency alert sent",
		"case_number", c.Number(),
		"care_team", n.cfg.CareTeamAddr,
	)
}
