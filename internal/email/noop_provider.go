package email

import "jobhunt_backend/internal/logger"

// NoopProvider logs instead of sending. Used when SMTP is not configured,
// so development environments work without a mail relay.
type NoopProvider struct {
	renderer TemplateRenderer
}

func NewNoopProvider(renderer TemplateRenderer) *NoopProvider {
	return &NoopProvider{renderer: renderer}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.GetLogger().Info("email suppressed (no smtp configured)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *NoopProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer != nil {
		// Render anyway so template errors surface in development.
		if _, err := p.renderer.Render(templateName, data); err != nil {
			return err
		}
	}
	return p.Send(email)
}

func (p *NoopProvider) Validate() error { return nil }
func (p *NoopProvider) Close() error    { return nil }
