package email

// Provider sends outgoing mail. Implementations must be safe for
// concurrent use; the auth service sends from goroutines.
type Provider interface {
	Send(email *Email) error
	SendWithTemplate(templateName string, data TemplateData, email *Email) error
	Validate() error
	Close() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
