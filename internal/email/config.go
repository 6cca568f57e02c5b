package email

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Configured reports whether enough is set to actually send mail.
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.FromEmail != ""
}
