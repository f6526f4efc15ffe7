package configs

import (
	"github.com/spf13/viper"
)

// MailService selects a named relay preset or a generic SMTP host/port pair.
type MailService string

const (
	// MailGmail uses Gmail's SMTP endpoint with the configured credentials.
	MailGmail MailService = "gmail"
	// MailSMTP uses the configured host and port directly.
	MailSMTP MailService = "smtp"
)

const (
	DefaultMailService = MailSMTP
	DefaultMailHost    = "localhost"
	DefaultMailPort    = 587
	DefaultMailTimeout = 15 // dial/send timeout, seconds

	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

// MailConfig holds the outbound mail relay configuration. AdminAddress is the
// recipient of every visit request and purchase inquiry.
type MailConfig struct {
	Service      MailService `mapstructure:"service" rule:"oneof=gmail smtp"`
	Host         string      `mapstructure:"host"`
	Port         int         `mapstructure:"port"    rule:"min=1,max=65535"`
	User         string      `mapstructure:"user"`
	Password     string      `mapstructure:"password"`
	From         string      `mapstructure:"from"`
	AdminAddress string      `mapstructure:"admin_address"`
	Timeout      int         `mapstructure:"timeout" rule:"min=1,max=120"`
}

// Endpoint resolves the effective relay host and port for the selected
// service.
func (c *MailConfig) Endpoint() (string, int) {
	if c.Service == MailGmail {
		return gmailHost, gmailPort
	}

	return c.Host, c.Port
}

// Sender returns the From address, falling back to the relay user.
func (c *MailConfig) Sender() string {
	if c.From != "" {
		return c.From
	}

	return c.User
}

// setDefaults applies the mail configuration defaults.
func (c *MailConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mail.service", string(DefaultMailService))
	v.SetDefault("mail.host", DefaultMailHost)
	v.SetDefault("mail.port", DefaultMailPort)
	v.SetDefault("mail.user", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.admin_address", "")
	v.SetDefault("mail.timeout", DefaultMailTimeout)
}
