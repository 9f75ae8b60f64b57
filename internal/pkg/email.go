package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled SMTP 未配置时跳过发信
func (cfg SMTPConfig) Enabled() bool {
	return cfg.Host != "" && cfg.From != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// WelcomeHTML 注册成功的欢迎邮件正文
func WelcomeHTML(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Your account has been created. You can now create communities and invite members.</p>`, name)
}
