package email

import (
	"fmt"

	"adboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider отправляет письма через SMTP (gomail)
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to string) error {
	body := fmt.Sprintf(
		"<h2>Добро пожаловать в AdBoard!</h2>"+
			"<p>Ваш аккаунт %s создан. Первая публикация - бесплатно, "+
			"каждая следующая стоит 5 кредитов.</p>", to)
	return p.Send(to, "Добро пожаловать в AdBoard", body)
}

func (p *SMTPProvider) SendPurchaseReceipt(to string, credits int, amountPaid float64, transactionID string) error {
	body := fmt.Sprintf(
		"<h2>Квитанция об оплате</h2>"+
			"<p>Куплено кредитов: %d</p>"+
			"<p>Сумма: %.2f</p>"+
			"<p>Транзакция: %s</p>", credits, amountPaid, transactionID)
	return p.Send(to, "AdBoard: покупка кредитов", body)
}
