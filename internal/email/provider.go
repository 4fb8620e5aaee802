package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to string) error

	// SendPurchaseReceipt отправляет квитанцию о покупке кредитов
	SendPurchaseReceipt(to string, credits int, amountPaid float64, transactionID string) error
}
