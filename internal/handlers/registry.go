package handlers

// AppHandlers собирает все хендлеры приложения в одном месте
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	PostHandler   *PostHandler
	CreditHandler *CreditHandler
}
