package services

import (
	"adboard_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	PostService   PostService
	CreditService CreditService
	EmailService  email.Provider
}
