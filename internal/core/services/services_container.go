package services

import (
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/platform/storage"
)

// NewServiceContainer wires every service from the repositories and platform adapters.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, seedStore storage.Storage, provider portssvc.PaymentProvider) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo, cfg.InitialCredits)

	return &portssvc.ServiceContainer{
		User:               userService,
		TokenService:       NewTokenService(cfg, repos.UserRepo),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
		Lead:               NewLeadService(repos.LeadRepo, seedStore, cfg.SeedCSVKey),
		SavedList:          NewSavedListService(repos.SavedListRepo, repos.LeadRepo),
		SavedFilter:        NewSavedFilterService(repos.SavedFilterRepo),
		Credit:             NewCreditService(repos.CreditRepo, repos.UserRepo, repos.LeadRepo),
		Checkout:           NewCheckoutService(provider),
		APIToken:           NewAPITokenService(repos.APITokenRepo, userService),
	}
}
