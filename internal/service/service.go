package service

import (
	"github.com/avelarde/recargas/internal/handlers/auth"
	"github.com/avelarde/recargas/internal/handlers/recarga"
	"github.com/avelarde/recargas/internal/handlers/wallet"
	"github.com/avelarde/recargas/internal/sweeper"

	pkgauth "github.com/avelarde/recargas/pkg/auth"

	"github.com/avelarde/recargas/internal/pg"
	"github.com/avelarde/recargas/internal/repo"
	"github.com/avelarde/recargas/internal/service/assignservice"
	"github.com/avelarde/recargas/internal/service/authservice"
	"github.com/avelarde/recargas/internal/service/ledgerservice"
	"github.com/avelarde/recargas/internal/service/rateservice"
	"github.com/avelarde/recargas/internal/service/rechargeservice"
)

type Services struct {
	AuthService     auth.Service
	RechargeService recarga.Service
	LedgerService   wallet.Ledger
	RateService     wallet.Rates

	// Workflow is the concrete recharge workflow for background consumers
	// (the assignment sweeper).
	Workflow sweeper.Workflow
}

func New(repo *repo.Repositories, txManager pg.TXManager, publisher rechargeservice.Publisher) *Services {
	ledgerService := ledgerservice.New(repo.WalletRepo, txManager)
	rateService := rateservice.New(repo.RateRepo)
	assignService := assignservice.New(repo.WorkerRepo, txManager)
	rechargeService := rechargeservice.New(repo.RechargeRepo, ledgerService, rateService, assignService, publisher, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		RechargeService: rechargeService,
		LedgerService:   ledgerService,
		RateService:     rateService,
		Workflow:        rechargeService,
	}
}
