package repo

import (
	"github.com/avelarde/recargas/internal/pg"
	raterepo "github.com/avelarde/recargas/internal/repo/rate-repo"
	rechargerepo "github.com/avelarde/recargas/internal/repo/recharge-repo"
	userrepo "github.com/avelarde/recargas/internal/repo/user-repo"
	walletrepo "github.com/avelarde/recargas/internal/repo/wallet-repo"
	workerrepo "github.com/avelarde/recargas/internal/repo/worker-repo"
	"github.com/avelarde/recargas/internal/service/assignservice"
	"github.com/avelarde/recargas/internal/service/authservice"
	"github.com/avelarde/recargas/internal/service/ledgerservice"
	"github.com/avelarde/recargas/internal/service/rateservice"
	"github.com/avelarde/recargas/internal/service/rechargeservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	WalletRepo   ledgerservice.Repo
	RechargeRepo rechargeservice.Repo
	WorkerRepo   assignservice.Repo
	RateRepo     rateservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		WalletRepo:   walletrepo.New(conn),
		RechargeRepo: rechargerepo.New(conn),
		WorkerRepo:   workerrepo.New(conn),
		RateRepo:     raterepo.New(conn),
	}
}
