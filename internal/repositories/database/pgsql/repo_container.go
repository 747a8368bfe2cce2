package pgsql

import (
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ItemRepo:        itemRepo,
		TransactionRepo: transactionRepo,
		ReportingRepo:   reportingRepo,
		UserRepo:        userRepo,
	}
}
