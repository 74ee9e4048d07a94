package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type PaymentPage interface {
	MerchantName(ctx context.Context, username string) (string, error)
	MerchantPage(ctx context.Context, username string) (entity.Merchant, error)
	PaymentMethods(ctx context.Context, username string) (entity.Catalog, error)
	CreatePayment(ctx context.Context, username string, p entity.PaymentRequest) (entity.PaymentCreation, error)
	VerifyPayment(ctx context.Context, username, referenceID string) (entity.PaymentRecord, error)
}

type DashboardBackend interface {
	Login(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, password, newPassword string) error
	PaymentSummary(ctx context.Context, start, end time.Time) (entity.SuccessRate, error)
	FundTransferSummary(ctx context.Context, start, end time.Time) (entity.SuccessRate, error)
	DepositoryAccounts(ctx context.Context) ([]entity.DepositoryAccount, error)
	Transactions(ctx context.Context, status entity.TransactionStatus, day time.Time, page, limit int) ([]entity.Transaction, int, error)
	Withdraw(ctx context.Context, r entity.WithdrawalRequest) (entity.WithdrawalResult, error)
}

type DownloadQueue interface {
	Enqueue(ctx context.Context, job entity.DownloadJob) error
	List(ctx context.Context, owner string) ([]entity.DownloadJob, error)
	Remove(ctx context.Context, owner string, id uuid.UUID) error
	Clear(ctx context.Context, owner string) error
	ClearCompleted(ctx context.Context, owner string) error
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
	Queued(ctx context.Context, limit uint64) ([]entity.DownloadJob, error)
	Complete(ctx context.Context, id uuid.UUID, status entity.JobStatus, file []byte) error
	File(ctx context.Context, owner string, id uuid.UUID) (entity.DownloadFile, error)
}

type Producer interface {
	SendPaymentResolved(ctx context.Context, merchant, referenceID string, status entity.TransactionStatus, total decimal.Decimal)
}
