package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/export"
)

const (
	defaultPageSize = 10

	buildBatchSize = 20
)

type Dashboard struct {
	backend   DashboardBackend
	queue     DownloadQueue
	retention time.Duration
	now       func() time.Time
}

func NewDashboard(backend DashboardBackend, queue DownloadQueue, retention time.Duration) *Dashboard {
	return &Dashboard{
		backend:   backend,
		queue:     queue,
		retention: retention,
		now:       time.Now,
	}
}

func (s *Dashboard) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", entity.ErrInvalidArgument)
	}

	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("login %q: %w", username, err)
	}

	return token, nil
}

func (s *Dashboard) ChangePassword(ctx context.Context, password, newPassword string) error {
	if password == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new password are required", entity.ErrInvalidArgument)
	}

	err := s.backend.ChangePassword(ctx, password, newPassword)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	return nil
}

// Overview fetches the payment and fund transfer summaries of one day concurrently.
func (s *Dashboard) Overview(ctx context.Context, day time.Time) (entity.Overview, error) {
	var res entity.Overview

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		res.Payments, err = s.backend.PaymentSummary(gCtx, day, day)
		if err != nil {
			return fmt.Errorf("get payment summary: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		res.FundTransfers, err = s.backend.FundTransferSummary(gCtx, day, day)
		if err != nil {
			return fmt.Errorf("get fund transfer summary: %w", err)
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return entity.Overview{}, err
	}

	return res, nil
}

// Transactions fetches one page from the backend and keeps only payments and fund
// transfers matching the filter. Backends that ignore paging are paged locally.
func (s *Dashboard) Transactions(ctx context.Context, f entity.TransactionFilter) (entity.Page[entity.Transaction], error) {
	f, day, err := s.normalizeFilter(f)
	if err != nil {
		return entity.Page[entity.Transaction]{}, err
	}

	txs, total, err := s.backend.Transactions(ctx, f.Status, day, f.Page-1, f.Limit)
	if err != nil {
		return entity.Page[entity.Transaction]{}, fmt.Errorf("get transactions: %w", err)
	}

	filtered := entity.FilterTransactions(txs, f)

	if len(txs) > f.Limit {
		return entity.Paginate(filtered, f.Page, f.Limit), nil
	}

	return entity.Page[entity.Transaction]{
		Items:      filtered,
		Page:       f.Page,
		PageSize:   f.Limit,
		TotalItems: total,
		TotalPages: max(1, (total+f.Limit-1)/f.Limit),
	}, nil
}

func (s *Dashboard) normalizeFilter(f entity.TransactionFilter) (entity.TransactionFilter, time.Time, error) {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}

	if f.Date == "" {
		f.Date = s.now().Format(time.DateOnly)
	}

	day, err := time.Parse(time.DateOnly, f.Date)
	if err != nil {
		return f, time.Time{}, fmt.Errorf("%w: date %q: %w", entity.ErrInvalidArgument, f.Date, err)
	}

	if f.Type != "" && f.Type != entity.TransactionTypePayment && f.Type != entity.TransactionTypeFundTransfer {
		return f, time.Time{}, fmt.Errorf("%w: unknown transaction type %q", entity.ErrInvalidArgument, f.Type)
	}

	return f, day, nil
}

func (s *Dashboard) DepositoryAccounts(ctx context.Context) ([]entity.DepositoryAccount, error) {
	accounts, err := s.backend.DepositoryAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get depository accounts: %w", err)
	}

	return accounts, nil
}

func (s *Dashboard) WithdrawalQuote(amount decimal.Decimal, service entity.WithdrawalService) (entity.WithdrawalQuote, error) {
	err := validateWithdrawal(amount, service)
	if err != nil {
		return entity.WithdrawalQuote{}, err
	}

	return entity.NewWithdrawalQuote(amount, service), nil
}

func (s *Dashboard) Withdraw(ctx context.Context, r entity.WithdrawalRequest) (entity.WithdrawalResult, error) {
	err := validateWithdrawal(r.Amount, r.Service)
	if err != nil {
		return entity.WithdrawalResult{}, err
	}

	if r.AccountID <= 0 {
		return entity.WithdrawalResult{}, fmt.Errorf("%w: depository account is required", entity.ErrInvalidArgument)
	}

	res, err := s.backend.Withdraw(ctx, r)
	if err != nil {
		return entity.WithdrawalResult{}, fmt.Errorf("withdraw %s via %s: %w", r.Amount, r.Service, err)
	}

	slog.InfoContext(ctx, "withdrawal requested", "id", res.ID, "amount", r.Amount, "service", r.Service)

	return res, nil
}

func validateWithdrawal(amount decimal.Decimal, service entity.WithdrawalService) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than 0", entity.ErrInvalidArgument)
	}

	return service.Validate()
}

// EnqueueDownload queues the transactions page selected by the filter for export.
func (s *Dashboard) EnqueueDownload(ctx context.Context, f entity.TransactionFilter) (entity.DownloadJob, error) {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return entity.DownloadJob{}, err
	}

	page, err := s.Transactions(ctx, f)
	if err != nil {
		return entity.DownloadJob{}, err
	}

	if len(page.Items) == 0 {
		return entity.DownloadJob{}, fmt.Errorf("%w: no transactions to download", entity.ErrInvalidArgument)
	}

	date := f.Date
	if date == "" {
		date = s.now().Format(time.DateOnly)
	}

	j := entity.DownloadJob{
		ID:           uuid.Must(uuid.NewV4()),
		Owner:        owner,
		Name:         fmt.Sprintf("transactions_page_%d_%s.xlsx", page.Page, date),
		Status:       entity.JobStatusQueued,
		Transactions: page.Items,
		CreatedAt:    s.now(),
	}

	err = s.queue.Enqueue(ctx, j)
	if err != nil {
		return entity.DownloadJob{}, fmt.Errorf("enqueue download %q: %w", j.Name, err)
	}

	return j, nil
}

// BuildDownloads renders the workbooks of queued jobs. A job that cannot be
// rendered is marked as error and is not retried.
func (s *Dashboard) BuildDownloads(ctx context.Context) error {
	jobs, err := s.queue.Queued(ctx, buildBatchSize)
	if err != nil {
		return fmt.Errorf("list queued downloads: %w", err)
	}

	for _, j := range jobs {
		status := entity.JobStatusReady

		file, err := export.Transactions(j.Transactions)
		if err != nil {
			slog.ErrorContext(ctx, "build download", "id", j.ID, "name", j.Name, "error", err)

			status, file = entity.JobStatusError, nil
		}

		err = s.queue.Complete(ctx, j.ID, status, file)
		if err != nil {
			return fmt.Errorf("complete download %s: %w", j.ID, err)
		}
	}

	return nil
}

// DownloadFile returns the workbook of a ready job.
func (s *Dashboard) DownloadFile(ctx context.Context, id uuid.UUID) (entity.DownloadFile, error) {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return entity.DownloadFile{}, err
	}

	f, err := s.queue.File(ctx, owner, id)
	if err != nil {
		return entity.DownloadFile{}, fmt.Errorf("get download %s: %w", id, err)
	}

	if f.Status != entity.JobStatusReady {
		return entity.DownloadFile{}, fmt.Errorf("%w: download %s is %s", entity.ErrNotReady, id, f.Status)
	}

	return f, nil
}

func (s *Dashboard) Downloads(ctx context.Context) ([]entity.DownloadJob, error) {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.queue.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}

	return jobs, nil
}

func (s *Dashboard) RemoveDownload(ctx context.Context, id uuid.UUID) error {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.queue.Remove(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("remove download %s: %w", id, err)
	}

	return nil
}

func (s *Dashboard) ClearDownloads(ctx context.Context) error {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.queue.Clear(ctx, owner)
	if err != nil {
		return fmt.Errorf("clear downloads: %w", err)
	}

	return nil
}

// ClearCompletedDownloads keeps only queued jobs.
func (s *Dashboard) ClearCompletedDownloads(ctx context.Context) error {
	owner, err := entity.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.queue.ClearCompleted(ctx, owner)
	if err != nil {
		return fmt.Errorf("clear completed downloads: %w", err)
	}

	return nil
}

// PurgeDownloads deletes jobs older than the retention period.
func (s *Dashboard) PurgeDownloads(ctx context.Context) error {
	n, err := s.queue.DeleteOlderThan(ctx, s.now().Add(-s.retention))
	if err != nil {
		return fmt.Errorf("delete old downloads: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "old downloads purged", "count", n)
	}

	return nil
}
