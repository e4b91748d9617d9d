package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
)

// memoryAccountRepository keeps accounts in process memory. It enforces the
// same email uniqueness as the SQL schema and is used for local runs and
// tests.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account // by email
	now      func() time.Time
}

func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		accounts: make(map[string]models.Account),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryAccountRepository) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[email]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}

	return account, nil
}

func (m *memoryAccountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Email]; exists {
		return ErrEmailAlreadyExists
	}

	now := m.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	m.accounts[account.Email] = account
	logger.FromContext(ctx).Debug().Str("func", "*memoryAccountRepository.CreateAccount").Str("account_id", account.ID.String()).Msg("account stored")
	return nil
}

func (m *memoryAccountRepository) UpdateAccount(ctx context.Context, account models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	currentEmail, ok := m.emailByID(account)
	if !ok {
		return ErrNoAccountWasFound
	}

	if currentEmail != account.Email {
		if _, taken := m.accounts[account.Email]; taken {
			return ErrEmailAlreadyExists
		}
		delete(m.accounts, currentEmail)
	}

	account.CreatedAt = m.accounts[currentEmail].CreatedAt
	if account.CreatedAt.IsZero() {
		account.CreatedAt = m.now()
	}
	account.UpdatedAt = m.now()
	m.accounts[account.Email] = account
	return nil
}

func (m *memoryAccountRepository) DeleteAccount(ctx context.Context, account models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email, ok := m.emailByID(account)
	if !ok {
		return ErrNoAccountWasFound
	}

	delete(m.accounts, email)
	return nil
}

// emailByID must be called with mu held. The stored email is checked first
// since callers almost always pass an unchanged record.
func (m *memoryAccountRepository) emailByID(account models.Account) (string, bool) {
	if stored, ok := m.accounts[account.Email]; ok && stored.ID == account.ID {
		return account.Email, true
	}

	for email, stored := range m.accounts {
		if stored.ID == account.ID {
			return email, true
		}
	}

	return "", false
}

func isMemoryDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "memory://") || dsn == "memory"
}
