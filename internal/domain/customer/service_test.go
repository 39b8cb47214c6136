package customer_test

import (
	"context"
	"customer-graph-api/internal/domain/customer"
	"customer-graph-api/internal/pkg/apperrors"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest() (*customer.MockCustomerRepository, customer.CustomerService) {
	mockRepo := new(customer.MockCustomerRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := customer.NewCustomerService(mockRepo, logger)
	return mockRepo, service
}

func TestNewCustomerService(t *testing.T) {
	t.Run("Panics without repository", func(t *testing.T) {
		assert.Panics(t, func() {
			customer.NewCustomerService(nil, nil)
		})
	})

	t.Run("Falls back to a default logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			customer.NewCustomerService(new(customer.MockCustomerRepository), nil)
		})
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := sampleCustomer()
		mockRepo.On("FindByID", ctx, "900").Return(&expected, nil).Once()

		got, err := service.GetCustomer(ctx, "900")

		require.NoError(t, err)
		assert.Equal(t, &expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindByID", ctx, "000").Return(nil, customer.ErrNotFound).Once()

		got, err := service.GetCustomer(ctx, "000")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, customer.ErrNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error is wrapped", func(t *testing.T) {
		mockRepo, service := setupTest()
		repoErr := errors.New("boom")
		mockRepo.On("FindByID", ctx, "900").Return(nil, repoErr).Once()

		got, err := service.GetCustomer(ctx, "900")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repoErr)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), `failed to get customer "900"`)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_GetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := customer.Account{
			AccountNumber: "778",
			PaymentStatus: "Due",
			Address:       []customer.Address{{AddLine1: "203 Dr", City: "Plano"}},
		}
		mockRepo.On("FindAccountByNumber", ctx, "778").Return(&expected, nil).Once()

		got, err := service.GetAccount(ctx, "778")

		require.NoError(t, err)
		assert.Equal(t, &expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindAccountByNumber", ctx, "").Return(nil, customer.ErrAccountNotFound).Once()

		got, err := service.GetAccount(ctx, "")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, customer.ErrAccountNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Context error is propagated", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindAccountByNumber", ctx, "777").Return(nil, context.Canceled).Once()

		_, err := service.GetAccount(ctx, "777")

		assert.ErrorIs(t, err, context.Canceled)
		mockRepo.AssertExpectations(t)
	})
}
