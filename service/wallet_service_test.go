package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/pkg/logger"
	"shopbot/pkg/models"
	"shopbot/storage"
)

func TestWalletService_Deposit(t *testing.T) {
	stg := newMockStorage()
	svc := New(stg, logger.NewNop()).Wallet()
	ctx := context.Background()

	stg.wallet.On("UpdateBalance", ctx, int64(1), int64(-3), int64(9)).Return(int64(7), nil).Once()

	balance, err := svc.Deposit(ctx, 1, -3, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance)
	stg.wallet.AssertExpectations(t)
}

func TestWalletService_DepositZero(t *testing.T) {
	stg := newMockStorage()
	svc := New(stg, logger.NewNop()).Wallet()

	_, err := svc.Deposit(context.Background(), 1, 0, 9)
	assert.ErrorIs(t, err, ErrInvalidInput)
	stg.wallet.AssertNotCalled(t, "UpdateBalance")
}

func TestWalletService_DepositUnknownInvoker(t *testing.T) {
	stg := newMockStorage()
	svc := New(stg, logger.NewNop()).Wallet()
	ctx := context.Background()

	stg.wallet.On("UpdateBalance", ctx, int64(1), int64(10), int64(404)).
		Return(int64(0), storage.ErrInvokerNotFound).Once()

	_, err := svc.Deposit(ctx, 1, 10, 404)
	assert.ErrorIs(t, err, storage.ErrInvokerNotFound)
	stg.wallet.AssertExpectations(t)
}

func TestWalletService_SetBalance(t *testing.T) {
	stg := newMockStorage()
	svc := New(stg, logger.NewNop()).Wallet()
	ctx := context.Background()

	stg.wallet.On("SetBalance", ctx, int64(1), int64(0), int64(9)).Return(int64(0), nil).Once()

	balance, err := svc.SetBalance(ctx, 1, 0, 9)
	require.NoError(t, err)
	assert.Zero(t, balance)

	_, err = svc.SetBalance(ctx, 1, -1, 9)
	assert.ErrorIs(t, err, ErrInvalidInput)
	stg.wallet.AssertExpectations(t)
}

func TestWalletService_Transfer(t *testing.T) {
	tests := []struct {
		name     string
		sender   int64
		receiver int64
		amount   int64
		stored   bool
		wantOK   bool
		wantErr  error
	}{
		{name: "accepted", sender: 1, receiver: 2, amount: 50, stored: true, wantOK: true},
		{name: "declined_by_database", sender: 1, receiver: 2, amount: 5000, stored: false, wantOK: false},
		{name: "zero_amount", sender: 1, receiver: 2, amount: 0, wantErr: ErrInvalidInput},
		{name: "negative_amount", sender: 1, receiver: 2, amount: -5, wantErr: ErrInvalidInput},
		{name: "same_user", sender: 1, receiver: 1, amount: 5, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stg := newMockStorage()
			svc := New(stg, logger.NewNop()).Wallet()
			ctx := context.Background()

			if tt.wantErr == nil {
				stg.wallet.On("Transfer", ctx, tt.sender, tt.receiver, tt.amount).Return(tt.stored, nil).Once()
			}

			ok, err := svc.Transfer(ctx, tt.sender, tt.receiver, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stg.wallet.AssertNotCalled(t, "Transfer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			stg.wallet.AssertExpectations(t)
		})
	}
}

func TestWalletService_History(t *testing.T) {
	stg := newMockStorage()
	svc := New(stg, logger.NewNop()).Wallet()
	ctx := context.Background()

	logs := []*models.Log{{ID: 1, UserID: 9, Description: "Added money 10 to user 1"}}
	stg.logs.On("GetByUser", ctx, int64(9)).Return(logs, nil).Once()

	got, err := svc.History(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
	stg.logs.AssertExpectations(t)
}
