package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/usecase"
	"github.com/iho/ledgerlens/internal/usecase/mocks"
)

func TestSyncAccountsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerRepository(ctrl)
	analytics := mocks.NewMockAnalyticsRepository(ctrl)

	ledger.EXPECT().FetchAccounts(gomock.Any()).Return([]domain.AccountRow{
		{ID: "root", ParentID: "", Name: "Root", AccountType: "ROOT"},
		{ID: "actif", ParentID: "root", Name: "Actif", AccountType: "ASSET"},
		{ID: "cc", ParentID: "actif", Name: "Compte courant", AccountType: "BANK"},
	}, nil)
	analytics.EXPECT().RefreshAccounts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, accounts []domain.ResolvedAccount) (int, error) {
			if len(accounts) != 2 {
				t.Errorf("expected 2 resolved accounts, got %d", len(accounts))
			}
			return len(accounts), nil
		})

	uc := usecase.NewSyncAccountsUseCase(ledger, analytics, "Actif", zerolog.Nop())
	count, err := uc.Execute(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSyncAccountsUseCase_Execute_RefreshError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerRepository(ctrl)
	analytics := mocks.NewMockAnalyticsRepository(ctrl)

	wantErr := errors.New("copy failed")
	ledger.EXPECT().FetchAccounts(gomock.Any()).Return(nil, nil)
	analytics.EXPECT().RefreshAccounts(gomock.Any(), gomock.Any()).Return(0, wantErr)

	uc := usecase.NewSyncAccountsUseCase(ledger, analytics, "", zerolog.Nop())
	_, err := uc.Execute(context.Background())

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}
