package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/usecase"
	"github.com/iho/ledgerlens/internal/usecase/mocks"
)

func TestCashflowUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)

	period := testPeriod()
	repo.EXPECT().FetchCurrencyID(gomock.Any(), "EUR").Return("eur-guid", nil)
	repo.EXPECT().FetchCashflowRows(gomock.Any(), period, "Actif", "eur-guid").Return([]domain.CashflowRow{
		{AccountID: "a1", AccountFullName: "Revenus:Salaire", Amount: decimal.NewFromInt(100)},
		{AccountID: "a2", AccountFullName: "Depenses:Courses", Amount: decimal.NewFromInt(-40)},
	}, nil)

	uc := usecase.NewCashflowUseCase(repo, "", zerolog.Nop())
	view, err := uc.Execute(context.Background(), usecase.CashflowInput{Period: period})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Summary.TotalIn.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total in = %s, want 100", view.Summary.TotalIn)
	}
	if !view.Summary.TotalOut.Equal(decimal.NewFromInt(40)) {
		t.Errorf("total out = %s, want 40", view.Summary.TotalOut)
	}
}

func TestCashflowUseCase_Execute_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)

	period := testPeriod()
	wantErr := errors.New("connection reset")
	repo.EXPECT().FetchCurrencyID(gomock.Any(), "EUR").Return("eur-guid", nil)
	repo.EXPECT().FetchCashflowRows(gomock.Any(), period, "Actif", "eur-guid").Return(nil, wantErr)

	uc := usecase.NewCashflowUseCase(repo, "Actif", zerolog.Nop())
	_, err := uc.Execute(context.Background(), usecase.CashflowInput{Period: period})

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}
