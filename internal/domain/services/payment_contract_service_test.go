package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
)

func newTenantFixture(t *testing.T) (*PaymentService, *ContractService, *models.Tenant) {
	db := setupTestDB(t)
	p := createProperty(t, db, "Gran Vía 42")
	r := createRoom(t, db, p.ID, "301")
	tenant := createTenant(t, db, r.ID, "lucia")
	return NewPaymentService(db, testConfig()).(*PaymentService),
		NewContractService(db, testConfig()).(*ContractService),
		tenant
}

func TestPaymentUpcomingWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		status models.PaymentStatus
		due    time.Time
		want   bool
	}{
		{"due now", models.PaymentStatusPending, now, true},
		{"in three days", models.PaymentStatusPending, now.AddDate(0, 0, 3), true},
		{"exactly seven days", models.PaymentStatusPending, now.AddDate(0, 0, 7), true},
		{"just past the window", models.PaymentStatusPending, now.AddDate(0, 0, 7).Add(time.Second), false},
		{"already due", models.PaymentStatusPending, now.Add(-time.Second), false},
		{"paid", models.PaymentStatusPaid, now.AddDate(0, 0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PaymentUpcoming(models.Payment{Status: tc.status, DueDate: tc.due}, now))
		})
	}
}

func TestContractExpiringWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, ContractExpiringSoon(models.Contract{Status: models.ContractStatusActive, EndDate: now.AddDate(0, 0, 30)}, now))
	assert.False(t, ContractExpiringSoon(models.Contract{Status: models.ContractStatusActive, EndDate: now.AddDate(0, 0, 31)}, now))
	assert.False(t, ContractExpiringSoon(models.Contract{Status: models.ContractStatusActive, EndDate: now.AddDate(0, 0, -1)}, now))
	assert.False(t, ContractExpiringSoon(models.Contract{Status: models.ContractStatusTerminated, EndDate: now.AddDate(0, 0, 5)}, now))
}

func TestListPaymentsUpcoming(t *testing.T) {
	payments, _, tenant := newTenantFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	payments.Now = func() time.Time { return now }

	for _, due := range []time.Time{now.AddDate(0, 0, 3), now.AddDate(0, 0, 10), now.AddDate(0, 0, -2)} {
		_, err := payments.CreatePayment(ctx, &models.Payment{Amount: 450, DueDate: due, TenantID: tenant.ID})
		require.NoError(t, err)
	}

	all, err := payments.ListPayments(ctx, PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].DueDate.Before(all[1].DueDate))

	upcoming, err := payments.ListPayments(ctx, PaymentFilter{Upcoming: true})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.True(t, upcoming[0].DueDate.Equal(now.AddDate(0, 0, 3)))
	require.NotNil(t, upcoming[0].Tenant)
	require.NotNil(t, upcoming[0].Tenant.Room)
	assert.Equal(t, "Gran Vía 42", upcoming[0].Tenant.Room.Property.Name)

	none, err := payments.ListPayments(ctx, PaymentFilter{Status: "refunded"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreatePaymentValidation(t *testing.T) {
	payments, _, tenant := newTenantFixture(t)
	ctx := context.Background()
	due := time.Now().UTC()

	_, err := payments.CreatePayment(ctx, &models.Payment{Amount: 0, DueDate: due, TenantID: tenant.ID})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = payments.CreatePayment(ctx, &models.Payment{Amount: 10, TenantID: tenant.ID})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: due, TenantID: tenant.ID, Status: "refunded"})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: due, TenantID: "ghost"})
	assert.True(t, code.Is(err, code.ErrForeignKeyViolation))

	created, err := payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: due, TenantID: tenant.ID})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, created.Status)
}

func TestUpdatePaymentClearsPaidDate(t *testing.T) {
	payments, _, tenant := newTenantFixture(t)
	ctx := context.Background()
	paid := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := payments.CreatePayment(ctx, &models.Payment{Amount: 450, DueDate: paid, TenantID: tenant.ID})
	require.NoError(t, err)

	updated, err := payments.UpdatePayment(ctx, created.ID, map[string]interface{}{
		"status":    models.PaymentStatusPaid,
		"paid_date": &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidDate)
	assert.True(t, updated.PaidDate.Equal(paid))

	updated, err = payments.UpdatePayment(ctx, created.ID, map[string]interface{}{"paid_date": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.PaidDate)

	_, err = payments.UpdatePayment(ctx, created.ID, map[string]interface{}{"amount": -1.0})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = payments.UpdatePayment(ctx, "missing", map[string]interface{}{"amount": 1.0})
	assert.True(t, code.Is(err, code.ErrPaymentNotFound))
}

func TestDeletePayment(t *testing.T) {
	payments, _, tenant := newTenantFixture(t)
	ctx := context.Background()
	created, err := payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: time.Now().UTC(), TenantID: tenant.ID})
	require.NoError(t, err)

	require.NoError(t, payments.DeletePayment(ctx, created.ID))
	assert.True(t, code.Is(payments.DeletePayment(ctx, created.ID), code.ErrPaymentNotFound))
}

func TestMarkOverdue(t *testing.T) {
	payments, _, tenant := newTenantFixture(t)
	ctx := context.Background()
	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	past, err := payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: asOf.AddDate(0, 0, -1), TenantID: tenant.ID})
	require.NoError(t, err)
	_, err = payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: asOf.AddDate(0, 0, 1), TenantID: tenant.ID})
	require.NoError(t, err)
	_, err = payments.CreatePayment(ctx, &models.Payment{Amount: 10, DueDate: asOf.AddDate(0, 0, -5), TenantID: tenant.ID, Status: models.PaymentStatusPaid})
	require.NoError(t, err)

	n, err := payments.MarkOverdue(ctx, asOf)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := payments.GetPayment(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOverdue, got.Status)

	n, err = payments.MarkOverdue(ctx, asOf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateContractGeneratesNumber(t *testing.T) {
	_, contracts, tenant := newTenantFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	contracts.Now = func() time.Time { return now }

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	created, err := contracts.CreateContract(ctx, &models.Contract{
		StartDate: start, EndDate: start.AddDate(1, 0, 0), MonthlyRent: 500, Deposit: 1000, TenantID: tenant.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "CTR-1736929800000", created.ContractNumber)
	assert.Equal(t, models.ContractStatusActive, created.Status)
	require.NotNil(t, created.Tenant)

	// same clock, same number
	_, err = contracts.CreateContract(ctx, &models.Contract{
		StartDate: start, EndDate: start.AddDate(1, 0, 0), MonthlyRent: 500, Deposit: 1000, TenantID: tenant.ID,
	})
	assert.True(t, code.Is(err, code.ErrValidation))
}

func TestCreateContractValidation(t *testing.T) {
	_, contracts, tenant := newTenantFixture(t)
	ctx := context.Background()
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := contracts.CreateContract(ctx, &models.Contract{StartDate: start, TenantID: tenant.ID})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = contracts.CreateContract(ctx, &models.Contract{StartDate: start, EndDate: start.AddDate(0, 0, -1), TenantID: tenant.ID})
	assert.True(t, code.Is(err, code.ErrValidation))

	_, err = contracts.CreateContract(ctx, &models.Contract{StartDate: start, EndDate: start.AddDate(1, 0, 0), TenantID: "ghost"})
	assert.True(t, code.Is(err, code.ErrForeignKeyViolation))
}

func TestUpdateContractKeepsNumber(t *testing.T) {
	_, contracts, tenant := newTenantFixture(t)
	ctx := context.Background()
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	created, err := contracts.CreateContract(ctx, &models.Contract{
		ContractNumber: "CTR-2025-001", StartDate: start, EndDate: start.AddDate(1, 0, 0), MonthlyRent: 500, TenantID: tenant.ID,
	})
	require.NoError(t, err)

	updated, err := contracts.UpdateContract(ctx, created.ID, map[string]interface{}{
		"contract_number": "CTR-HACKED",
		"monthly_rent":    550.0,
		"status":          models.ContractStatusTerminated,
	})
	require.NoError(t, err)
	assert.Equal(t, "CTR-2025-001", updated.ContractNumber)
	assert.InDelta(t, 550, updated.MonthlyRent, 0.001)
	assert.Equal(t, models.ContractStatusTerminated, updated.Status)

	_, err = contracts.UpdateContract(ctx, created.ID, map[string]interface{}{"status": models.ContractStatus("renewed")})
	assert.True(t, code.Is(err, code.ErrValidation))
}

func TestListContractsExpiring(t *testing.T) {
	_, contracts, tenant := newTenantFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	contracts.Now = func() time.Time { return now }

	for i, end := range []time.Time{now.AddDate(0, 0, 20), now.AddDate(0, 2, 0), now.AddDate(0, 0, 10)} {
		_, err := contracts.CreateContract(ctx, &models.Contract{
			ContractNumber: "CTR-" + string(rune('A'+i)), StartDate: now.AddDate(-1, 0, 0), EndDate: end, TenantID: tenant.ID,
		})
		require.NoError(t, err)
	}

	expiring, err := contracts.ListContracts(ctx, ContractFilter{Expiring: true})
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.Equal(t, "CTR-C", expiring[0].ContractNumber)
	assert.Equal(t, "CTR-A", expiring[1].ContractNumber)

	byTenant, err := contracts.ListContracts(ctx, ContractFilter{TenantID: tenant.ID})
	require.NoError(t, err)
	assert.Len(t, byTenant, 3)
}

func TestExpireEndedAndDelete(t *testing.T) {
	_, contracts, tenant := newTenantFixture(t)
	ctx := context.Background()
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ended, err := contracts.CreateContract(ctx, &models.Contract{
		ContractNumber: "CTR-OLD", StartDate: asOf.AddDate(-1, 0, 0), EndDate: asOf.AddDate(0, 0, -1), TenantID: tenant.ID,
	})
	require.NoError(t, err)
	_, err = contracts.CreateContract(ctx, &models.Contract{
		ContractNumber: "CTR-NEW", StartDate: asOf, EndDate: asOf.AddDate(1, 0, 0), TenantID: tenant.ID,
	})
	require.NoError(t, err)

	n, err := contracts.ExpireEnded(ctx, asOf)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := contracts.GetContract(ctx, ended.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusExpired, got.Status)

	require.NoError(t, contracts.DeleteContract(ctx, ended.ID))
	_, err = contracts.GetContract(ctx, ended.ID)
	assert.True(t, code.Is(err, code.ErrContractNotFound))
	assert.True(t, code.Is(contracts.DeleteContract(ctx, ended.ID), code.ErrContractNotFound))
}
