package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
)

// InterfacePaymentService defines the payment operations
type InterfacePaymentService interface {
	PaymentStats
	ListPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, updates map[string]interface{}) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// PaymentService 提供付款相关的服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
	Now    func() time.Time
}

// NewPaymentService creates the payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
		Now:    time.Now,
	}
}

// 1 ListPayments returns payments by due date. Upcoming narrows the result
// to the 7-day window after the query has run.
func (s *PaymentService) ListPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.DB.WithContext(ctx).
		Scopes(filter.Scope, preloadTenantRoom).
		Order("payments.due_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, dbError(err)
	}

	if filter.Upcoming {
		payments = UpcomingPayments(payments, s.Now())
	}
	return payments, nil
}

// 2 GetPayment returns one payment
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.WithContext(ctx).Scopes(preloadTenantRoom).Where("payments.id = ?", id).First(&payment).Error
	if err != nil {
		return nil, lookupError(err, code.ErrPaymentNotFound)
	}
	return &payment, nil
}

// 3 CreatePayment stores a payment; amount and due date are required
func (s *PaymentService) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.Amount <= 0 {
		return nil, code.New(code.ErrValidation, "amount must be greater than zero")
	}
	if payment.DueDate.IsZero() {
		return nil, code.New(code.ErrValidation, "dueDate is required")
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if err := validatePaymentStatus(payment.Status); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", payment.TenantID); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit("Tenant").Create(payment).Error; err != nil {
		return nil, dbError(err)
	}
	return s.GetPayment(ctx, payment.ID)
}

// 4 UpdatePayment applies updates. The caller always sends paid_date, so an
// omitted paid date clears the stored one.
func (s *PaymentService) UpdatePayment(ctx context.Context, id string, updates map[string]interface{}) (*models.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if status, ok := updates["status"].(models.PaymentStatus); ok {
		if err := validatePaymentStatus(status); err != nil {
			return nil, err
		}
	}
	if amount, ok := updates["amount"].(float64); ok && amount <= 0 {
		return nil, code.New(code.ErrValidation, "amount must be greater than zero")
	}
	if tenantID, ok := updates["tenant_id"].(string); ok {
		if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", tenantID); err != nil {
			return nil, err
		}
	}

	if err := s.DB.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
		return nil, dbError(err)
	}
	return s.GetPayment(ctx, id)
}

// 5 DeletePayment removes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Payment{})
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.New(code.ErrPaymentNotFound, "")
	}
	return nil
}

// MarkOverdue moves pending payments due before asOf to overdue.
func (s *PaymentService) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ? AND due_date < ?", models.PaymentStatusPending, asOf.UTC()).
		Update("status", models.PaymentStatusOverdue)
	return res.RowsAffected, dbError(res.Error)
}

// PaymentSummary implements PaymentStats.
func (s *PaymentService) PaymentSummary(ctx context.Context, asOf time.Time) (*models.PaymentSummary, error) {
	db := s.DB.WithContext(ctx)
	asOf = asOf.UTC()
	summary := models.EmptyPaymentSummary()

	if err := db.Model(&models.Payment{}).Count(&summary.Total).Error; err != nil {
		return nil, dbError(err)
	}
	byStatus := map[models.PaymentStatus]*int64{
		models.PaymentStatusPending: &summary.Pending,
		models.PaymentStatusPaid:    &summary.Paid,
		models.PaymentStatusOverdue: &summary.Overdue,
	}
	for status, dst := range byStatus {
		if err := db.Model(&models.Payment{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, dbError(err)
		}
	}

	if err := db.Model(&models.Payment{}).
		Where("status IN ?", []models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusOverdue}).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.PendingAmount).Error; err != nil {
		return nil, dbError(err)
	}

	monthStart, nextMonth := monthRange(asOf)
	if err := db.Model(&models.Payment{}).
		Where("status = ? AND paid_date >= ? AND paid_date < ?", models.PaymentStatusPaid, monthStart, nextMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.PaidThisMonth).Error; err != nil {
		return nil, dbError(err)
	}

	var pending []models.Payment
	if err := db.Scopes(preloadTenantRoom).
		Where("payments.status = ? AND payments.due_date >= ?", models.PaymentStatusPending, asOf).
		Order("payments.due_date ASC").
		Find(&pending).Error; err != nil {
		return nil, dbError(err)
	}
	upcoming := UpcomingPayments(pending, asOf)
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	summary.UpcomingPayments = upcoming

	return &summary, nil
}

func validatePaymentStatus(status models.PaymentStatus) error {
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusOverdue, models.PaymentStatusCancelled:
		return nil
	}
	return code.Newf(code.ErrValidation, "invalid payment status %q", status)
}
