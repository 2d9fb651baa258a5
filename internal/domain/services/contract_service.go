package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/utils"
)

// InterfaceContractService defines the contract operations
type InterfaceContractService interface {
	ContractStats
	ListContracts(ctx context.Context, filter ContractFilter) ([]models.Contract, error)
	GetContract(ctx context.Context, id string) (*models.Contract, error)
	CreateContract(ctx context.Context, contract *models.Contract) (*models.Contract, error)
	UpdateContract(ctx context.Context, id string, updates map[string]interface{}) (*models.Contract, error)
	DeleteContract(ctx context.Context, id string) error
	ExpireEnded(ctx context.Context, asOf time.Time) (int64, error)
}

// ContractService 提供合同相关的服务
type ContractService struct {
	DB     *gorm.DB
	Config *config.Config
	Now    func() time.Time
}

// NewContractService creates the contract service
func NewContractService(db *gorm.DB, cfg *config.Config) InterfaceContractService {
	return &ContractService{
		DB:     db,
		Config: cfg,
		Now:    time.Now,
	}
}

// 1 ListContracts returns contracts by end date. Expiring narrows the result
// to the 30-day window after the query has run.
func (s *ContractService) ListContracts(ctx context.Context, filter ContractFilter) ([]models.Contract, error) {
	contracts := []models.Contract{}
	err := s.DB.WithContext(ctx).
		Scopes(filter.Scope, preloadTenantRoom).
		Order("contracts.end_date ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, dbError(err)
	}

	if filter.Expiring {
		contracts = ExpiringContracts(contracts, s.Now())
	}
	return contracts, nil
}

// 2 GetContract returns one contract
func (s *ContractService) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	var contract models.Contract
	err := s.DB.WithContext(ctx).Scopes(preloadTenantRoom).Where("contracts.id = ?", id).First(&contract).Error
	if err != nil {
		return nil, lookupError(err, code.ErrContractNotFound)
	}
	return &contract, nil
}

// 3 CreateContract stores a contract, generating its number when absent
func (s *ContractService) CreateContract(ctx context.Context, contract *models.Contract) (*models.Contract, error) {
	if contract.StartDate.IsZero() || contract.EndDate.IsZero() {
		return nil, code.New(code.ErrValidation, "startDate and endDate are required")
	}
	if contract.EndDate.Before(contract.StartDate) {
		return nil, code.New(code.ErrValidation, "endDate must not be before startDate")
	}
	if contract.ContractNumber == "" {
		contract.ContractNumber = utils.ContractNumber(s.Now())
	}
	if contract.Status == "" {
		contract.Status = models.ContractStatusActive
	}
	if err := validateContractStatus(contract.Status); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", contract.TenantID); err != nil {
		return nil, err
	}

	var dup int64
	if err := s.DB.WithContext(ctx).Model(&models.Contract{}).Where("contract_number = ?", contract.ContractNumber).Count(&dup).Error; err != nil {
		return nil, dbError(err)
	}
	if dup > 0 {
		return nil, code.Newf(code.ErrValidation, "contract number %s already exists", contract.ContractNumber)
	}

	if err := s.DB.WithContext(ctx).Omit("Tenant").Create(contract).Error; err != nil {
		return nil, dbError(err)
	}
	return s.GetContract(ctx, contract.ID)
}

// 4 UpdateContract applies updates; the contract number never changes
func (s *ContractService) UpdateContract(ctx context.Context, id string, updates map[string]interface{}) (*models.Contract, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(updates, "contract_number")

	if status, ok := updates["status"].(models.ContractStatus); ok {
		if err := validateContractStatus(status); err != nil {
			return nil, err
		}
	}
	if tenantID, ok := updates["tenant_id"].(string); ok {
		if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", tenantID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Contract{}).Where("id = ?", contract.ID).Updates(updates).Error; err != nil {
			return nil, dbError(err)
		}
	}
	return s.GetContract(ctx, id)
}

// 5 DeleteContract removes a contract
func (s *ContractService) DeleteContract(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Contract{})
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.New(code.ErrContractNotFound, "")
	}
	return nil
}

// ExpireEnded moves active contracts whose end date has passed to expired.
func (s *ContractService) ExpireEnded(ctx context.Context, asOf time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&models.Contract{}).
		Where("status = ? AND end_date < ?", models.ContractStatusActive, asOf.UTC()).
		Update("status", models.ContractStatusExpired)
	return res.RowsAffected, dbError(res.Error)
}

// ContractSummary implements ContractStats.
func (s *ContractService) ContractSummary(ctx context.Context, asOf time.Time) (*models.ContractSummary, error) {
	db := s.DB.WithContext(ctx)
	asOf = asOf.UTC()
	summary := &models.ContractSummary{}

	if err := db.Model(&models.Contract{}).Where("status = ?", models.ContractStatusActive).Count(&summary.Active).Error; err != nil {
		return nil, dbError(err)
	}

	var active []models.Contract
	if err := db.Select("id", "status", "end_date").
		Where("status = ? AND end_date >= ?", models.ContractStatusActive, asOf).
		Find(&active).Error; err != nil {
		return nil, dbError(err)
	}
	summary.Expiring = int64(len(ExpiringContracts(active, asOf)))

	if err := db.Model(&models.Contract{}).
		Where("status = ?", models.ContractStatusActive).
		Select("COALESCE(SUM(deposit), 0)").Scan(&summary.TotalDeposit).Error; err != nil {
		return nil, dbError(err)
	}
	return summary, nil
}

func validateContractStatus(status models.ContractStatus) error {
	switch status {
	case models.ContractStatusActive, models.ContractStatusExpired, models.ContractStatusTerminated, models.ContractStatusCancelled:
		return nil
	}
	return code.Newf(code.ErrValidation, "invalid contract status %q", status)
}
