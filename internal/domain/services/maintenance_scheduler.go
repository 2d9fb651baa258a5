package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"room-manager/pkg/logger"
)

// MaintenanceResult counts the rows a maintenance run changed.
type MaintenanceResult struct {
	OverduePayments  int64 `json:"overduePayments"`
	ExpiredContracts int64 `json:"expiredContracts"`
}

// InterfaceMaintenanceScheduler runs the periodic status maintenance
type InterfaceMaintenanceScheduler interface {
	Start() error
	Stop() error
	RunOnce(ctx context.Context) (MaintenanceResult, error)
}

// MaintenanceScheduler marks past-due pending payments overdue and ended
// active contracts expired on a fixed interval. Either service may be nil.
type MaintenanceScheduler struct {
	Payments  InterfacePaymentService
	Contracts InterfaceContractService
	Interval  time.Duration
	Now       func() time.Time

	scheduler gocron.Scheduler
}

// NewMaintenanceScheduler creates a scheduler that is not yet running
func NewMaintenanceScheduler(payments InterfacePaymentService, contracts InterfaceContractService, interval time.Duration) *MaintenanceScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &MaintenanceScheduler{
		Payments:  payments,
		Contracts: contracts,
		Interval:  interval,
		Now:       time.Now,
	}
}

// Start registers the job and starts the scheduler
func (m *MaintenanceScheduler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(m.Interval),
		gocron.NewTask(m.run),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return err
	}
	sched.Start()
	m.scheduler = sched
	logger.Info("maintenance scheduler started, interval %s", m.Interval)
	return nil
}

// Stop shuts the scheduler down. Stopping a scheduler that never started is a no-op.
func (m *MaintenanceScheduler) Stop() error {
	if m.scheduler == nil {
		return nil
	}
	err := m.scheduler.Shutdown()
	m.scheduler = nil
	return err
}

func (m *MaintenanceScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), m.Interval)
	defer cancel()
	res, err := m.RunOnce(ctx)
	if err != nil {
		logger.Error("maintenance run failed: %v", err)
		return
	}
	if res.OverduePayments > 0 || res.ExpiredContracts > 0 {
		logger.Info("maintenance: %d payments overdue, %d contracts expired", res.OverduePayments, res.ExpiredContracts)
	}
}

// RunOnce performs one maintenance pass
func (m *MaintenanceScheduler) RunOnce(ctx context.Context) (MaintenanceResult, error) {
	var res MaintenanceResult
	now := m.Now()

	if m.Payments != nil {
		n, err := m.Payments.MarkOverdue(ctx, now)
		if err != nil {
			return res, err
		}
		res.OverduePayments = n
	}
	if m.Contracts != nil {
		n, err := m.Contracts.ExpireEnded(ctx, now)
		if err != nil {
			return res, err
		}
		res.ExpiredContracts = n
	}
	return res, nil
}
