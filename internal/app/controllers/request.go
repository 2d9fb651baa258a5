package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// Date accepts either a full RFC 3339 timestamp or a plain 2006-01-02 date.
// Plain dates are midnight UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return err
		}
	}
	d.Time = t.UTC()
	return nil
}

// Ptr returns nil for a missing or zero date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// bindJSON binds the request body and answers the request itself on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		bindError(c, err)
		return false
	}
	return true
}

// bindError maps a binding failure: malformed values are ErrParse, failed
// binding rules are ErrValidation, anything else ErrBind.
func bindError(c *gin.Context, err error) {
	var (
		typeErr  *json.UnmarshalTypeError
		timeErr  *time.ParseError
		validErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &typeErr):
		response.FailWithMessage(c, code.ErrParse, fmt.Sprintf("invalid value for field %s", typeErr.Field), nil)
	case errors.As(err, &timeErr):
		response.FailWithMessage(c, code.ErrParse, "invalid date: "+timeErr.Value, nil)
	case errors.As(err, &validErr):
		fields := make([]string, 0, len(validErr))
		for _, fe := range validErr {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		response.ParamError(c, strings.Join(fields, "; "))
	default:
		response.FailWithMessage(c, code.ErrBind, "invalid request: "+err.Error(), nil)
	}
}

// enumValidators are registered with gin's validator under their map key.
var enumValidators = map[string]func(string) bool{
	"incident_status":   func(s string) bool { return models.IncidentStatus(s).Valid() },
	"incident_priority": func(s string) bool { return models.IncidentPriority(s).Valid() },
	"incident_category": func(s string) bool { return models.IncidentCategory(s).Valid() },
	"room_status":       oneOf(models.RoomStatusAvailable, models.RoomStatusOccupied, models.RoomStatusMaintenance),
	"tenant_status":     oneOf(models.TenantStatusActive, models.TenantStatusInactive),
	"payment_status":    oneOf(models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusOverdue, models.PaymentStatusCancelled),
	"contract_status":   oneOf(models.ContractStatusActive, models.ContractStatusExpired, models.ContractStatusTerminated, models.ContractStatusCancelled),
	"user_role":         oneOf(models.UserRoleAdmin, models.UserRoleTenant),
}

func oneOf[T ~string](values ...T) func(string) bool {
	return func(s string) bool {
		for _, v := range values {
			if s == string(v) {
				return true
			}
		}
		return false
	}
}

// RegisterValidators installs the enum validators on gin's default validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator is not go-playground/validator")
	}
	for tag, valid := range enumValidators {
		valid := valid
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// setIf adds column to updates when the request carried the field.
func setIf[T any](updates map[string]interface{}, column string, v *T) {
	if v != nil {
		updates[column] = *v
	}
}
