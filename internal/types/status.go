package types

import (
	"github.com/samber/lo"

	ierr "github.com/gymflow/gymflow/internal/errors"
)

// MemberStatus gates whether a member is billed: only active members
// receive generated recurring charges.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

func (s MemberStatus) Validate() error {
	allowed := []MemberStatus{
		MemberStatusActive,
		MemberStatusInactive,
		MemberStatusPending,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewErrorf("invalid member status: %s", s).
			WithHint("Please provide a valid member status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PaymentStatus follows the payment state machine: pending and overdue
// payments may transition to paid via explicit confirmation; paid is
// terminal for automatic transitions.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{
		PaymentStatusPaid,
		PaymentStatusPending,
		PaymentStatusOverdue,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewErrorf("invalid payment status: %s", s).
			WithHint("Please provide a valid payment status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UserRole controls access to the administration API.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

func (r UserRole) Validate() error {
	allowed := []UserRole{UserRoleAdmin, UserRoleManager, UserRoleStaff}
	if !lo.Contains(allowed, r) {
		return ierr.NewErrorf("invalid user role: %s", r).
			WithHint("Please provide a valid user role").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "rent"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategorySalaries    ExpenseCategory = "salaries"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) Validate() error {
	allowed := []ExpenseCategory{
		ExpenseCategoryRent,
		ExpenseCategoryEquipment,
		ExpenseCategorySalaries,
		ExpenseCategoryUtilities,
		ExpenseCategoryMaintenance,
		ExpenseCategoryOther,
	}
	if !lo.Contains(allowed, c) {
		return ierr.NewErrorf("invalid expense category: %s", c).
			WithHint("Please provide a valid expense category").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AuditAction identifies what a mutating operation did to an entity.
type AuditAction string

const (
	AuditActionCreate         AuditAction = "create"
	AuditActionUpdate         AuditAction = "update"
	AuditActionDelete         AuditAction = "delete"
	AuditActionLogin          AuditAction = "login"
	AuditActionConfirmPayment AuditAction = "confirm_payment"
	AuditActionBillingCycle   AuditAction = "billing_cycle_run"
)
