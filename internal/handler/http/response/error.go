package response

import (
	"errors"
	"net/http"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
	"github.com/wintararaj-cmd/Attendance/internal/domain/user"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrEmpCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrMobileNoExists):
		Conflict(w, "Mobile number already registered")

	// Salary
	case errors.Is(err, salary.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, salary.ErrNegativeAmount):
		BadRequest(w, "Salary amounts must be non-negative", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must not be before check-in", nil)
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordLocked):
		Conflict(w, "Payroll record is locked for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
