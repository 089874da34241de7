package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/config"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/httperr"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/middleware"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/queue"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/repository"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/utils"
)

// StaffHandler bundles dependencies for the staff-code and staff-directory
// endpoints.  Events is optional; a nil publisher disables the
// staff.registered notification without affecting registration itself.
type StaffHandler struct {
	Cfg    config.Config
	Codes  StaffCodeStore
	Staff  StaffStore
	Events EventPublisher
}

func NewStaffHandler(cfg config.Config, codes StaffCodeStore, staff StaffStore, events EventPublisher) *StaffHandler {
	return &StaffHandler{Cfg: cfg, Codes: codes, Staff: staff, Events: events}
}

// ----- DTOs -----

type registerReq struct {
	Surname     string `json:"surname"`
	OtherNames  string `json:"otherNames"`
	DateOfBirth string `json:"dateOfBirth"`
	PhotoID     string `json:"photoId"` // optional base64 image payload
	Code        string `json:"code"`
}

type updateStaffReq struct {
	DateOfBirth *string `json:"dateOfBirth"`
	PhotoID     *string `json:"photoId"`
}

// parseDateOfBirth accepts a bare calendar date or a full RFC 3339 stamp.
func parseDateOfBirth(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateCode issues a fresh single-use registration code valid for the
// configured lifetime (24 hours by default).  Candidates colliding with a
// live code are regenerated until a free one is found; the code space
// (9 billion values) dwarfs the number of live rows, so in practice the
// first candidate wins.
func (h *StaffHandler) CreateCode(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	for {
		candidate, err := utils.NewStaffCode()
		if err != nil {
			return httperr.Internal("generate code failed")
		}
		exists, err := h.Codes.Exists(ctx, candidate)
		if err != nil {
			return httperr.Internal("code lookup failed")
		}
		if exists {
			continue
		}
		created, err := h.Codes.Create(ctx, candidate, time.Now().UTC().Add(h.Cfg.CodeTTL))
		if err != nil {
			// A concurrent issuer inserted the same value between our
			// existence check and the insert; try a fresh candidate.
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return httperr.Internal("create code failed")
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"code":    created.Code,
		})
	}
}

// Register consumes a staff code and creates the staff record.  Validation
// is fail fast: missing code, unparseable date, unknown code, already-used
// code and expired code each produce their own 400.  The staff insert and
// the code consumption commit in one transaction.
func (h *StaffHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid body")
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		return httperr.BadRequest("Staff code is required")
	}
	dob, err := parseDateOfBirth(strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		return httperr.BadRequest("Invalid date format. Date of birth must be in ISO 8601 format.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	code, err := h.Codes.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return httperr.BadRequest("Invalid code")
		}
		return httperr.Internal("code lookup failed")
	}
	if code.Used {
		return httperr.BadRequest("This code has already been used")
	}
	now := time.Now().UTC()
	if now.After(code.ExpiresAt) {
		return httperr.BadRequest("This code has expired")
	}

	staff := model.Staff{
		Surname:     req.Surname,
		OtherNames:  req.OtherNames,
		DateOfBirth: dob,
		UniqueCode:  code.Code,
	}
	if req.PhotoID != "" {
		staff.PhotoID = &req.PhotoID
	}

	// Pick an employee number the same way codes are issued: generate,
	// check, regenerate on collision.  The unique column catches the rare
	// candidate that loses the insert race.
	for {
		number, err := utils.NewEmployeeNumber()
		if err != nil {
			return httperr.Internal("generate employee number failed")
		}
		taken, err := h.Staff.EmployeeNumberExists(ctx, number)
		if err != nil {
			return httperr.Internal("employee number lookup failed")
		}
		if taken {
			continue
		}
		staff.EmployeeNumber = number

		err = h.Staff.RegisterWithCode(ctx, &staff, code.ID, now)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if errors.Is(err, sql.ErrNoRows) {
			// A concurrent registration consumed the code first.
			return httperr.BadRequest("This code has already been used")
		}
		if err != nil {
			return httperr.Internal("register staff failed")
		}
		break
	}

	if h.Events != nil {
		ev := queue.StaffRegisteredEvent{
			StaffID:        staff.ID,
			EmployeeNumber: staff.EmployeeNumber,
			Surname:        staff.Surname,
			OtherNames:     staff.OtherNames,
			Code:           staff.UniqueCode,
			RegisteredAt:   now.Format(time.RFC3339),
		}
		// Best effort: a broker outage must not fail the registration.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := h.Events.PublishStaffRegistered(ctx, ev); err != nil {
				log.Printf("staff: publish staff.registered failed: %v", err)
			}
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":        true,
		"employeeNumber": staff.EmployeeNumber,
		"surname":        staff.Surname,
	})
}

// GetStaff returns all staff when no employeeNumber query parameter is
// given, or a single record otherwise.  A non-admin caller may only fetch
// the record whose employee number equals its own identifier.
func (h *StaffHandler) GetStaff(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	employeeNumber := strings.TrimSpace(c.QueryParam("employeeNumber"))
	if employeeNumber == "" {
		list, err := h.Staff.ListAll(ctx)
		if err != nil {
			return httperr.Internal("list staff failed")
		}
		if list == nil {
			list = []model.Staff{}
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "staff": list})
	}

	if err := authorizeStaffAccess(c, employeeNumber); err != nil {
		return err
	}

	s, err := h.Staff.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return httperr.NotFound("Staff member not found")
		}
		return httperr.Internal("staff lookup failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "staff": s})
}

// UpdateStaff amends the mutable staff fields (date of birth, photo).  The
// same owner-or-admin rule as GetStaff applies.
func (h *StaffHandler) UpdateStaff(c echo.Context) error {
	employeeNumber := strings.TrimSpace(c.Param("employeeNumber"))
	if err := authorizeStaffAccess(c, employeeNumber); err != nil {
		return err
	}

	var req updateStaffReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid body")
	}
	var dob *time.Time
	if req.DateOfBirth != nil {
		t, err := parseDateOfBirth(strings.TrimSpace(*req.DateOfBirth))
		if err != nil {
			return httperr.BadRequest("Invalid date format. Date of birth must be in ISO 8601 format.")
		}
		dob = &t
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Load first so an unknown employee number 404s without writing.
	if _, err := h.Staff.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return httperr.NotFound("Staff member not found")
		}
		return httperr.Internal("staff lookup failed")
	}

	updated, err := h.Staff.Update(ctx, employeeNumber, dob, req.PhotoID)
	if err != nil {
		return httperr.Internal("update staff failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Staff updated successfully",
		"staff":   updated,
	})
}

// authorizeStaffAccess enforces the owner-or-admin rule: admins act on any
// record, everyone else only on the record matching their own identifier.
func authorizeStaffAccess(c echo.Context, employeeNumber string) error {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == model.RoleAdmin {
		return nil
	}
	callerID, _ := c.Get(middleware.CtxUserID).(uint64)
	if strconv.FormatUint(callerID, 10) != employeeNumber {
		return httperr.Unauthorized("You are not authorized to access this resource")
	}
	return nil
}
