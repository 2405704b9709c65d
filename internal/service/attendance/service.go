package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/tala-hr/payroll-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// TimeIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TimeIn(ctx context.Context, req attendance.TimeInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	_, err = s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyTimedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("check existing attendance: %w", err)
	}

	attType := attendance.TypeRegular
	if req.Type != "" {
		attType = attendance.Type(req.Type)
	}

	att := attendance.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TimeIn:     now,
		Type:       attType,
		Status:     attendance.StatusPresent,
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("create attendance: %w", err)
	}
	return toResponse(created), nil
}

// TimeOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TimeOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotTimedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("get attendance: %w", err)
	}
	if att.TimeOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyTimedOut
	}
	if now.Before(att.TimeIn) {
		return attendance.AttendanceResponse{}, attendance.ErrTimeOutBeforeIn
	}

	att.TimeOut = &now
	applyHours(&att)

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("update attendance: %w", err)
	}
	return toResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = employeeID
	return s.ListAttendance(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 31
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: make([]attendance.AttendanceResponse, 0, len(attendances)),
	}
	for _, att := range attendances {
		resp.Attendances = append(resp.Attendances, toResponse(att))
	}
	return resp, nil
}

// CorrectAttendance implements attendance.AttendanceService. Admin fix-up for
// forgotten punches; derived hours are recomputed from the corrected pair.
func (s *AttendanceServiceImpl) CorrectAttendance(ctx context.Context, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.TimeIn != nil {
		timeIn, err := time.Parse(time.RFC3339, *req.TimeIn)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("parse time_in: %w", err)
		}
		att.TimeIn = timeIn
	}
	if req.TimeOut != nil {
		timeOut, err := time.Parse(time.RFC3339, *req.TimeOut)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("parse time_out: %w", err)
		}
		if timeOut.Before(att.TimeIn) {
			return attendance.AttendanceResponse{}, attendance.ErrTimeOutBeforeIn
		}
		att.TimeOut = &timeOut
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	applyHours(&att)

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("update attendance: %w", err)
	}
	return toResponse(att), nil
}

// applyHours recomputes the derived fields when a time-out is present.
func applyHours(att *attendance.Attendance) {
	if att.TimeOut == nil {
		return
	}
	hours := ComputeHours(att.TimeIn, *att.TimeOut)
	att.WorkedHours = &hours.WorkedHours
	att.OvertimeHours = &hours.OvertimeHours
	att.IsLate = &hours.IsLate
	att.IsUndertime = &hours.IsUndertime
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		Date:          att.Date.Format("2006-01-02"),
		TimeIn:        att.TimeIn.Format(time.RFC3339),
		Type:          string(att.Type),
		Status:        string(att.Status),
		WorkedHours:   att.WorkedHours,
		OvertimeHours: att.OvertimeHours,
		IsLate:        att.IsLate,
		IsUndertime:   att.IsUndertime,
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.TimeOut != nil {
		formatted := att.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &formatted
	}
	return resp
}
