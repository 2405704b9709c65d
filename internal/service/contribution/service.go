package contribution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

type ContributionServiceImpl struct {
	tableRepo contribution.TableRepository
}

func NewContributionService(tableRepo contribution.TableRepository) contribution.Service {
	return &ContributionServiceImpl{tableRepo: tableRepo}
}

// CreateTable implements contribution.Service. New tables start inactive;
// activation is a separate explicit step.
func (s *ContributionServiceImpl) CreateTable(ctx context.Context, req contribution.CreateTableRequest) (contribution.TableResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.TableResponse{}, err
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)

	table := contribution.Table{
		ID:            uuid.New().String(),
		Type:          contribution.TableType(req.Type),
		Name:          req.Name,
		EffectiveDate: effectiveDate,
		IsActive:      false,
		PremiumRate:   req.PremiumRate,
		Brackets:      make([]contribution.Bracket, 0, len(req.Brackets)),
	}
	for _, b := range req.Brackets {
		table.Brackets = append(table.Brackets, contribution.Bracket{
			RangeStart:   b.RangeStart,
			RangeEnd:     b.RangeEnd,
			RegularSSEE:  b.RegularSSEE,
			RegularSSER:  b.RegularSSER,
			ECER:         b.ECER,
			WISPEE:       b.WISPEE,
			WISPER:       b.WISPER,
			EmployeeRate: b.EmployeeRate,
			EmployerRate: b.EmployerRate,
		})
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		return contribution.TableResponse{}, fmt.Errorf("create contribution table: %w", err)
	}
	return toResponse(created), nil
}

// GetTable implements contribution.Service.
func (s *ContributionServiceImpl) GetTable(ctx context.Context, id string) (contribution.TableResponse, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return contribution.TableResponse{}, err
	}
	return toResponse(table), nil
}

// ListTables implements contribution.Service.
func (s *ContributionServiceImpl) ListTables(ctx context.Context, tableType string) ([]contribution.TableResponse, error) {
	var tables []contribution.Table
	var err error

	if tableType == "" {
		tables, err = s.tableRepo.List(ctx)
	} else {
		tt := contribution.TableType(tableType)
		if !tt.Valid() {
			return nil, contribution.ErrInvalidTableType
		}
		tables, err = s.tableRepo.ListByType(ctx, tt)
	}
	if err != nil {
		return nil, fmt.Errorf("list contribution tables: %w", err)
	}

	responses := make([]contribution.TableResponse, 0, len(tables))
	for _, t := range tables {
		responses = append(responses, toResponse(t))
	}
	return responses, nil
}

// ActivateTable implements contribution.Service.
func (s *ContributionServiceImpl) ActivateTable(ctx context.Context, id string) error {
	return s.tableRepo.Activate(ctx, id)
}

// DeleteTable implements contribution.Service.
func (s *ContributionServiceImpl) DeleteTable(ctx context.Context, id string) error {
	return s.tableRepo.Delete(ctx, id)
}

func toResponse(t contribution.Table) contribution.TableResponse {
	resp := contribution.TableResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		Name:          t.Name,
		EffectiveDate: t.EffectiveDate.Format("2006-01-02"),
		IsActive:      t.IsActive,
		PremiumRate:   t.PremiumRate,
		Brackets:      make([]contribution.BracketResponse, 0, len(t.Brackets)),
	}
	for _, b := range t.Brackets {
		resp.Brackets = append(resp.Brackets, contribution.BracketResponse{
			RangeStart:   b.RangeStart,
			RangeEnd:     b.RangeEnd,
			RegularSSEE:  b.RegularSSEE,
			RegularSSER:  b.RegularSSER,
			ECER:         b.ECER,
			WISPEE:       b.WISPEE,
			WISPER:       b.WISPER,
			EmployeeRate: b.EmployeeRate,
			EmployerRate: b.EmployerRate,
		})
	}
	return resp
}
