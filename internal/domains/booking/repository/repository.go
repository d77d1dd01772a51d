package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"medibook/infras/otel"
	"medibook/infras/postgres"
	"medibook/internal/domains/booking/model"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/failure"
	gRepo "medibook/shared/repository"
)

// ErrTokenTaken reports that the token picked for an insert is already held
// by another booking. Tokens are unique across all bookings regardless of
// status. Callers retry with a fresh token.
var ErrTokenTaken = errors.New("queue token already taken")

type Booking interface {
	Reserve(ctx context.Context, booking model.Booking) error
	IsSlotFree(ctx context.Context, doctorID string, date time.Time, slot, excludeID string) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reserve inserts the booking row. The bookings table carries two unique
// constraints that implement the reservation rules, so a single insert both
// claims the slot and registers the token atomically. Constraint violations
// are translated by MapUniqueViolation.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()

	err := repo.Insert(ctx, booking)
	if err != nil {
		return MapUniqueViolation(err)
	}

	return nil
}

func (repo *repositoryImpl) IsSlotFree(ctx context.Context, doctorID string, date time.Time, slot, excludeID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IsSlotFree")
	defer scope.End()

	filters := []any{
		gDto.Filter{Field: model.FieldDoctorID, Value: doctorID, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldAppointmentDate, Value: model.NormalizeAppointmentDate(date), Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldSlot, Value: slot, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatusStrings(), Operator: gDto.FilterOperatorIn},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq})
	}

	taken, err := repo.Exist(ctx, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
	if err != nil {
		scope.TraceError(err)

		return false, err
	}

	return !taken, nil
}

// MapUniqueViolation inspects a postgres unique violation by constraint name.
// A hit on the active-slot index means another active booking holds the slot;
// a hit on the token index means the random token collided and the caller
// should retry. Anything else passes through unchanged.
func MapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
		return err
	}

	switch pqErr.Constraint {
	case model.ConstraintActiveSlot:
		return failure.SlotUnavailable()
	case model.ConstraintToken:
		return ErrTokenTaken
	default:
		return err
	}
}
