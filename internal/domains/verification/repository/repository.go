package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"medibook/infras/otel"
	"medibook/infras/postgres"
	"medibook/internal/domains/verification/model"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	gRepo "medibook/shared/repository"
)

type Verification interface {
	Insert(ctx context.Context, model model.OtpVerification) error
	GetLatestByPhone(ctx context.Context, phone string) (model.OtpVerification, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OtpVerification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Verification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OtpVerification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetLatestByPhone returns the most recently issued code for the phone, or a
// zero model when none exists.
func (repo *repositoryImpl) GetLatestByPhone(ctx context.Context, phone string) (model.OtpVerification, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp_verification.GetLatestByPhone")
	defer scope.End()

	rows, err := repo.GetAll(ctx,
		gDto.QueryParams{Limit: 1, SortBy: constant.FieldCreatedAt, SortDir: constant.DefaultValueSortDir},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldPhone, Value: phone, Operator: gDto.FilterOperatorEq},
			},
		},
	)
	if err != nil {
		scope.TraceError(err)

		return model.OtpVerification{}, err
	}

	if len(rows) == 0 {
		return model.OtpVerification{}, nil
	}

	return rows[0], nil
}
