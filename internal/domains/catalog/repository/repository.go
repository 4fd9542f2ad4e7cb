package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/internal/domains/catalog/model"
	gDto "tripavail/shared/dto"
	gRepo "tripavail/shared/repository"
)

type Package interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
}

type AddOn interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AddOn, error)
}

type packageRepository struct {
	gRepo.Repository[model.Package]
}

type roomRepository struct {
	gRepo.Repository[model.Room]
}

type addOnRepository struct {
	gRepo.Repository[model.AddOn]
}

func NewPackage(db *postgres.Connection, otel otel.Otel) Package {
	return &packageRepository{
		Repository: gRepo.NewRepository[model.Package](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewRoom(db *postgres.Connection, otel otel.Otel) Room {
	return &roomRepository{
		Repository: gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
	}
}

func NewAddOn(db *postgres.Connection, otel otel.Otel) AddOn {
	return &addOnRepository{
		Repository: gRepo.NewRepository[model.AddOn](model.AddOnEntityName, model.AddOnTableName, model.FieldID, db, otel),
	}
}
