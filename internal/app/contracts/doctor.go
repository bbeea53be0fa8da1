package contracts

import (
	"context"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	InsertMany(ctx context.Context, doctors []models.Doctor) error
	DeleteAll(ctx context.Context) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (responses.Doctor, error)
}
