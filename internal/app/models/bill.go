package models

import (
	"radiox-service/internal/pkg/dto/responses"
	"time"
)

type Bill struct {
	ID          string    `bson:"_id,omitempty"`
	PatientName string    `bson:"patientName"`
	Service     string    `bson:"service"`
	Amount      float64   `bson:"amount"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (b *Bill) ConvertIntoResponse() responses.Bill {
	return responses.Bill{
		ID:          b.ID,
		PatientName: b.PatientName,
		Service:     b.Service,
		Amount:      b.Amount,
	}
}
