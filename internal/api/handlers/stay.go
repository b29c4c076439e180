package handlers

import (
	"fmt"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/validation"
)

// StayRequest параметры проживания в теле запроса, даты в формате YYYY-MM-DD
type StayRequest struct {
	Subtype     string `json:"subtype"`
	IsWorker    bool   `json:"isWorker"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Electricity bool   `json:"electricity"`

	Adults         int `json:"adults"`
	ChildrenOver8  int `json:"childrenOver8"`
	ChildrenUnder8 int `json:"childrenUnder8"`
	Pets           int `json:"pets"`
	ExtraVehicles  int `json:"extraVehicles"`
	ExtraTents     int `json:"extraTents"`

	TentWidth     *float64 `json:"tentWidth,omitempty"`
	TentLength    *float64 `json:"tentLength,omitempty"`
	VehicleLength *float64 `json:"vehicleLength,omitempty"`
	CableLength   *float64 `json:"cableLength,omitempty"`
}

// ToStay разбирает даты и возвращает модель для валидации
func (r *StayRequest) ToStay() (validation.Stay, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return validation.Stay{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return validation.Stay{}, fmt.Errorf("endDate: %w", err)
	}

	return validation.Stay{
		Subtype:        domain.Subtype(r.Subtype),
		IsWorker:       r.IsWorker,
		StartDate:      start,
		EndDate:        end,
		Electricity:    r.Electricity,
		Adults:         r.Adults,
		ChildrenOver8:  r.ChildrenOver8,
		ChildrenUnder8: r.ChildrenUnder8,
		Pets:           r.Pets,
		ExtraVehicles:  r.ExtraVehicles,
		ExtraTents:     r.ExtraTents,
		TentWidth:      r.TentWidth,
		TentLength:     r.TentLength,
		VehicleLength:  r.VehicleLength,
		CableLength:    r.CableLength,
	}, nil
}
