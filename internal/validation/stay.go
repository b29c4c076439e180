package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Stay параметры проживания из формы бронирования
type Stay struct {
	Subtype     domain.Subtype `json:"subtype" validate:"required,subtype"`
	IsWorker    bool           `json:"isWorker"`
	StartDate   time.Time      `json:"startDate" validate:"required"`
	EndDate     time.Time      `json:"endDate" validate:"required"`
	Electricity bool           `json:"electricity"`

	Adults         int `json:"adults" validate:"min=1,max=10"`
	ChildrenOver8  int `json:"childrenOver8" validate:"min=0,max=10"`
	ChildrenUnder8 int `json:"childrenUnder8" validate:"min=0,max=10"`
	Pets           int `json:"pets" validate:"min=0,max=2"`
	ExtraVehicles  int `json:"extraVehicles" validate:"min=0,max=5"`
	ExtraTents     int `json:"extraTents" validate:"min=0,max=5"`

	TentWidth     *float64 `json:"tentWidth" validate:"omitempty,gt=0,lte=30,onedecimal"`
	TentLength    *float64 `json:"tentLength" validate:"omitempty,gt=0,lte=30,onedecimal"`
	VehicleLength *float64 `json:"vehicleLength" validate:"omitempty,gt=0,lte=30,onedecimal"`
	CableLength   *float64 `json:"cableLength" validate:"omitempty,gt=0,lte=100,onedecimal"`
}

// Contact контактные данные клиента
type Contact struct {
	LastName  string `json:"lastName" validate:"required,max=100"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

// Validator проверяет запросы на бронирование
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с правилами подтипов и условных полей
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ошибка регистрации возможна только при пустом теге
	_ = v.RegisterValidation("subtype", validateSubtype)
	_ = v.RegisterValidation("onedecimal", validateOneDecimal)
	v.RegisterStructValidation(validateConditionalFields, Stay{})

	return &Validator{validate: v}
}

func validateSubtype(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(domain.Subtype)
	return ok && s.IsValid()
}

// validateOneDecimal размеры хранятся как NUMERIC(4,1) и NUMERIC(5,1)
func validateOneDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}
	tenths := fl.Field().Float() * 10
	return math.Abs(tenths-math.Round(tenths)) < 1e-6
}

// validateConditionalFields размеры палатки, длина ТС и кабеля обязательны в зависимости от выбора
func validateConditionalFields(sl validator.StructLevel) {
	stay := sl.Current().Interface().(Stay)

	if stay.Subtype.IsTentLike() {
		if stay.TentWidth == nil {
			sl.ReportError(stay.TentWidth, "tentWidth", "TentWidth", "required_for_tent", string(stay.Subtype))
		}
		if stay.TentLength == nil {
			sl.ReportError(stay.TentLength, "tentLength", "TentLength", "required_for_tent", string(stay.Subtype))
		}
	}

	if stay.Subtype.IsVehicleLike() && stay.VehicleLength == nil {
		sl.ReportError(stay.VehicleLength, "vehicleLength", "VehicleLength", "required_for_vehicle", string(stay.Subtype))
	}

	if stay.Electricity && stay.CableLength == nil {
		sl.ReportError(stay.CableLength, "cableLength", "CableLength", "required_with_electricity", "")
	}
}

// ValidateStay проверяет поля и даты
// Даты проверяются до расчета цены и вместимости
func (v *Validator) ValidateStay(stay Stay, now time.Time) error {
	if err := v.ValidateDates(stay.StartDate, stay.EndDate, now); err != nil {
		return err
	}
	return v.Struct(stay)
}

// ValidateDates выезд строго после заезда, заезд не раньше сегодняшнего дня
func (v *Validator) ValidateDates(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDateRange)
	}
	if !types.DateOnly(end).After(types.DateOnly(start)) {
		return fmt.Errorf("%w: end date %s must be after start date %s",
			ErrInvalidDateRange, end.Format(domain.DateFormat), start.Format(domain.DateFormat))
	}
	if types.DateOnly(start).Before(types.DateOnly(now)) {
		return fmt.Errorf("%w: start date %s is in the past",
			ErrInvalidDateRange, start.Format(domain.DateFormat))
	}
	return nil
}

// Struct проверяет теги validate у произвольной структуры
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

func translate(errs validator.ValidationErrors) FieldErrors {
	result := make(FieldErrors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "is required"
		case "min", "gte":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "max", "lte":
			message = fmt.Sprintf("must be at most %s", err.Param())
		case "gt":
			message = fmt.Sprintf("must be greater than %s", err.Param())
		case "email":
			message = "must be a valid email address"
		case "onedecimal":
			message = "must have at most one decimal place"
		case "subtype":
			message = fmt.Sprintf("unknown accommodation subtype %q", err.Value())
		case "required_for_tent":
			message = fmt.Sprintf("is required for subtype %s", err.Param())
		case "required_for_vehicle":
			message = fmt.Sprintf("is required for subtype %s", err.Param())
		case "required_with_electricity":
			message = "is required when electricity is chosen"
		}

		result = append(result, FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return result
}
