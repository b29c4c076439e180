package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMoney возвращается при некорректном денежном значении
var ErrInvalidMoney = errors.New("invalid money value")

// Money денежная сумма в евроцентах
// Все вычисления цен ведутся в целых центах, без float
type Money int64

// Cents создает сумму из количества центов
func Cents(c int64) Money {
	return Money(c)
}

// Euros создает сумму из целого количества евро
func Euros(e int64) Money {
	return Money(e * 100)
}

// ParseMoney разбирает строку вида "12", "12.5", "12.50", "-3.00"
// Больше двух знаков после точки не допускается
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidMoney)
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && (len(fracPart) == 0 || len(fracPart) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidMoney, s, err)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidMoney, s, err)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return Money(total), nil
}

// MustParseMoney как ParseMoney, но паникует при ошибке (для констант и тестов)
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents возвращает сумму в центах
func (m Money) Cents() int64 {
	return int64(m)
}

// Add складывает суммы
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub вычитает сумму
func (m Money) Sub(other Money) Money {
	return m - other
}

// Mul умножает сумму на целое количество (ночей, человек и т.п.)
func (m Money) Mul(n int64) Money {
	return Money(int64(m) * n)
}

// Percent возвращает pct процентов от суммы, округленные до цента
// по правилу банковского округления (half-to-even)
func (m Money) Percent(pct int64) Money {
	return Money(divRoundHalfEven(int64(m)*pct, 100))
}

// IsZero true для нулевой суммы
func (m Money) IsZero() bool {
	return m == 0
}

// String форматирует сумму с двумя знаками после точки: "140.00"
func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Float64 возвращает сумму в евро (только для отображения и метрик)
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// MarshalJSON сериализует сумму JSON-числом с двумя знаками: 140.00
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON принимает как число, так и строку
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок NUMERIC
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return err
		}
		*m = parsed
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
	case int64:
		*m = Euros(v)
	case float64:
		parsed, err := ParseMoney(strconv.FormatFloat(v, 'f', 2, 64))
		if err != nil {
			return err
		}
		*m = parsed
	case nil:
		*m = 0
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidMoney, src)
	}
	return nil
}

// Value реализует driver.Valuer: NUMERIC передается строкой без потери точности
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// divRoundHalfEven делит num на den (den > 0) с округлением half-to-even
func divRoundHalfEven(num, den int64) int64 {
	negative := num < 0
	if negative {
		num = -num
	}

	q := num / den
	r := num % den

	switch {
	case r*2 > den:
		q++
	case r*2 == den && q%2 == 1:
		q++
	}

	if negative {
		return -q
	}
	return q
}
