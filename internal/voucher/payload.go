package voucher

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/models"
)

// DateLayout формат дат, который отдает <input type="date">.
const DateLayout = "2006-01-02"

var validate = fielderr.NewValidator()

// BuildPayload приводит значения формы к телу запроса.
//
// Числа с плавающей точкой разбираются как десятичные, счетчики как целые по основанию 10.
// Пустые необязательные поля и поля, скрытые для выбранного типа, в запрос не попадают.
// Списки разделяются запятыми. Возвращаемая ошибка имеет тип fielderr.Errors.
func BuildPayload(d models.VoucherDraft) (models.VoucherPayload, error) {
	d = trimDraft(d)
	if err := fielderr.Check(validate, d); err != nil {
		return models.VoucherPayload{}, err
	}

	p := models.VoucherPayload{
		Code:               d.Code,
		Type:               models.DiscountType(d.Type),
		Target:             models.Target(d.Target),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		ApplicableProducts: splitList(d.ApplicableProducts),
		AllowedUsers:       splitList(d.AllowedUsers),
		RedeemableDays:     splitList(d.RedeemableDays),
	}

	errs := fielderr.Errors{}
	fields := Fields(p.Type)

	if fields.PercentageDiscount {
		p.PercentageDiscount = parseAmount(errs, "percentageDiscount", d.PercentageDiscount)
	}
	if fields.MaxDiscountAmount {
		p.MaxDiscountAmount = parseAmount(errs, "maxDiscountAmount", d.MaxDiscountAmount)
	}
	if fields.FixedDiscount {
		p.FixedDiscount = parseAmount(errs, "fixedDiscount", d.FixedDiscount)
	}
	if v := parseAmount(errs, "minCartValue", d.MinCartValue); v != nil {
		p.MinCartValue = *v
	}
	if v := parseCount(errs, "maxUses", d.MaxUses); v != nil {
		p.MaxUses = *v
	}
	p.MaxUsesPerUser = parseCount(errs, "maxUsesPerUser", d.MaxUsesPerUser)

	if err := errs.Err(); err != nil {
		return models.VoucherPayload{}, err
	}
	if err := Normalize(&p); err != nil {
		return models.VoucherPayload{}, err
	}
	return p, nil
}

// Normalize проверяет запрос и приводит его к каноническому виду:
// убирает поля скидки, не относящиеся к типу, и названия дней недели.
func Normalize(p *models.VoucherPayload) error {
	p.Code = strings.TrimSpace(p.Code)

	errs := fielderr.Errors{}
	if err := validate.Struct(p); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for field, msg := range fielderr.FromValidator(verrs) {
			errs.Add(field, msg)
		}
	}

	fields := Fields(p.Type)
	if !fields.PercentageDiscount {
		p.PercentageDiscount = nil
	}
	if !fields.MaxDiscountAmount {
		p.MaxDiscountAmount = nil
	}
	if !fields.FixedDiscount {
		p.FixedDiscount = nil
	}

	for field, v := range map[string]*float64{
		"percentageDiscount": p.PercentageDiscount,
		"fixedDiscount":      p.FixedDiscount,
		"maxDiscountAmount":  p.MaxDiscountAmount,
		"minCartValue":       &p.MinCartValue,
	} {
		if v != nil && (math.IsInf(*v, 0) || math.IsNaN(*v)) {
			errs.Add(field, fmt.Sprintf("field %s must be a number", field))
		}
	}

	switch req := fields.Required(); {
	case req == "percentageDiscount" && p.PercentageDiscount == nil:
		errs.Required(req)
	case req == "fixedDiscount" && p.FixedDiscount == nil:
		errs.Required(req)
	}

	if v := p.PercentageDiscount; v != nil && (*v <= 0 || *v > 100) {
		errs.Add("percentageDiscount", "field percentageDiscount must be greater than 0 and at most 100")
	}
	if v := p.FixedDiscount; v != nil && *v <= 0 {
		errs.Add("fixedDiscount", "field fixedDiscount must be greater than 0")
	}
	if v := p.MaxDiscountAmount; v != nil && *v < 0 {
		errs.Add("maxDiscountAmount", "field maxDiscountAmount must be at least 0")
	}
	if v := p.MaxUsesPerUser; v != nil && *v < 1 {
		errs.Add("maxUsesPerUser", "field maxUsesPerUser must be at least 1")
	}

	checkDates(errs, p)

	if len(p.RedeemableDays) > 0 {
		days := make([]string, 0, len(p.RedeemableDays))
		for _, d := range p.RedeemableDays {
			day, ok := canonicalDay(d)
			if !ok {
				errs.Add("redeemableDays", fmt.Sprintf("field redeemableDays has unknown day %q", d))
				continue
			}
			days = append(days, day)
		}
		p.RedeemableDays = days
	}

	return errs.Err()
}

func checkDates(errs fielderr.Errors, p *models.VoucherPayload) {
	start, startErr := time.Parse(DateLayout, p.StartDate)
	if p.StartDate != "" && startErr != nil {
		errs.Add("startDate", "field startDate must be a date in format YYYY-MM-DD")
	}
	end, endErr := time.Parse(DateLayout, p.EndDate)
	if p.EndDate != "" && endErr != nil {
		errs.Add("endDate", "field endDate must be a date in format YYYY-MM-DD")
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs.Add("endDate", "field endDate must not be before startDate")
	}
}

// parseAmount разбирает денежное значение. Пустая строка дает nil.
func parseAmount(errs fielderr.Errors, field, s string) *float64 {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		errs.Add(field, fmt.Sprintf("field %s must be a number", field))
		return nil
	}
	if d.IsNegative() {
		errs.Add(field, fmt.Sprintf("field %s must be at least 0", field))
		return nil
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		errs.Add(field, fmt.Sprintf("field %s must be a number", field))
		return nil
	}
	return &v
}

// parseCount разбирает целое число. Пустая строка дает nil.
func parseCount(errs fielderr.Errors, field, s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.Add(field, fmt.Sprintf("field %s must be a whole number", field))
		return nil
	}
	return &n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func trimDraft(d models.VoucherDraft) models.VoucherDraft {
	for _, f := range []*string{
		&d.Code, &d.Type, &d.Target,
		&d.PercentageDiscount, &d.FixedDiscount, &d.MaxDiscountAmount,
		&d.MinCartValue, &d.MaxUses, &d.MaxUsesPerUser,
		&d.StartDate, &d.EndDate,
	} {
		*f = strings.TrimSpace(*f)
	}
	return d
}
