// Package voucher формирует тело запроса на создание ваучера из значений формы.
//
// Набор видимых полей зависит от типа скидки (Fields), строки приводятся к числам,
// пустые необязательные поля в запрос не попадают (BuildPayload), а Normalize
// проверяет итоговый запрос одинаково для HTML-формы и для JSON API.
package voucher

import "github.com/magabrotheeeer/voucher-console/internal/models"

// FieldSet описывает, какие поля скидки показаны для выбранного типа.
type FieldSet struct {
	PercentageDiscount bool
	MaxDiscountAmount  bool
	FixedDiscount      bool
}

// Fields возвращает набор полей для типа скидки.
// Для percentage обязателен percentageDiscount, для fixed — fixedDiscount.
// Неизвестный тип ведет себя как free_shipping: полей скидки нет.
func Fields(t models.DiscountType) FieldSet {
	switch t {
	case models.DiscountPercentage:
		return FieldSet{PercentageDiscount: true, MaxDiscountAmount: true}
	case models.DiscountFixed:
		return FieldSet{FixedDiscount: true}
	default:
		return FieldSet{}
	}
}

// Required возвращает имя обязательного поля скидки или пустую строку.
func (f FieldSet) Required() string {
	switch {
	case f.PercentageDiscount:
		return "percentageDiscount"
	case f.FixedDiscount:
		return "fixedDiscount"
	default:
		return ""
	}
}

// ParseType возвращает тип скидки из строки формы, по умолчанию percentage.
func ParseType(s string) models.DiscountType {
	for _, t := range models.DiscountTypes {
		if string(t) == s {
			return t
		}
	}
	return models.DiscountPercentage
}
