package models

// DiscountType тип скидки ваучера.
type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// DiscountTypes перечисляет типы скидок в порядке отображения в форме.
var DiscountTypes = []DiscountType{DiscountPercentage, DiscountFixed, DiscountFreeShipping}

// Target объект, к которому применяется ваучер.
type Target string

const (
	TargetProduct  Target = "product"
	TargetShipping Target = "shipping"
	TargetCart     Target = "cart"
)

// Targets перечисляет цели в порядке отображения в форме.
var Targets = []Target{TargetProduct, TargetShipping, TargetCart}

// VoucherDraft — сырые значения формы создания ваучера, все поля строковые.
type VoucherDraft struct {
	Code               string `json:"code" validate:"required"`
	Type               string `json:"type" validate:"required,oneof=percentage fixed free_shipping"`
	Target             string `json:"target" validate:"required,oneof=product shipping cart"`
	PercentageDiscount string `json:"percentageDiscount"`
	FixedDiscount      string `json:"fixedDiscount"`
	MaxDiscountAmount  string `json:"maxDiscountAmount"`
	MinCartValue       string `json:"minCartValue" validate:"required"`
	MaxUses            string `json:"maxUses" validate:"required"`
	MaxUsesPerUser     string `json:"maxUsesPerUser"`
	StartDate          string `json:"startDate" validate:"required"`
	EndDate            string `json:"endDate" validate:"required"`
	ApplicableProducts string `json:"applicableProducts"`
	AllowedUsers       string `json:"allowedUsers"`
	RedeemableDays     string `json:"redeemableDays"`
}

// VoucherPayload — тело запроса POST /voucher.
// Необязательные поля с nil значением не попадают в JSON.
type VoucherPayload struct {
	Code               string       `json:"code" validate:"required"`
	Type               DiscountType `json:"type" validate:"required,oneof=percentage fixed free_shipping"`
	Target             Target       `json:"target" validate:"required,oneof=product shipping cart"`
	PercentageDiscount *float64     `json:"percentageDiscount,omitempty"`
	FixedDiscount      *float64     `json:"fixedDiscount,omitempty"`
	MaxDiscountAmount  *float64     `json:"maxDiscountAmount,omitempty"`
	MinCartValue       float64      `json:"minCartValue" validate:"gte=0"`
	MaxUses            int          `json:"maxUses" validate:"gte=1"`
	MaxUsesPerUser     *int         `json:"maxUsesPerUser,omitempty"`
	StartDate          string       `json:"startDate" validate:"required"`
	EndDate            string       `json:"endDate" validate:"required"`
	ApplicableProducts []string     `json:"applicableProducts,omitempty"`
	AllowedUsers       []string     `json:"allowedUsers,omitempty"`
	RedeemableDays     []string     `json:"redeemableDays,omitempty"`
}
