// Package pages рендерит HTML-страницы консоли из встроенных шаблонов.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	"github.com/magabrotheeeer/voucher-console/internal/voucher"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц.
const (
	Auth      = "auth.html"
	Voucher   = "voucher.html"
	Dashboard = "dashboard.html"
)

// Renderer хранит разобранные шаблоны страниц.
type Renderer struct {
	pages map[string]*template.Template
}

// New разбирает шаблоны. Каждая страница собирается вместе с layout.html.
func New() (*Renderer, error) {
	const op = "pages.New"

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Auth, Voucher, Dashboard} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render выполняет шаблон в буфер и только потом пишет ответ,
// чтобы ошибка шаблона не оставила наполовину отправленную страницу.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("pages.Render: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("pages.Render: %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// AuthPage данные формы аутентификации.
type AuthPage struct {
	Mode        string
	Role        string
	Email       string
	Notice      string
	Error       string
	FieldErrors fielderr.Errors
}

// IsAdmin нужен шаблону для текста приглашения и выбора радиокнопки.
func (p AuthPage) IsAdmin() bool {
	return p.Role == string(models.RoleAdmin)
}

// Option пункт выпадающего списка.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// VoucherPage данные формы создания ваучера.
type VoucherPage struct {
	Email       string
	Draft       models.VoucherDraft
	Fields      voucher.FieldSet
	Types       []Option
	Targets     []Option
	Error       string
	FieldErrors fielderr.Errors
}

var typeLabels = map[models.DiscountType]string{
	models.DiscountPercentage:   "Percentage",
	models.DiscountFixed:        "Fixed",
	models.DiscountFreeShipping: "Free Shipping",
}

var targetLabels = map[models.Target]string{
	models.TargetProduct:  "Product",
	models.TargetShipping: "Shipping",
	models.TargetCart:     "Cart",
}

// NewVoucherPage собирает страницу для черновика: набор полей зависит от типа скидки.
func NewVoucherPage(email string, draft models.VoucherDraft) VoucherPage {
	t := voucher.ParseType(draft.Type)
	draft.Type = string(t)
	if draft.Target == "" {
		draft.Target = string(models.TargetProduct)
	}

	page := VoucherPage{
		Email:  email,
		Draft:  draft,
		Fields: voucher.Fields(t),
	}
	for _, dt := range models.DiscountTypes {
		page.Types = append(page.Types, Option{Value: string(dt), Label: typeLabels[dt], Selected: dt == t})
	}
	for _, tg := range models.Targets {
		page.Targets = append(page.Targets, Option{Value: string(tg), Label: targetLabels[tg], Selected: string(tg) == draft.Target})
	}
	return page
}

// DashboardPage данные страницы после создания ваучера.
type DashboardPage struct {
	Email   string
	Created string
}
