package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// ValidateForm convierte el formulario crudo en un ItemDraft o devuelve un *domain.ValidationError.
// Orden de validación: requeridos, numéricos, no negativos. Un campo numérico vacío vale 0.
func ValidateForm(form entity.ItemForm) (entity.ItemDraft, error) {
	name := strings.TrimSpace(form.Name)
	category := strings.TrimSpace(form.Category)
	if name == "" || category == "" {
		field := "name"
		if name != "" {
			field = "category"
		}
		return entity.ItemDraft{}, domain.NewValidationError(field, domain.MsgNameCategoryRequired)
	}

	quantity, okQty := parseInt(form.Quantity, true)
	minThreshold, okMin := parseInt(form.MinThreshold, true)
	if !okQty || !okMin {
		field := "quantity"
		if okQty {
			field = "minThreshold"
		}
		return entity.ItemDraft{}, domain.NewValidationError(field, domain.MsgNumbersRequired)
	}

	return ValidateDraft(entity.ItemDraft{
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		MinThreshold: minThreshold,
	})
}

// ValidateDraft aplica las reglas sobre un borrador ya tipado (usado también por el backend de referencia).
func ValidateDraft(d entity.ItemDraft) (entity.ItemDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	if d.Name == "" {
		return entity.ItemDraft{}, domain.NewValidationError("name", domain.MsgNameCategoryRequired)
	}
	if d.Category == "" {
		return entity.ItemDraft{}, domain.NewValidationError("category", domain.MsgNameCategoryRequired)
	}
	if d.Quantity < 0 {
		return entity.ItemDraft{}, domain.NewValidationError("quantity", domain.MsgNegativeValues)
	}
	if d.MinThreshold < 0 {
		return entity.ItemDraft{}, domain.NewValidationError("minThreshold", domain.MsgNegativeValues)
	}
	if d.Quantity > math.MaxInt32 {
		return entity.ItemDraft{}, domain.NewValidationError("quantity", domain.MsgValueTooLarge)
	}
	if d.MinThreshold > math.MaxInt32 {
		return entity.ItemDraft{}, domain.NewValidationError("minThreshold", domain.MsgValueTooLarge)
	}
	return d, nil
}

// CheckDelta valida un delta ya tipado: distinto de cero y dentro del rango de int32.
func CheckDelta(delta int) error {
	if delta == 0 {
		return domain.NewValidationError("delta", domain.MsgInvalidDelta)
	}
	if !fitsInt32(delta) {
		return domain.NewValidationError("delta", domain.MsgValueTooLarge)
	}
	return nil
}

// ApplyDelta calcula la nueva cantidad. Resultado negativo → ErrInsufficientStock;
// por encima de int32 → *domain.ValidationError sobre "quantity".
func ApplyDelta(quantity, delta int) (int, error) {
	if !fitsInt32(quantity) || !fitsInt32(delta) {
		return 0, domain.NewValidationError("quantity", domain.MsgValueTooLarge)
	}
	next := int64(quantity) + int64(delta)
	if next < 0 {
		return 0, domain.ErrInsufficientStock
	}
	if next > math.MaxInt32 {
		return 0, domain.NewValidationError("quantity", domain.MsgValueTooLarge)
	}
	return int(next), nil
}

// ParseDelta interpreta el ajuste relativo escrito por el usuario. Cero o no numérico es inválido.
func ParseDelta(raw string) (int, error) {
	delta, ok := parseInt(raw, false)
	if !ok {
		return 0, domain.NewValidationError("delta", domain.MsgInvalidDelta)
	}
	if err := CheckDelta(delta); err != nil {
		return 0, err
	}
	return delta, nil
}

func fitsInt32(n int) bool { return n >= math.MinInt32 && n <= math.MaxInt32 }

// parseInt acepta enteros con signo; también "5.0" (sin parte fraccionaria).
func parseInt(raw string, emptyIsZero bool) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, emptyIsZero
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// Fuera de int64 se satura; ValidateDraft y CheckDelta rechazan el valor después.
	if f >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if f <= math.MinInt64 {
		return math.MinInt64, true
	}
	return int(f), true
}
