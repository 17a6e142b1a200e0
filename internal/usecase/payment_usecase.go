package usecase

import (
	"context"
	"errors"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/presenter"
	repo "shop/internal/repository"
)

type PaymentUsecase struct {
	tx        repo.TransactionManager
	presenter *presenter.Presenter
}

func NewPaymentUsecase(tx repo.TransactionManager, p *presenter.Presenter) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, presenter: p}
}

// POST /payment の入力。カード番号の妥当性は見ない
type PaymentInput struct {
	Number  string
	Name    string
	Month   string
	Year    string
	Code    string
	OrderID *int64
}

// 注文が指定されていればPAIDにしてactiveを落とす
func (u *PaymentUsecase) Create(ctx context.Context, userID int64, in PaymentInput) (presenter.PaymentRecord, error) {
	if userID <= 0 {
		return presenter.PaymentRecord{}, unauthorized()
	}
	if err := validatePayment(in); err != nil {
		return presenter.PaymentRecord{}, err
	}

	payment := model.Payment{
		UserID:       userID,
		OrderID:      in.OrderID,
		NumberMasked: MaskCardNumber(in.Number),
		Name:         strings.TrimSpace(in.Name),
		Month:        strings.TrimSpace(in.Month),
		Year:         strings.TrimSpace(in.Year),
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if in.OrderID != nil {
			o, err := r.Orders().FindByIDAndUserIDForUpdate(ctx, *in.OrderID, userID)
			if errors.Is(err, repo.ErrNotFound) {
				return notFound()
			}
			if err != nil {
				return dbError(err)
			}
			if !o.Active {
				return fieldError("order", "order is no longer active")
			}
			if err := changeOrderStatus(ctx, r, userID, &o, model.OrderStatusPaid, false); err != nil {
				return err
			}
		}

		if err := r.Payments().Create(ctx, &payment); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return presenter.PaymentRecord{}, err
	}
	return u.presenter.Payment(payment), nil
}

func validatePayment(in PaymentInput) error {
	fields := map[string][]string{}
	required := map[string]string{
		"number": in.Number,
		"name":   in.Name,
		"month":  in.Month,
		"year":   in.Year,
		"code":   in.Code,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			fields[field] = []string{"this field is required"}
		}
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

// 下4桁以外を*にする
func MaskCardNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
