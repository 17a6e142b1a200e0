package presenter

import "shop/internal/domain/model"

type ProfileRecord struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

type PaymentRecord struct {
	Number  string `json:"number"`
	Name    string `json:"name"`
	Month   string `json:"month"`
	Year    string `json:"year"`
	OrderID *int64 `json:"orderId,omitempty"`
}

// emailはUser側に持つ
func (p *Presenter) Profile(prof model.Profile) ProfileRecord {
	return ProfileRecord{
		FullName: prof.FullName,
		Email:    prof.User.Email,
		Phone:    prof.Phone,
		Avatar:   prof.Avatar,
	}
}

func (p *Presenter) Payment(pay model.Payment) PaymentRecord {
	return PaymentRecord{
		Number:  pay.NumberMasked,
		Name:    pay.Name,
		Month:   pay.Month,
		Year:    pay.Year,
		OrderID: pay.OrderID,
	}
}
