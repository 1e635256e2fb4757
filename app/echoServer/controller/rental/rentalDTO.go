package rental

import (
	"github.com/Bennnhere/LendIt-app/model"
	rs "github.com/Bennnhere/LendIt-app/service/rental"
)

var paymentMethods = []model.PaymentMethod{model.PayCash, model.PayWallet}

type RequestResp struct {
	Message string              `json:"message"`
	Rental  *model.ActiveRental `json:"rental"`
}

type StatusResp struct {
	*rs.Meter
	Message        string                `json:"message,omitempty"`
	PaymentMethods []model.PaymentMethod `json:"payment_methods,omitempty"`
}
