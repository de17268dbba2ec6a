package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateIntent registers the order with the payment provider and
// returns the provider order for the checkout widget.
func (p *PaymentController) CreateIntent(c *ctx.Context) {
	var input services.CreateIntentInput
	if !c.BindJSON(&input) {
		return
	}

	intent, err := p.payments.CreateIntent(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Payment intent created", intent)
}

// Verify checks the provider signature and marks the order paid.
func (p *PaymentController) Verify(c *ctx.Context) {
	var input services.VerifyInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := p.payments.Verify(input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Payment verified", order)
}

// Key exposes the public key id the storefront embeds in the widget.
func (p *PaymentController) Key(c *ctx.Context) {
	c.Success(map[string]string{"keyId": p.payments.KeyID()})
}
