package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (o *OrderController) Place(c *ctx.Context) {
	var input services.PlaceOrderInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := o.orders.Place(
		c.Request.Context(),
		currentUserID(c),
		input,
		c.Request.Header.Get("Idempotency-Key"),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Order placed", order)
}

func (o *OrderController) PlaceRepaint(c *ctx.Context) {
	var input services.RepaintInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := o.orders.PlaceRepaint(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Repaint request placed", order)
}

func (o *OrderController) ListMine(c *ctx.Context) {
	orders, err := o.orders.ListMine(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(orders)
}

func (o *OrderController) GetMine(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := o.orders.GetMine(id, currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(order)
}

func (o *OrderController) DeleteMine(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := o.orders.DeleteMine(id, currentUserID(c)); err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Order deleted", nil)
}

func (o *OrderController) AdminGet(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := o.orders.AdminGet(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(order)
}

// AdminUpdate applies a partial status change to any order.
func (o *OrderController) AdminUpdate(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.OrderUpdateInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := o.orders.AdminUpdate(id, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Order updated", order)
}

func (o *OrderController) AdminList(c *ctx.Context) {
	orders, p, err := o.orders.AdminList(
		c.Query("status"),
		c.Query("paymentStatus"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 20),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Paginated(orders, p)
}
