package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
)

type AddressController struct {
	addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

func (a *AddressController) List(c *ctx.Context) {
	addresses, err := a.addresses.List(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(addresses)
}

// AdminList pages through every user's address book entries.
func (a *AddressController) AdminList(c *ctx.Context) {
	addresses, p, err := a.addresses.AdminList(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		fail(c, err)
		return
	}

	c.Paginated(addresses, p)
}

func (a *AddressController) AdminGet(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := a.addresses.AdminGet(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(address)
}

func (a *AddressController) AdminUpdate(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.AddressInput
	if !c.BindJSON(&input) {
		return
	}

	address, err := a.addresses.AdminUpdate(id, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Address updated", address)
}

func (a *AddressController) AdminDelete(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.addresses.AdminDelete(id); err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Address deleted", nil)
}

func (a *AddressController) Default(c *ctx.Context) {
	address, err := a.addresses.Default(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(address)
}

func (a *AddressController) Get(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := a.addresses.Get(id, currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(address)
}

func (a *AddressController) Create(c *ctx.Context) {
	var input services.AddressInput
	if !c.BindJSON(&input) {
		return
	}

	address, err := a.addresses.Create(currentUserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Address saved", address)
}

func (a *AddressController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.AddressInput
	if !c.BindJSON(&input) {
		return
	}

	address, err := a.addresses.Update(id, currentUserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Address updated", address)
}

func (a *AddressController) SetDefault(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := a.addresses.SetDefault(id, currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Default address updated", address)
}

func (a *AddressController) Delete(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.addresses.Delete(id, currentUserID(c)); err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Address deleted", nil)
}
