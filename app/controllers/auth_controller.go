package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (a *AuthController) Register(c *ctx.Context) {
	var input services.RegisterInput
	if !c.BindJSON(&input) {
		return
	}

	result, err := a.auth.Register(input)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Account created", result)
}

func (a *AuthController) Login(c *ctx.Context) {
	var input services.LoginInput
	if !c.BindJSON(&input) {
		return
	}

	result, err := a.auth.Login(input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Login successful", result)
}

func (a *AuthController) Profile(c *ctx.Context) {
	user, err := a.auth.Profile(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(user)
}

func (a *AuthController) UpdateProfile(c *ctx.Context) {
	var input services.ProfileUpdateInput
	if !c.BindJSON(&input) {
		return
	}

	user, err := a.auth.UpdateProfile(currentUserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Profile updated", user)
}
