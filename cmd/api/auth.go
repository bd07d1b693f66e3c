package main

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type CreateTokenPayload struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// TokenResponse represents the structure of the token in the response. made for swagger doc success output
type TokenResponse struct {
	Token string `json:"token"`
}

// createTokenHandler godoc
//
//	@Summary		Get an operator token
//	@Description	Exchanges operator credentials for a bearer token used on the /admin routes.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateTokenPayload	true	"Operator credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	operator := app.config.auth.operator
	if payload.Username != operator.user {
		app.unauthorizedErrorResponse(w, r, errUnknownOperator)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.passwordHash), []byte(payload.Password)); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	token, err := app.authenticator.GenerateToken(operator.user, app.config.auth.token.exp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, TokenResponse{Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}
