package model

// AccessToken : bearer-токен, выдаваемый при входе
// swagger:model
type AccessToken struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
}
