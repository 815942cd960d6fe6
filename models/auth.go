package models

// SendOTPRequest starts a phone login.
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=10"`
}

// VerifyOTPRequest completes a phone login.
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=10"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// AuthSessionResponse is returned after a successful OTP verification.
type AuthSessionResponse struct {
	Token       string   `json:"token"`
	Customer    Customer `json:"customer"`
	NewCustomer bool     `json:"new_customer"` // first login created the account
}
