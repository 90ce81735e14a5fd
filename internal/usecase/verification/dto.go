package verification

type SendOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
	OTP          string `json:"otp"`
}

type SendEmailRequest struct {
	Email     string `json:"email"`
	GSTNumber string `json:"gstNumber"`
	UserType  string `json:"userType"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type StatusRequest struct {
	Email     string `json:"email"`
	GSTNumber string `json:"gstNumber"`
	UserType  string `json:"userType"`
}

// Email verification outcomes.
const (
	EmailStatusSent            = "verification_email_sent"
	EmailStatusAlreadyVerified = "already_verified"
	EmailStatusTokenPending    = "token_pending"

	StatusUserNotFound         = "user_not_found"
	StatusVerified             = "verified"
	StatusTokenSentNotVerified = "token_sent_not_verified"
	StatusNotVerifiedNoToken   = "not_verified_no_token"
)

type EmailVerificationResult struct {
	Status string `json:"status"`
}

type StatusResult struct {
	Status string `json:"status"`
}
