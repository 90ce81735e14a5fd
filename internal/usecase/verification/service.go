package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freight-marketplace/internal/config"
	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/infrastructure/tokenstore"
	"freight-marketplace/internal/logger"
	appErrors "freight-marketplace/pkg/errors"
	"freight-marketplace/pkg/utils"
)

// Service runs the phone OTP and email verification flows. Pending state
// lives in the token store under keys derived from the identity being
// verified, so a second request while one is in flight is detected instead
// of minting a parallel code.
type Service struct {
	directory     *domainAccount.Directory
	store         TokenStore
	sms           SMSSender
	mailer        Mailer
	jwtSecret     string
	frontendURL   string
	otpTTL        time.Duration
	emailTokenTTL time.Duration
}

func NewService(directory *domainAccount.Directory, store TokenStore, sms SMSSender, mailer Mailer, cfg *config.Config) *Service {
	return &Service{
		directory:     directory,
		store:         store,
		sms:           sms,
		mailer:        mailer,
		jwtSecret:     cfg.JWT.Secret,
		frontendURL:   cfg.Server.FrontendURL,
		otpTTL:        time.Duration(cfg.Verification.OTPTTLSeconds) * time.Second,
		emailTokenTTL: time.Duration(cfg.Verification.EmailTokenTTLSeconds) * time.Second,
	}
}

func otpKey(mobileNumber string) string {
	return mobileNumber + "_phoneOtp"
}

func emailTokenKey(role domainAccount.Role, email, gstNumber string) string {
	return fmt.Sprintf("%s_%s_%s", role, email, gstNumber)
}

func (s *Service) SendPhoneOTP(ctx context.Context, mobileNumber string) error {
	mobileNumber = utils.SanitizePhone(mobileNumber)
	if !utils.MobilePattern.MatchString(mobileNumber) {
		return appErrors.NewValidationError("mobileNumber must be a 10 digit mobile number")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	// SetNX makes the pending guard atomic: concurrent sends for the same
	// number resolve to one stored code.
	key := otpKey(mobileNumber)
	claimed, err := s.store.SetNX(ctx, key, code, s.otpTTL)
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if !claimed {
		return appErrors.ErrOTPPending
	}

	if err := s.sms.SendOTP(ctx, mobileNumber, code); err != nil {
		// Release the pending slot so the caller can retry immediately.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to release OTP slot after delivery failure",
				zap.String("event", "otp_cleanup_failed"),
				zap.Error(delErr))
		}
		return err
	}

	logger.Info("phone OTP sent", zap.String("event", "otp_sent"))

	return nil
}

func (s *Service) VerifyPhoneOTP(ctx context.Context, mobileNumber, otp string) error {
	mobileNumber = utils.SanitizePhone(mobileNumber)
	if mobileNumber == "" || otp == "" {
		return appErrors.NewValidationError("mobileNumber and otp are required")
	}

	key := otpKey(mobileNumber)
	stored, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return appErrors.ErrOTPExpired
		}
		return fmt.Errorf("failed to load OTP: %w", err)
	}

	if stored != otp {
		return appErrors.ErrOTPInvalid
	}

	if err := s.store.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete consumed OTP",
			zap.String("event", "otp_cleanup_failed"),
			zap.Error(err))
	}

	logger.Info("phone OTP verified", zap.String("event", "otp_verified"))

	return nil
}

func (s *Service) SendEmailVerification(ctx context.Context, role domainAccount.Role, req *SendEmailRequest) (*EmailVerificationResult, error) {
	email := utils.SanitizeEmail(req.Email)
	gstNumber := utils.SanitizeString(req.GSTNumber)
	if email == "" || gstNumber == "" {
		return nil, appErrors.NewValidationError("email and gstNumber are required")
	}

	repo, err := s.directory.ForRole(role)
	if err != nil {
		return nil, err
	}

	credential, err := repo.FindCredential(ctx, email, gstNumber)
	if err != nil {
		return nil, err
	}
	if credential.EmailVerified {
		return &EmailVerificationResult{Status: EmailStatusAlreadyVerified}, nil
	}

	token, err := utils.GenerateEmailVerificationToken(email, gstNumber, role.String(), s.jwtSecret, s.emailTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign verification token: %w", err)
	}

	key := emailTokenKey(role, email, gstNumber)
	claimed, err := s.store.SetNX(ctx, key, token, s.emailTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to store verification token: %w", err)
	}
	if !claimed {
		return &EmailVerificationResult{Status: EmailStatusTokenPending}, nil
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(`<p>Hello %s,</p><p>Please verify your email address by clicking the link below:</p><p><a href="%s">Verify Email</a></p><p>This link expires in %d minutes.</p>`,
		credential.CompanyName, link, int(s.emailTokenTTL.Minutes()))
	if err := s.mailer.Send(email, "Verify your email address", body); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to release verification token after delivery failure",
				zap.String("event", "email_token_cleanup_failed"),
				zap.Error(delErr))
		}
		return nil, appErrors.NewAppError("EMAIL_DELIVERY", "failed to send verification email", appErrors.ErrDeliveryFailed)
	}

	logger.Info("verification email sent",
		zap.String("event", "verification_email_sent"),
		zap.String("userType", role.String()),
		zap.Uint("id", credential.ID))

	return &EmailVerificationResult{Status: EmailStatusSent}, nil
}

func (s *Service) VerifyEmailToken(ctx context.Context, token string) error {
	if token == "" {
		return appErrors.NewValidationError("token is required")
	}

	claims, err := utils.ParseEmailVerificationToken(token, s.jwtSecret)
	if err != nil {
		return appErrors.ErrInvalidToken
	}

	role, err := domainAccount.ParseRole(claims.UserType)
	if err != nil {
		return appErrors.ErrInvalidToken
	}

	repo, err := s.directory.ForRole(role)
	if err != nil {
		return err
	}

	credential, err := repo.FindCredential(ctx, claims.Email, claims.GSTNumber)
	if err != nil {
		return err
	}
	if credential.EmailVerified {
		return nil
	}

	key := emailTokenKey(role, claims.Email, claims.GSTNumber)
	stored, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return appErrors.ErrInvalidToken
		}
		return fmt.Errorf("failed to load verification token: %w", err)
	}
	if stored != token {
		return appErrors.ErrInvalidToken
	}

	if err := repo.SetEmailVerified(ctx, credential.ID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete consumed verification token",
			zap.String("event", "email_token_cleanup_failed"),
			zap.Error(err))
	}

	logger.Info("email verified",
		zap.String("event", "email_verified"),
		zap.String("userType", role.String()),
		zap.Uint("id", credential.ID))

	return nil
}

func (s *Service) CheckStatus(ctx context.Context, role domainAccount.Role, req *StatusRequest) (*StatusResult, error) {
	email := utils.SanitizeEmail(req.Email)
	gstNumber := utils.SanitizeString(req.GSTNumber)
	if email == "" || gstNumber == "" {
		return nil, appErrors.NewValidationError("email and gstNumber are required")
	}

	repo, err := s.directory.ForRole(role)
	if err != nil {
		return nil, err
	}

	credential, err := repo.FindCredential(ctx, email, gstNumber)
	if err != nil {
		if errors.Is(err, domainAccount.ErrNotFound) {
			return &StatusResult{Status: StatusUserNotFound}, nil
		}
		return nil, err
	}
	if credential.EmailVerified {
		return &StatusResult{Status: StatusVerified}, nil
	}

	if _, err := s.store.Get(ctx, emailTokenKey(role, email, gstNumber)); err == nil {
		return &StatusResult{Status: StatusTokenSentNotVerified}, nil
	} else if !errors.Is(err, tokenstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending verification: %w", err)
	}

	return &StatusResult{Status: StatusNotVerifiedNoToken}, nil
}
