package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-marketplace/internal/config"
	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/infrastructure/tokenstore"
	appErrors "freight-marketplace/pkg/errors"
)

type fakeStore struct {
	entries map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]string{}}
}

func (f *fakeStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeStore) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if _, ok := f.entries[key]; ok {
		return false, nil
	}
	f.entries[key] = value
	return true, nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", tokenstore.ErrNotFound
	}
	return value, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

type fakeSMS struct {
	sent []string
	err  error
}

func (f *fakeSMS) SendOTP(_ context.Context, mobileNumber, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mobileNumber+":"+code)
	return nil
}

type fakeMailer struct {
	to      []string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.subject = subject
	f.body = htmlBody
	return nil
}

type stubShipperRepo struct {
	shipper *domainAccount.Shipper
}

func (s *stubShipperRepo) Create(context.Context, *domainAccount.Shipper) error { return nil }

func (s *stubShipperRepo) GetByID(context.Context, uint) (*domainAccount.Shipper, error) {
	return s.shipper, nil
}

func (s *stubShipperRepo) GetByEmail(context.Context, string) (*domainAccount.Shipper, error) {
	return s.shipper, nil
}

func (s *stubShipperRepo) GetByMobile(context.Context, string) (*domainAccount.Shipper, error) {
	return s.shipper, nil
}

func (s *stubShipperRepo) GetByGSTNumber(context.Context, string) (*domainAccount.Shipper, error) {
	return s.shipper, nil
}

func (s *stubShipperRepo) GetByEmailAndGST(_ context.Context, email, gstNumber string) (*domainAccount.Shipper, error) {
	if s.shipper == nil || s.shipper.Email != email || s.shipper.GSTNumber != gstNumber {
		return nil, domainAccount.ErrNotFound
	}
	return s.shipper, nil
}

func (s *stubShipperRepo) SetEmailVerified(_ context.Context, id uint) error {
	if s.shipper == nil || s.shipper.ID != id {
		return domainAccount.ErrNotFound
	}
	s.shipper.EmailVerified = true
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.Server.FrontendURL = "https://app.example"
	cfg.Verification.OTPTTLSeconds = 120
	cfg.Verification.EmailTokenTTLSeconds = 3600
	return cfg
}

func newVerificationService(shipper *domainAccount.Shipper) (*Service, *fakeStore, *fakeSMS, *fakeMailer) {
	store := newFakeStore()
	sms := &fakeSMS{}
	mailer := &fakeMailer{}
	directory := &domainAccount.Directory{Shippers: &stubShipperRepo{shipper: shipper}}
	svc := NewService(directory, store, sms, mailer, testConfig())
	return svc, store, sms, mailer
}

func TestSendPhoneOTP(t *testing.T) {
	svc, store, sms, _ := newVerificationService(nil)

	require.NoError(t, svc.SendPhoneOTP(context.Background(), "9876543210"))

	code, ok := store.entries["9876543210_phoneOtp"]
	require.True(t, ok)
	assert.Len(t, code, 6)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "9876543210:"+code, sms.sent[0])
}

func TestSendPhoneOTPRejectsBadNumber(t *testing.T) {
	svc, _, _, _ := newVerificationService(nil)

	err := svc.SendPhoneOTP(context.Background(), "12345")
	var validationErr *appErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSendPhoneOTPPending(t *testing.T) {
	svc, store, _, _ := newVerificationService(nil)
	store.entries["9876543210_phoneOtp"] = "123456"

	err := svc.SendPhoneOTP(context.Background(), "9876543210")
	assert.ErrorIs(t, err, appErrors.ErrOTPPending)
}

func TestSendPhoneOTPPendingKeepsStoredCode(t *testing.T) {
	svc, store, sms, _ := newVerificationService(nil)
	store.entries["9876543210_phoneOtp"] = "111111"

	err := svc.SendPhoneOTP(context.Background(), "9876543210")
	assert.ErrorIs(t, err, appErrors.ErrOTPPending)
	assert.Equal(t, "111111", store.entries["9876543210_phoneOtp"])
	assert.Empty(t, sms.sent)
}

func TestSendPhoneOTPDeliveryFailureReleasesSlot(t *testing.T) {
	svc, store, sms, _ := newVerificationService(nil)
	sms.err = errors.New("provider down")

	err := svc.SendPhoneOTP(context.Background(), "9876543210")
	require.Error(t, err)
	_, pending := store.entries["9876543210_phoneOtp"]
	assert.False(t, pending)
}

func TestVerifyPhoneOTP(t *testing.T) {
	svc, store, _, _ := newVerificationService(nil)
	store.entries["9876543210_phoneOtp"] = "654321"

	require.NoError(t, svc.VerifyPhoneOTP(context.Background(), "9876543210", "654321"))

	_, remaining := store.entries["9876543210_phoneOtp"]
	assert.False(t, remaining, "consumed OTP must be deleted")
}

func TestVerifyPhoneOTPExpired(t *testing.T) {
	svc, _, _, _ := newVerificationService(nil)

	err := svc.VerifyPhoneOTP(context.Background(), "9876543210", "654321")
	assert.ErrorIs(t, err, appErrors.ErrOTPExpired)
}

func TestVerifyPhoneOTPMismatch(t *testing.T) {
	svc, store, _, _ := newVerificationService(nil)
	store.entries["9876543210_phoneOtp"] = "654321"

	err := svc.VerifyPhoneOTP(context.Background(), "9876543210", "111111")
	assert.ErrorIs(t, err, appErrors.ErrOTPInvalid)

	_, remaining := store.entries["9876543210_phoneOtp"]
	assert.True(t, remaining, "failed attempt must not consume the OTP")
}

func testShipper() *domainAccount.Shipper {
	return &domainAccount.Shipper{
		ID:          7,
		Email:       "ravi@acme.example",
		GSTNumber:   "27AAPFU0939F1ZV",
		CompanyName: "Acme Freight",
	}
}

func TestSendEmailVerification(t *testing.T) {
	shipper := testShipper()
	svc, store, _, mailer := newVerificationService(shipper)

	result, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, EmailStatusSent, result.Status)

	key := "shipper_ravi@acme.example_27AAPFU0939F1ZV"
	token, ok := store.entries[key]
	require.True(t, ok)
	require.Len(t, mailer.to, 1)
	assert.Equal(t, shipper.Email, mailer.to[0])
	assert.Contains(t, mailer.body, "verify-email?token="+token)
}

func TestSendEmailVerificationUnknownAccount(t *testing.T) {
	svc, _, _, _ := newVerificationService(testShipper())

	_, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     "nobody@acme.example",
		GSTNumber: "27AAPFU0939F1ZV",
	})
	assert.ErrorIs(t, err, domainAccount.ErrNotFound)
}

func TestSendEmailVerificationAlreadyVerified(t *testing.T) {
	shipper := testShipper()
	shipper.EmailVerified = true
	svc, _, _, mailer := newVerificationService(shipper)

	result, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, EmailStatusAlreadyVerified, result.Status)
	assert.Empty(t, mailer.to)
}

func TestSendEmailVerificationTokenPending(t *testing.T) {
	shipper := testShipper()
	svc, store, _, mailer := newVerificationService(shipper)
	store.entries["shipper_ravi@acme.example_27AAPFU0939F1ZV"] = "existing-token"

	result, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, EmailStatusTokenPending, result.Status)
	assert.Empty(t, mailer.to)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	shipper := testShipper()
	svc, store, _, _ := newVerificationService(shipper)

	_, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)

	token := store.entries["shipper_ravi@acme.example_27AAPFU0939F1ZV"]
	require.NoError(t, svc.VerifyEmailToken(context.Background(), token))

	assert.True(t, shipper.EmailVerified)
	_, remaining := store.entries["shipper_ravi@acme.example_27AAPFU0939F1ZV"]
	assert.False(t, remaining, "consumed token must be deleted")
}

func TestVerifyEmailTokenGarbage(t *testing.T) {
	svc, _, _, _ := newVerificationService(testShipper())

	err := svc.VerifyEmailToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestVerifyEmailTokenNotStored(t *testing.T) {
	shipper := testShipper()
	svc, store, _, _ := newVerificationService(shipper)

	_, err := svc.SendEmailVerification(context.Background(), domainAccount.RoleShipper, &SendEmailRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)

	token := store.entries["shipper_ravi@acme.example_27AAPFU0939F1ZV"]
	delete(store.entries, "shipper_ravi@acme.example_27AAPFU0939F1ZV")

	err = svc.VerifyEmailToken(context.Background(), token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
	assert.False(t, shipper.EmailVerified)
}

func TestCheckStatus(t *testing.T) {
	shipper := testShipper()
	svc, store, _, _ := newVerificationService(shipper)
	ctx := context.Background()

	result, err := svc.CheckStatus(ctx, domainAccount.RoleShipper, &StatusRequest{
		Email:     "nobody@acme.example",
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusUserNotFound, result.Status)

	result, err = svc.CheckStatus(ctx, domainAccount.RoleShipper, &StatusRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNotVerifiedNoToken, result.Status)

	store.entries["shipper_ravi@acme.example_27AAPFU0939F1ZV"] = "pending"
	result, err = svc.CheckStatus(ctx, domainAccount.RoleShipper, &StatusRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusTokenSentNotVerified, result.Status)

	shipper.EmailVerified = true
	result, err = svc.CheckStatus(ctx, domainAccount.RoleShipper, &StatusRequest{
		Email:     shipper.Email,
		GSTNumber: shipper.GSTNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusVerified, result.Status)
}
