package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTPattern(t *testing.T) {
	assert.True(t, GSTPattern.MatchString("27AAPFU0939F1ZV"))
	assert.False(t, GSTPattern.MatchString("27aapfu0939f1zv"))
	assert.False(t, GSTPattern.MatchString("27AAPFU0939F1XV"))
	assert.False(t, GSTPattern.MatchString(""))
}

func TestVehicleNumberPattern(t *testing.T) {
	assert.True(t, VehicleNumberPattern.MatchString("MH12AB1234"))
	assert.True(t, VehicleNumberPattern.MatchString("DL01C1"))
	assert.False(t, VehicleNumberPattern.MatchString("mh12ab1234"))
	assert.False(t, VehicleNumberPattern.MatchString("1234MH12"))
}

func TestMobileAndAadhaarPatterns(t *testing.T) {
	assert.True(t, MobilePattern.MatchString("9876543210"))
	assert.False(t, MobilePattern.MatchString("98765"))
	assert.True(t, AadhaarPattern.MatchString("123412341234"))
	assert.False(t, AadhaarPattern.MatchString("1234"))
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.Regexp(t, `^[1-9]\d{5}$`, otp)
}

func TestValidateStructCustomTags(t *testing.T) {
	type payload struct {
		GST     string `validate:"gst"`
		Mobile  string `validate:"indian_mobile"`
		Aadhaar string `validate:"aadhaar"`
	}

	assert.NoError(t, ValidateStruct(payload{
		GST:     "27AAPFU0939F1ZV",
		Mobile:  "9876543210",
		Aadhaar: "123412341234",
	}))
	assert.Error(t, ValidateStruct(payload{
		GST:     "bad",
		Mobile:  "9876543210",
		Aadhaar: "123412341234",
	}))
}

func TestViolationMessagesUseJSONNames(t *testing.T) {
	type payload struct {
		OwnerName string `json:"ownerName" validate:"required"`
		GST       string `json:"gstNumber" validate:"required,gst"`
		Mobile    string `json:"phoneNumber" validate:"required,indian_mobile"`
		Plate     string `json:"vehicleNumber" validate:"vehicle_plate"`
	}

	messages := ViolationMessages(ValidateStruct(payload{
		GST:    "bad",
		Mobile: "98765",
		Plate:  "1234MH12",
	}))
	require.Len(t, messages, 4)
	assert.Contains(t, messages, "ownerName is required")
	assert.Contains(t, messages, "gstNumber is not a valid GST number")
	assert.Contains(t, messages, "phoneNumber must be a 10 digit mobile number")
	assert.Contains(t, messages, "vehicleNumber is not a valid registration plate")

	assert.Nil(t, ViolationMessages(nil))
}

func TestSanitizeHelpers(t *testing.T) {
	assert.Equal(t, "ravi@acme.example", SanitizeEmail("  RAVI@Acme.Example "))
	assert.Equal(t, "9876543210", SanitizePhone("<b>9876543210</b>"))
	assert.Equal(t, "hello", SanitizeString("  hello  "))
}
