package account

import (
	"freight-marketplace/pkg/utils"
)

// registrationViolations runs the validate tags on the request and collects
// every broken rule so a single response can report all of them.
func registrationViolations(req *RegisterRequest) []string {
	return utils.ViolationMessages(utils.ValidateStruct(req))
}
