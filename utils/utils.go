package utils

import (
	"math/rand"
	"time"
)

const referralCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode generates a random 8-character referral code. The
// uniqueIndex on users.referral_code catches the rare collision; callers
// retry on a duplicate-key error.
func GenerateReferralCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, 8)
	for i := range code {
		code[i] = referralCharset[rng.Intn(len(referralCharset))]
	}
	return string(code)
}
