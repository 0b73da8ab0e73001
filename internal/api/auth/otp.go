package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const otpTTL = 5 * time.Minute

func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing is unrecoverable for auth purposes
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func otpExpiry() time.Time {
	return time.Now().UTC().Add(otpTTL)
}
