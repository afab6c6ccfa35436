package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const txnAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandDigits returns n uniformly random decimal digits.
func RandDigits(n int) (string, error) {
	return randFrom("0123456789", n)
}

// ResetCode returns a 6-digit code that never starts with 0.
func ResetCode() (string, error) {
	first, err := randFrom("123456789", 1)
	if err != nil {
		return "", err
	}
	rest, err := RandDigits(5)
	if err != nil {
		return "", err
	}
	return first + rest, nil
}

// NewTransactionID builds ids like TXN1718000000000AB3XZ: the unix millis plus five random characters.
func NewTransactionID() string {
	suffix, err := randFrom(txnAlphabet, 5)
	if err != nil {
		suffix = strconv.FormatInt(time.Now().UnixNano()%60466176, 36)
		suffix = strings.ToUpper(suffix)
	}
	return "TXN" + strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}

func randFrom(alphabet string, n int) (string, error) {
	var b strings.Builder
	limit := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[x.Int64()])
	}
	return b.String(), nil
}
