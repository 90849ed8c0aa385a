// Package identifier generates the prefixed ids used for orders and payments.
package identifier

import "math/rand"

const (
	// OrderPrefix tags order ids.
	OrderPrefix = "order_"
	// PaymentPrefix tags payment ids.
	PaymentPrefix = "pay_"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	length   = 16
)

// New returns a random id of the form "<prefix><16 alphanumeric chars>".
// Uniqueness is not guaranteed here; callers rely on the storage layer's
// primary key and retry on conflict.
func New(prefix string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return prefix + string(b)
}
