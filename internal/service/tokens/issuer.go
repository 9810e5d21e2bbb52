package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrGenerate возвращается, если генератор не смог выдать случайное значение
var ErrGenerate = errors.New("tokens: failed to generate token")

// Pair токены бронирования: для клиента и для персонала
type Pair struct {
	BookingToken string
	AdminToken   string
}

// Issuer выпускает пару независимых случайных токенов (UUIDv4, 122 бита энтропии каждый)
type Issuer struct {
	generate func() (uuid.UUID, error)
}

// NewIssuer создает выпускающего токены на crypto/rand через uuid.NewRandom
func NewIssuer() *Issuer {
	return &Issuer{generate: uuid.NewRandom}
}

// Issue выпускает новую пару. Токены всегда различны.
func (i *Issuer) Issue() (Pair, error) {
	bookingToken, err := i.next()
	if err != nil {
		return Pair{}, err
	}

	adminToken, err := i.next()
	if err != nil {
		return Pair{}, err
	}
	if adminToken == bookingToken {
		if adminToken, err = i.next(); err != nil {
			return Pair{}, err
		}
		if adminToken == bookingToken {
			return Pair{}, fmt.Errorf("%w: generator returned duplicate values", ErrGenerate)
		}
	}

	return Pair{BookingToken: bookingToken, AdminToken: adminToken}, nil
}

func (i *Issuer) next() (string, error) {
	id, err := i.generate()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
