package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/config"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// SettlementPolicy decides how long a payment sits in processing and whether
// it settles. Injected into the payment service so tests run deterministically
// without process-wide state.
type SettlementPolicy interface {
	Delay(method models.PaymentMethod) time.Duration
	Outcome(method models.PaymentMethod) bool
}

// RandomSettlement models a payment network: a uniform delay between min and
// max, and a per-method weighted success draw.
type RandomSettlement struct {
	upiSuccessRate  float64
	cardSuccessRate float64
	minDelay        time.Duration
	maxDelay        time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSettlement(upiSuccessRate, cardSuccessRate float64) *RandomSettlement {
	return &RandomSettlement{
		upiSuccessRate:  upiSuccessRate,
		cardSuccessRate: cardSuccessRate,
		minDelay:        5 * time.Second,
		maxDelay:        10 * time.Second,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *RandomSettlement) Delay(models.PaymentMethod) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minDelay + time.Duration(s.rng.Int63n(int64(s.maxDelay-s.minDelay)+1))
}

func (s *RandomSettlement) Outcome(method models.PaymentMethod) bool {
	rate := s.upiSuccessRate
	if method == models.MethodCard {
		rate = s.cardSuccessRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < rate
}

// FixedSettlement resolves every payment after a fixed delay with a forced
// outcome. Used in test mode and in unit tests.
type FixedSettlement struct {
	FixedDelay time.Duration
	Succeed    bool
}

func (s FixedSettlement) Delay(models.PaymentMethod) time.Duration { return s.FixedDelay }

func (s FixedSettlement) Outcome(models.PaymentMethod) bool { return s.Succeed }

// SettlementFromConfig picks the policy the configuration asks for.
func SettlementFromConfig(cfg *config.Config) SettlementPolicy {
	if cfg.TestMode {
		return FixedSettlement{
			FixedDelay: cfg.TestDelay,
			Succeed:    cfg.TestPaymentSuccess,
		}
	}
	return NewRandomSettlement(cfg.UPISuccessRate, cfg.CardSuccessRate)
}
