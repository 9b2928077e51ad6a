package service

import "time"

type (
	BasketService   = basketService
	CheckoutService = checkoutService
)

func (s *basketService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *checkoutService) SetClock(now func() time.Time) {
	s.now = now
}
