package booking

import (
	"fmt"
	"math"
	"strings"

	"mentorhub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// createPaymentIntent opens a Stripe payment intent for a priced session.
// The intent is created at booking time; capture happens client-side with
// the returned intent ID.
func (s *DefaultService) createPaymentIntent(booking *models.Booking) (string, error) {
	currency := booking.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.Price * 100))),
		Currency: stripe.String(strings.ToLower(currency)),
		Metadata: map[string]string{
			"mentorId":    booking.MentorID,
			"menteeId":    booking.MenteeID,
			"eventTypeId": booking.EventTypeID,
			"date":        booking.Date,
			"startTime":   booking.StartTime,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	return intent.ID, nil
}
