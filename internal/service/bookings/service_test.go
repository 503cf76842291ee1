package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

type fakeClient struct {
	bookings  []bookingapi.Booking
	err       error
	cancelled []string
}

func (c *fakeClient) GetMyBookings(_ context.Context, _ string) ([]bookingapi.Booking, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.bookings, nil
}

func (c *fakeClient) CancelBooking(_ context.Context, _ string, bookingID string) error {
	if c.err != nil {
		return c.err
	}
	c.cancelled = append(c.cancelled, bookingID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetMyBookings(t *testing.T) {
	client := &fakeClient{bookings: []bookingapi.Booking{
		{ID: "booking-1", CourtID: "court-1", TotalPrice: 500, Status: "CONFIRMED"},
		{ID: "booking-2", CourtID: "court-2", TotalPrice: 700, Status: "CANCELLED"},
	}}
	svc := NewService(client, nopLogger{})

	resp, err := svc.GetMyBookings(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
	assert.Equal(t, 700.0, resp.Bookings[1].TotalPrice)
}

func TestService_CancelBooking(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, nopLogger{})

	require.NoError(t, svc.CancelBooking(context.Background(), "token", "booking-1"))
	assert.Equal(t, []string{"booking-1"}, client.cancelled)
}

func TestService_UpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		upstream error
		want     error
	}{
		{"unauthorized", bookingapi.ErrUnauthorized, ErrUnauthorized},
		{"not found", bookingapi.ErrBookingNotFound, ErrBookingNotFound},
		{"unavailable", bookingapi.ErrUnavailable, ErrUpstreamUnavailable},
		{"invalid response", bookingapi.ErrInvalidResponse, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeClient{err: tt.upstream}, nopLogger{})

			_, err := svc.GetMyBookings(context.Background(), "token")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			err = svc.CancelBooking(context.Background(), "token", "booking-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
