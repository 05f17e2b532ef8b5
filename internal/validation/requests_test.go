package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReviewText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid text", text: "Great service!", wantErr: false},
		{name: "empty text", text: "", wantErr: true},
		{name: "whitespace only", text: "   \t\n  ", wantErr: true},
		{name: "single character", text: "a", wantErr: false},
		{name: "max length", text: strings.Repeat("a", MaxReviewTextLen), wantErr: false},
		{name: "too long", text: strings.Repeat("a", MaxReviewTextLen+1), wantErr: true},
		{name: "unicode text", text: "Отличный сервис, рекомендую!", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewText(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "minimum", rating: 1, wantErr: false},
		{name: "maximum", rating: 5, wantErr: false},
		{name: "middle", rating: 3, wantErr: false},
		{name: "zero", rating: 0, wantErr: true},
		{name: "negative", rating: -1, wantErr: true},
		{name: "too high", rating: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRating(tt.rating)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name     string
		personal string
		contact  string
		message  string
		wantErr  bool
	}{
		{name: "valid", personal: "Anna", contact: "anna@example.com", message: "Hello", wantErr: false},
		{name: "empty name", personal: "", contact: "anna@example.com", message: "Hello", wantErr: true},
		{name: "empty contact", personal: "Anna", contact: "", message: "Hello", wantErr: true},
		{name: "empty message", personal: "Anna", contact: "anna@example.com", message: "  ", wantErr: true},
		{name: "name too long", personal: strings.Repeat("a", MaxNameLen+1), contact: "c", message: "m", wantErr: true},
		{name: "message too long", personal: "Anna", contact: "c", message: strings.Repeat("a", MaxMessageLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContact(tt.personal, tt.contact, tt.message)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name     string
		personal string
		phone    string
		date     string
		wantErr  bool
	}{
		{name: "valid", personal: "Ivan", phone: "+79990001122", date: "2026-09-01", wantErr: false},
		{name: "empty name", personal: "", phone: "+79990001122", date: "2026-09-01", wantErr: true},
		{name: "empty phone", personal: "Ivan", phone: " ", date: "2026-09-01", wantErr: true},
		{name: "empty date", personal: "Ivan", phone: "+79990001122", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBooking(tt.personal, tt.phone, tt.date)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
