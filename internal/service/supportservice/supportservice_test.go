package supportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/pkg/mailer"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)

	service := New(userRepo, notifier)
	service.now = func() time.Time { return time.Date(2024, 6, 14, 21, 5, 0, 0, time.UTC) }
	return service, userRepo, notifier
}

func TestContact(t *testing.T) {
	service, _, notifier := NewMock(t)
	ctx := context.Background()

	notifier.EXPECT().Notify(ctx, "v@x.io", "We received your message: Volunteering", mailer.TemplateContactConfirmation,
		map[string]any{"Name": "Vik", "Subject": "Volunteering"})

	service.Contact(ctx, ContactInput{Name: "Vik", Email: "v@x.io", Subject: "Volunteering", Message: "Can I help?"})
}

func TestConfirmDonation(t *testing.T) {
	service, userRepo, notifier := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		input           DonationReceipt
		prepareMock     func()
		expectedReceipt *DonationReceipt
		expectedError   error
	}{
		{
			name:  "All fields given",
			input: DonationReceipt{Amount: "250", UTR: "UTR9", Name: "Vik", Email: "v@x.io"},
			prepareMock: func() {
				notifier.EXPECT().Notify(ctx, "v@x.io", subjectDonationReceipt, mailer.TemplateDonationReceipt, map[string]any{
					"Name": "Vik", "Amount": "250", "TransID": "UTR9", "Date": "14 Jun, 2024 09:05 PM",
				})
			},
			expectedReceipt: &DonationReceipt{Amount: "250", UTR: "UTR9", Name: "Vik", Email: "v@x.io"},
		},
		{
			name:  "Defaults from account",
			input: DonationReceipt{},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Username: "alice", Email: "a@x.io"}, nil)
				notifier.EXPECT().Notify(ctx, "a@x.io", subjectDonationReceipt, mailer.TemplateDonationReceipt, gomock.Any())
			},
			expectedReceipt: &DonationReceipt{Amount: "0", UTR: "N/A", Name: "alice", Email: "a@x.io"},
		},
		{
			name:  "Full name preferred over username",
			input: DonationReceipt{Amount: "10", Email: "v@x.io"},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Username: "alice", FullName: "Alice A", Email: "a@x.io"}, nil)
				notifier.EXPECT().Notify(ctx, "v@x.io", subjectDonationReceipt, mailer.TemplateDonationReceipt, gomock.Any())
			},
			expectedReceipt: &DonationReceipt{Amount: "10", UTR: "N/A", Name: "Alice A", Email: "v@x.io"},
		},
		{
			name:  "Account lookup fails",
			input: DonationReceipt{Amount: "10"},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			receipt, err := service.ConfirmDonation(ctx, 1, tt.input)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, receipt)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReceipt, receipt)
		})
	}
}
