package supportservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/pkg/mailer"
	"go.uber.org/zap"
)

//go:generate mockgen -source=supportservice.go -destination=mock_supportservice.go -package=supportservice

const receiptDateLayout = "02 Jan, 2006 03:04 PM"

const subjectDonationReceipt = "Donation Received - Verification Completed"

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, to, subject, template string, data any)
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type DonationReceipt struct {
	Amount string
	UTR    string
	Name   string
	Email  string
}

type Service struct {
	userRepo UserRepo
	notifier Notifier
	now      func() time.Time
}

func New(userRepo UserRepo, notifier Notifier) *Service {
	return &Service{
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Contact acknowledges a message from the contact form. The message body
// itself is only logged.
func (s *Service) Contact(ctx context.Context, in ContactInput) {
	zap.L().Info("contact message received",
		zap.String("email", in.Email),
		zap.String("subject", in.Subject),
		zap.Int("length", len(in.Message)),
	)
	s.notifier.Notify(ctx, in.Email, "We received your message: "+in.Subject, mailer.TemplateContactConfirmation, map[string]any{
		"Name":    in.Name,
		"Subject": in.Subject,
	})
}

// ConfirmDonation mails a receipt for a manual UPI donation made by the
// logged in user. Blank fields fall back to the account details.
func (s *Service) ConfirmDonation(ctx context.Context, userID int, in DonationReceipt) (*DonationReceipt, error) {
	receipt := in
	if receipt.Name == "" || receipt.Email == "" {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if receipt.Name == "" {
				receipt.Name = user.DisplayName()
			}
			if receipt.Email == "" {
				receipt.Email = user.Email
			}
		}
	}
	if receipt.Amount == "" {
		receipt.Amount = "0"
	}
	if receipt.UTR == "" {
		receipt.UTR = "N/A"
	}

	s.notifier.Notify(ctx, receipt.Email, subjectDonationReceipt, mailer.TemplateDonationReceipt, map[string]any{
		"Name":    receipt.Name,
		"Amount":  receipt.Amount,
		"TransID": receipt.UTR,
		"Date":    s.now().Format(receiptDateLayout),
	})
	zap.L().Info("donation receipt sent", zap.Int("user_id", userID), zap.String("utr", receipt.UTR))
	return &receipt, nil
}
