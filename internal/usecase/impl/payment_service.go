package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"barista/internal/domain/entity"
	domainerrors "barista/internal/domain/errors"
	"barista/internal/domain/repository"
	"barista/internal/usecase"
)

// cardNumberLength is the canonical digit count of a card number once
// display spaces are stripped.
const cardNumberLength = 16

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	cards    repository.CardRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(cards repository.CardRepository, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		cards:    cards,
		validate: validator.New(),
		logger:   logger,
	}
}

// SaveCard validates the input and overwrites the stored card record. The
// card number may carry display spaces; it must hold exactly 16 digits.
func (srv *paymentService) SaveCard(ctx context.Context, input usecase.SaveCardInput) (*entity.CardInformation, error) {
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	digits := strings.ReplaceAll(input.CardNumber, " ", "")
	if len(digits) != cardNumberLength || strings.ContainsFunc(digits, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("card number must be 16 digits")
	}

	card, err := srv.cards.Save(ctx, repository.CardInput{
		CardNumber:     input.CardNumber,
		CardHolderName: input.CardHolderName,
		ExpiryDate:     input.ExpiryDate,
		CVV:            input.CVV,
	})
	if err != nil {
		return nil, errors.Wrap(err, "save card record")
	}
	srv.logger.Debug("Card record saved", "updatedAt", card.UpdatedAt)

	return card, nil
}

// Card returns the stored card, or nil when none is saved.
func (srv *paymentService) Card(ctx context.Context) (*entity.CardInformation, error) {
	card, err := srv.cards.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load card record")
	}

	return card, nil
}
