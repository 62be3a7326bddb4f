package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"barista/internal/domain/entity"
	"barista/internal/domain/repository"
)

// cardKey is the storage key of the payment card record.
const cardKey = "cardInformation.v1"

// cardRepository persists the singleton payment card record.
type cardRepository struct {
	kv     repository.KV
	logger *slog.Logger
	now    func() time.Time
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(kv repository.KV, logger *slog.Logger) repository.CardRepository {
	return &cardRepository{kv: kv, logger: logger, now: time.Now}
}

// Get returns the saved card, or nil when absent or corrupt.
func (r *cardRepository) Get(ctx context.Context) (*entity.CardInformation, error) {
	raw, err := r.kv.Get(ctx, cardKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load card record")
	}

	var card entity.CardInformation
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		r.logger.Warn("Discarding unparsable card record", "key", cardKey, "error", err)

		return nil, nil
	}

	return &card, nil
}

// Save stamps UpdatedAt, overwrites the whole record, and returns what was
// written. There is no field-level merge.
func (r *cardRepository) Save(ctx context.Context, input repository.CardInput) (*entity.CardInformation, error) {
	card := entity.CardInformation{
		CardNumber:     input.CardNumber,
		CardHolderName: input.CardHolderName,
		ExpiryDate:     input.ExpiryDate,
		CVV:            input.CVV,
		UpdatedAt:      r.now().UTC(),
	}

	payload, err := json.Marshal(card)
	if err != nil {
		return nil, errors.Wrap(err, "encode card record")
	}

	if err := r.kv.Set(ctx, cardKey, string(payload)); err != nil {
		return nil, errors.Wrap(err, "save card record")
	}

	return &card, nil
}
