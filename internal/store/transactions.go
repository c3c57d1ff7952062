package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("transactions")
}

// InsertBatch writes all transactions in one bulk operation. IDs are
// assigned here for records that arrive without one. Any job failure
// fails the whole call; the write layer is all-or-nothing from the
// caller's point of view.
func (s *transactionStore) InsertBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(txs))
	now := time.Now()

	for _, t := range txs {
		if t.TransactionID == "" {
			t.TransactionID = uuid.NewString()
		}
		t.UpdatedAt = now
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}

		doc := s.collection().Doc(t.TransactionID)
		job, err := bw.Create(doc, t)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("create", "failed to queue transaction write", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("create", "failed to write transactions", err)
		}
	}

	return nil
}
