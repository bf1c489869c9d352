package services

import (
	"context"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/amzproperties/amz-backend/pkg/mailgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactService() (*ContactService, *memory.ContactRepository) {
	repo := memory.NewContactRepository()
	return NewContactService(repo, &mailgateway.MockGateway{AdminEmail: "admin@amzproperties.com"}), repo
}

func TestSubmitContactDefaults(t *testing.T) {
	svc, _ := newContactService()

	contact, err := svc.SubmitContact(context.Background(), models.ContactRequest{
		Name:    "Sarah Mitchell",
		Email:   "sarah@example.com",
		Message: "Interested in the Marina penthouse.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ContactStatusNew, contact.Status)
	assert.Equal(t, "General Inquiry", contact.Subject)
	assert.Equal(t, models.InquiryTypeGeneral, contact.InquiryType)
	assert.False(t, contact.ID.IsZero())
}

func TestSubmitContactInvalidEmailNotPersisted(t *testing.T) {
	svc, repo := newContactService()

	_, err := svc.SubmitContact(context.Background(), models.ContactRequest{
		Name:    "Sarah",
		Email:   "not-an-email",
		Message: "Hello",
	})
	assert.True(t, apperrors.IsValidation(err))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestSubmitContactInvalidInquiryType(t *testing.T) {
	svc, _ := newContactService()
	_, err := svc.SubmitContact(context.Background(), models.ContactRequest{
		Name:        "Sarah",
		Email:       "sarah@example.com",
		Message:     "Hello",
		InquiryType: "mortgage",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusWorkflow(t *testing.T) {
	svc, _ := newContactService()
	ctx := context.Background()

	contact, err := svc.SubmitContact(ctx, models.ContactRequest{
		Name:    "Omar",
		Email:   "omar@example.com",
		Message: "Call me back",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, contact.ID, models.ContactStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusContacted, updated.Status)

	_, err = svc.UpdateStatus(ctx, contact.ID, "archived")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateMessageMarksEdited(t *testing.T) {
	svc, _ := newContactService()
	ctx := context.Background()

	contact, err := svc.SubmitContact(ctx, models.ContactRequest{
		Name:    "Omar",
		Email:   "omar@example.com",
		Message: "Original",
	})
	require.NoError(t, err)
	assert.False(t, contact.IsEdited)

	updated, err := svc.UpdateMessage(ctx, contact.ID, "Edited message")
	require.NoError(t, err)
	assert.True(t, updated.IsEdited)
	assert.Equal(t, "Edited message", updated.Message)
}

func TestContactStats(t *testing.T) {
	svc, _ := newContactService()
	ctx := context.Background()

	for _, req := range []models.ContactRequest{
		{Name: "A", Email: "a@example.com", Message: "m", InquiryType: models.InquiryTypeProperty},
		{Name: "B", Email: "b@example.com", Message: "m"},
		{Name: "C", Email: "c@example.com", Message: "m"},
	} {
		_, err := svc.SubmitContact(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 3, stats.ByStatus[models.ContactStatusNew])
	assert.EqualValues(t, 1, stats.ByInquiryType[models.InquiryTypeProperty])
	assert.EqualValues(t, 2, stats.ByInquiryType[models.InquiryTypeGeneral])
	assert.Len(t, stats.Recent, 3)
}
