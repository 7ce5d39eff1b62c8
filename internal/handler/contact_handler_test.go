package handler

import (
	"context"
	"net/http"
	"testing"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContactHandler_ListLDAContacts(t *testing.T) {
	ldaID := primitive.NewObjectID()

	mockService := &mocks.MockContactService{
		ListByLDAFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID, page, limit int) (*models.ContactListResponse, error) {
			assert.Equal(t, ldaID, id)
			return &models.ContactListResponse{Items: []models.Contact{{ID: primitive.NewObjectID(), LDAIDs: []primitive.ObjectID{ldaID}}}}, nil
		},
	}
	handler := NewContactHandler(mockService)

	w := serve(t, ldaActor(ldaID), http.MethodGet, "/ldas/:ldaId/contacts", "/ldas/"+ldaID.Hex()+"/contacts?limit=10", nil, handler.ListLDAContacts)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["items"], 1)
}

func TestContactHandler_CreateContact(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		serviceErr     error
		expectedStatus int
		wantLDAs       []primitive.ObjectID
	}{
		{
			name:           "linked to two ldas",
			body:           map[string]interface{}{"name": "Nomsa Dlamini", "ldaIds": []string{first.Hex(), second.Hex(), first.Hex()}},
			expectedStatus: http.StatusCreated,
			wantLDAs:       []primitive.ObjectID{first, second},
		},
		{
			name:           "no ldas",
			body:           map[string]interface{}{"name": "Nomsa Dlamini"},
			serviceErr:     apperrors.ErrContactLDARequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "one lda out of reach",
			body:           map[string]interface{}{"name": "Nomsa Dlamini", "ldaIds": []string{first.Hex(), second.Hex()}},
			serviceErr:     apperrors.ErrForbidden,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "bad email",
			body:           map[string]interface{}{"name": "Nomsa Dlamini", "email": "nope", "ldaIds": []string{first.Hex()}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockContactService{
				CreateFunc: func(ctx context.Context, a *authz.Actor, req *models.CreateContactRequest) (*models.Contact, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					assert.Equal(t, tt.wantLDAs, req.LDAIDs.IDs())
					return &models.Contact{ID: primitive.NewObjectID(), Name: req.Name, LDAIDs: req.LDAIDs.IDs()}, nil
				},
			}
			handler := NewContactHandler(mockService)

			w := serve(t, ldaActor(first), http.MethodPost, "/contacts", "/contacts", tt.body, handler.CreateContact)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestContactHandler_GetUpdateDelete(t *testing.T) {
	contactID := primitive.NewObjectID()

	tests := []struct {
		name           string
		serviceErr     error
		expectedGet    int
		expectedUpdate int
		expectedDelete int
	}{
		{"allowed", nil, http.StatusOK, http.StatusOK, http.StatusNoContent},
		{"no shared lda", apperrors.ErrForbidden, http.StatusForbidden, http.StatusForbidden, http.StatusForbidden},
		{"missing", apperrors.ErrContactNotFound, http.StatusNotFound, http.StatusNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockContactService{
				GetFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID) (*models.Contact, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &models.Contact{ID: id}, nil
				},
				UpdateFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID, req *models.UpdateContactRequest) (*models.Contact, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &models.Contact{ID: id, Phone: *req.Phone}, nil
				},
				DeleteFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID) error {
					return tt.serviceErr
				},
			}
			handler := NewContactHandler(mockService)
			target := "/contacts/" + contactID.Hex()

			w := serve(t, ldaActor(), http.MethodGet, "/contacts/:id", target, nil, handler.GetContact)
			assert.Equal(t, tt.expectedGet, w.Code)

			w = serve(t, ldaActor(), http.MethodPut, "/contacts/:id", target, map[string]string{"phone": "+27 82 111 2222"}, handler.UpdateContact)
			assert.Equal(t, tt.expectedUpdate, w.Code)

			w = serve(t, ldaActor(), http.MethodDelete, "/contacts/:id", target, nil, handler.DeleteContact)
			assert.Equal(t, tt.expectedDelete, w.Code)
		})
	}
}
