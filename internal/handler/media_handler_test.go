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

func TestMediaHandler_ListLDAMedia(t *testing.T) {
	ldaID := primitive.NewObjectID()

	mockService := &mocks.MockMediaService{
		ListByLDAFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID, page, limit int) (*models.MediaListResponse, error) {
			assert.Equal(t, ldaID, id)
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, limit)
			return &models.MediaListResponse{Items: []models.Media{{ID: primitive.NewObjectID(), LDAID: &ldaID}}}, nil
		},
	}
	handler := NewMediaHandler(mockService)

	w := serve(t, ldaActor(ldaID), http.MethodGet, "/ldas/:ldaId/media", "/ldas/"+ldaID.Hex()+"/media", nil, handler.ListLDAMedia)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, ldaActor(ldaID), http.MethodGet, "/ldas/:ldaId/media", "/ldas/bad/media", nil, handler.ListLDAMedia)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_CreateMedia(t *testing.T) {
	ldaID := primitive.NewObjectID()

	tests := []struct {
		name           string
		contentType    string
		expectedStatus int
	}{
		{"photo", "image/jpeg", http.StatusCreated},
		{"video", "video/mp4", http.StatusCreated},
		{"pdf is not media", "application/pdf", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockMediaService{
				CreateFunc: func(ctx context.Context, a *authz.Actor, req *models.CreateMediaRequest) (*models.CreateMediaResponse, error) {
					return &models.CreateMediaResponse{Media: models.Media{ID: primitive.NewObjectID()}, UploadURL: "https://s3.example.com/put"}, nil
				},
			}
			handler := NewMediaHandler(mockService)

			body := map[string]interface{}{
				"title": "Site visit", "ldaId": ldaID.Hex(), "uploadedBy": "LDA",
				"contentType": tt.contentType, "fileSize": 2048,
			}
			w := serve(t, ldaActor(ldaID), http.MethodPost, "/media", "/media", body, handler.CreateMedia)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMediaHandler_UpdateMedia(t *testing.T) {
	mediaID := primitive.NewObjectID()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"creator edits", nil, http.StatusOK},
		{"someone else's item", apperrors.ErrForbidden, http.StatusForbidden},
		{"gone", apperrors.ErrMediaNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockMediaService{
				UpdateFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID, req *models.UpdateMediaRequest) (*models.Media, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &models.Media{ID: id, Title: *req.Title}, nil
				},
			}
			handler := NewMediaHandler(mockService)

			w := serve(t, ldaActor(), http.MethodPut, "/media/:id", "/media/"+mediaID.Hex(), map[string]string{"title": "Renamed"}, handler.UpdateMedia)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMediaHandler_DeleteMedia(t *testing.T) {
	mediaID := primitive.NewObjectID()

	mockService := &mocks.MockMediaService{
		DeleteFunc: func(ctx context.Context, a *authz.Actor, id primitive.ObjectID) error {
			if a.Role != models.RoleSuperUser {
				return apperrors.ErrForbidden
			}
			return nil
		},
	}
	handler := NewMediaHandler(mockService)

	w := serve(t, ldaActor(), http.MethodDelete, "/media/:id", "/media/"+mediaID.Hex(), nil, handler.DeleteMedia)
	assertError(t, w, http.StatusForbidden, "forbidden")

	w = serve(t, superActor(), http.MethodDelete, "/media/:id", "/media/"+mediaID.Hex(), nil, handler.DeleteMedia)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
