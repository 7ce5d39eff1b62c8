package service

import (
	"testing"
	"time"

	"lda-portal/internal/authz"
	"lda-portal/internal/models"
	queuemocks "lda-portal/internal/queue/mocks"
	storagemocks "lda-portal/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func actorWith(role models.Role, ldaIDs ...primitive.ObjectID) *authz.Actor {
	return &authz.Actor{ID: primitive.NewObjectID(), Role: role, LDAIDs: ldaIDs}
}

func superUser() *authz.Actor { return actorWith(models.RoleSuperUser) }
func admin() *authz.Actor { return actorWith(models.RoleAdmin) }
func officer() *authz.Actor { return actorWith(models.RoleProgrammeOfficer) }

func strPtr(s string) *string { return &s }

func hexPtr(id primitive.ObjectID) *string {
	s := id.Hex()
	return &s
}

type fileMocks struct {
	storage *storagemocks.MockStorage
	queue   *queuemocks.MockQueue
	files   *Files
}

func newFileMocks(ctrl *gomock.Controller) fileMocks {
	s := storagemocks.NewMockStorage(ctrl)
	q := queuemocks.NewMockQueue(ctrl)
	return fileMocks{storage: s, queue: q, files: NewFiles(s, q, 15*time.Minute)}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageLimit},
		{-3, 10, 1, 10},
		{2, 500, 2, maxPageLimit},
		{4, 25, 4, 25},
	}

	for _, tt := range tests {
		page, limit := normalizePage(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLimit, limit)
	}
}

func TestParseOptionalID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := parseOptionalID(hexPtr(id))
	assert.NoError(t, err)
	assert.Equal(t, id, *got)

	got, err = parseOptionalID(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalID(strPtr(""))
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseOptionalID(strPtr("not-an-id"))
	assert.Error(t, err)
}

func TestNewIDs(t *testing.T) {
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	assert.Equal(t, []primitive.ObjectID{c}, newIDs([]primitive.ObjectID{a, b}, []primitive.ObjectID{a, c}))
	assert.Empty(t, newIDs([]primitive.ObjectID{a, b}, []primitive.ObjectID{b}))
}
