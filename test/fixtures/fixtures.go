// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"sync"
	"time"

	"lda-portal/internal/models"
	"lda-portal/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPassword is the plaintext password of every built user unless
// overridden with WithPassword.
const DefaultPassword = "password123"

var (
	defaultHashOnce sync.Once
	defaultHash     string
)

func defaultPasswordHash() string {
	defaultHashOnce.Do(func() {
		hash, err := auth.HashPassword(DefaultPassword)
		if err != nil {
			panic(fmt.Sprintf("fixtures: hashing default password: %v", err))
		}
		defaultHash = hash
	})
	return defaultHash
}

func uniqueSuffix() string {
	return primitive.NewObjectID().Hex()[16:]
}

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder for an approved LDA user.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", uniqueSuffix()),
			Password:  defaultPasswordHash(),
			Role:      models.RoleUser,
			Approved:  true,
			LDAIDs:    []primitive.ObjectID{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword hashes and sets a plaintext password.
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(fmt.Sprintf("fixtures: hashing password: %v", err))
	}
	b.user.Password = hash
	return b
}

func (b *UserBuilder) WithRole(role models.Role) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) WithLDAs(ids ...primitive.ObjectID) *UserBuilder {
	b.user.LDAIDs = ids
	return b
}

func (b *UserBuilder) Pending() *UserBuilder {
	b.user.Approved = false
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== LDA Fixtures =====

// LDABuilder provides fluent API for building test LDAs.
type LDABuilder struct {
	lda models.LDA
}

// NewLDA creates a new LDABuilder with sensible defaults.
func NewLDA() *LDABuilder {
	return &LDABuilder{
		lda: models.LDA{
			ID:                 primitive.NewObjectID(),
			Name:               fmt.Sprintf("Test LDA %s", uniqueSuffix()),
			RegistrationNumber: "NPO-000-000",
			Province:           "Eastern Cape",
			FundIDs:            []primitive.ObjectID{},
			Staff:              []models.StaffMember{},
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		},
	}
}

func (b *LDABuilder) WithID(id primitive.ObjectID) *LDABuilder {
	b.lda.ID = id
	return b
}

func (b *LDABuilder) WithName(name string) *LDABuilder {
	b.lda.Name = name
	return b
}

func (b *LDABuilder) WithFunds(ids ...primitive.ObjectID) *LDABuilder {
	b.lda.FundIDs = ids
	return b
}

func (b *LDABuilder) Build() models.LDA {
	return b.lda
}

func (b *LDABuilder) BuildPtr() *models.LDA {
	return &b.lda
}

// ===== Funding Fixtures =====

// FunderBuilder provides fluent API for building test funders.
type FunderBuilder struct {
	funder models.Funder
}

// NewFunder creates a new FunderBuilder with sensible defaults.
func NewFunder() *FunderBuilder {
	return &FunderBuilder{
		funder: models.Funder{
			ID:           primitive.NewObjectID(),
			Name:         fmt.Sprintf("Test Funder %s", uniqueSuffix()),
			ContactEmail: "grants@example.org",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *FunderBuilder) WithID(id primitive.ObjectID) *FunderBuilder {
	b.funder.ID = id
	return b
}

func (b *FunderBuilder) Build() models.Funder {
	return b.funder
}

func (b *FunderBuilder) BuildPtr() *models.Funder {
	return &b.funder
}

// FundBuilder provides fluent API for building test funds.
type FundBuilder struct {
	fund models.Fund
}

// NewFund creates a new FundBuilder owned by funderID.
func NewFund(funderID primitive.ObjectID) *FundBuilder {
	return &FundBuilder{
		fund: models.Fund{
			ID:        primitive.NewObjectID(),
			FunderID:  funderID,
			Name:      fmt.Sprintf("Test Fund %s", uniqueSuffix()),
			Amount:    1000000,
			Currency:  "ZAR",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *FundBuilder) WithID(id primitive.ObjectID) *FundBuilder {
	b.fund.ID = id
	return b
}

func (b *FundBuilder) WithAmount(amount int64) *FundBuilder {
	b.fund.Amount = amount
	return b
}

func (b *FundBuilder) Build() models.Fund {
	return b.fund
}

func (b *FundBuilder) BuildPtr() *models.Fund {
	return &b.fund
}

// ===== Contact Fixtures =====

// ContactBuilder provides fluent API for building test contacts.
type ContactBuilder struct {
	contact models.Contact
}

// NewContact creates a new ContactBuilder linked to ldaIDs.
func NewContact(ldaIDs ...primitive.ObjectID) *ContactBuilder {
	return &ContactBuilder{
		contact: models.Contact{
			ID:        primitive.NewObjectID(),
			Name:      "Test Contact",
			Email:     fmt.Sprintf("contact-%s@example.org", uniqueSuffix()),
			Position:  "Chairperson",
			LDAIDs:    ldaIDs,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *ContactBuilder) WithName(name string) *ContactBuilder {
	b.contact.Name = name
	return b
}

func (b *ContactBuilder) Build() models.Contact {
	return b.contact
}

func (b *ContactBuilder) BuildPtr() *models.Contact {
	return &b.contact
}

// ===== Document Fixtures =====

// DocumentBuilder provides fluent API for building test documents.
type DocumentBuilder struct {
	doc models.Document
}

// NewLDADocument creates a DocumentBuilder for a document uploaded by an LDA.
func NewLDADocument(ldaID, createdBy primitive.ObjectID) *DocumentBuilder {
	id := primitive.NewObjectID()
	return &DocumentBuilder{
		doc: models.Document{
			ID:          id,
			Title:       "Test Document",
			LDAID:       &ldaID,
			UploadedBy:  models.UploadedByLDA,
			FileKey:     fmt.Sprintf("documents/%s/test.pdf", id.Hex()),
			ContentType: "application/pdf",
			FileSize:    1024,
			CreatedByID: createdBy,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *DocumentBuilder) WithTitle(title string) *DocumentBuilder {
	b.doc.Title = title
	return b
}

func (b *DocumentBuilder) WithUploadedBy(u models.UploadedBy) *DocumentBuilder {
	b.doc.UploadedBy = u
	return b
}

func (b *DocumentBuilder) WithFileKey(key string) *DocumentBuilder {
	b.doc.FileKey = key
	return b
}

func (b *DocumentBuilder) Build() models.Document {
	return b.doc
}

func (b *DocumentBuilder) BuildPtr() *models.Document {
	return &b.doc
}
