package main

import (
	"bytes"
	"context"
	"os"
	"time"

	"lda-portal/internal/config"
	"lda-portal/internal/database"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/internal/storage"
	"lda-portal/pkg/auth"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedPassword is shared by every demo account except the super user.
const seedPassword = "password123"

type repos struct {
	users     repository.UserRepository
	ldas      repository.LDARepository
	funders   repository.FunderRepository
	funds     repository.FundRepository
	documents repository.DocumentRepository
	contacts  repository.ContactRepository
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("starting seed")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	clearCollections(ctx, mongoDB.Database)
	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	r := repos{
		users:     repository.NewUserRepository(mongoDB.Database),
		ldas:      repository.NewLDARepository(mongoDB.Database),
		funders:   repository.NewFunderRepository(mongoDB.Database),
		funds:     repository.NewFundRepository(mongoDB.Database),
		documents: repository.NewDocumentRepository(mongoDB.Database),
		contacts:  repository.NewContactRepository(mongoDB.Database),
	}

	superEmail := getEnv("SEED_SUPER_USER_EMAIL", "super@example.com")
	superPassword := getEnv("SEED_SUPER_USER_PASSWORD", "changeme123")
	superUser := seedUser(ctx, r.users, superEmail, superPassword, "Portal Super User", models.RoleSuperUser, nil)

	fund := seedFunding(ctx, r)
	ldaIDs := seedLDAs(ctx, r, fund.ID)

	seedUser(ctx, r.users, "admin@example.com", seedPassword, "Ayanda Admin", models.RoleAdmin, nil)
	seedUser(ctx, r.users, "officer@example.com", seedPassword, "Lerato Officer", models.RoleProgrammeOfficer, nil)
	ldaUser := seedUser(ctx, r.users, "lda@example.com", seedPassword, "Thandi Mokoena", models.RoleUser, ldaIDs[:1])

	seedContacts(ctx, r.contacts, ldaIDs)
	seedDocument(ctx, r.documents, s3Client, ldaIDs[0], ldaUser.ID)

	log.Info().Str("superUser", superUser.Email).Msg("seed completed")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{
		database.UsersCollection,
		database.LDAsCollection,
		database.FundersCollection,
		database.FundsCollection,
		database.DocumentsCollection,
		database.MediaCollection,
		database.ContactsCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to clear collection")
		}
	}
}

func seedUser(ctx context.Context, users repository.UserRepository, email, password, name string, role models.Role, ldaIDs []primitive.ObjectID) *models.User {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     name,
		Role:     role,
		Approved: true,
		LDAIDs:   ldaIDs,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("failed to seed user")
	}

	log.Info().Str("email", email).Str("role", string(role)).Msg("seeded user")
	return user
}

func seedFunding(ctx context.Context, r repos) *models.Fund {
	funder := &models.Funder{
		Name:         "Sundry Charitable Trust",
		ContactEmail: "grants@example.org",
		Website:      "https://example.org",
	}
	if err := r.funders.Create(ctx, funder); err != nil {
		log.Fatal().Err(err).Msg("failed to seed funder")
	}

	fund := &models.Fund{
		FunderID:    funder.ID,
		Name:        "Rural Enterprise Fund 2024",
		Description: "Seed capital for village enterprises",
		Amount:      250000000,
		Currency:    "ZAR",
	}
	if err := r.funds.Create(ctx, fund); err != nil {
		log.Fatal().Err(err).Msg("failed to seed fund")
	}

	log.Info().Str("funder", funder.Name).Str("fund", fund.Name).Msg("seeded funding")
	return fund
}

func seedLDAs(ctx context.Context, r repos, fundID primitive.ObjectID) []primitive.ObjectID {
	ldas := []*models.LDA{
		{
			Name:               "Ikhwezi Development Trust",
			RegistrationNumber: "NPO-123-456",
			Province:           "Eastern Cape",
			FundIDs:            []primitive.ObjectID{fundID},
			Operations: &models.LDAOperations{
				Vision:         "Thriving rural villages",
				OperatingAreas: []string{"Mthatha", "Lusikisiki"},
			},
			Staff: []models.StaffMember{{Name: "Sipho Ndlovu", Position: "Programme Manager"}},
		},
		{
			Name:     "Masakhane Community Forum",
			Province: "KwaZulu-Natal",
		},
	}

	ids := make([]primitive.ObjectID, 0, len(ldas))
	for _, lda := range ldas {
		if err := r.ldas.Create(ctx, lda); err != nil {
			log.Fatal().Err(err).Str("lda", lda.Name).Msg("failed to seed lda")
		}
		ids = append(ids, lda.ID)
	}

	log.Info().Int("count", len(ids)).Msg("seeded ldas")
	return ids
}

func seedContacts(ctx context.Context, contacts repository.ContactRepository, ldaIDs []primitive.ObjectID) {
	seeds := []*models.Contact{
		{Name: "Nomsa Dlamini", Email: "nomsa@example.org", Position: "Chairperson", LDAIDs: ldaIDs[:1]},
		{Name: "Bongani Zulu", Phone: "+27 82 000 0000", Position: "Treasurer", LDAIDs: ldaIDs},
	}
	for _, contact := range seeds {
		if err := contacts.Create(ctx, contact); err != nil {
			log.Fatal().Err(err).Str("contact", contact.Name).Msg("failed to seed contact")
		}
	}
	log.Info().Int("count", len(seeds)).Msg("seeded contacts")
}

func seedDocument(ctx context.Context, documents repository.DocumentRepository, s3Client *storage.S3Client, ldaID, createdBy primitive.ObjectID) {
	body := []byte("Ikhwezi Development Trust\nAnnual report placeholder\n")

	doc := &models.Document{
		ID:          primitive.NewObjectID(),
		Title:       "Annual report 2023",
		LDAID:       &ldaID,
		UploadedBy:  models.UploadedByLDA,
		ContentType: "text/plain",
		FileSize:    int64(len(body)),
		CreatedByID: createdBy,
	}
	doc.FileKey = storage.ObjectKey("documents", doc.ID.Hex(), "annual-report-2023.txt")

	if err := s3Client.PutObject(ctx, doc.FileKey, bytes.NewReader(body), doc.ContentType); err != nil {
		log.Warn().Err(err).Str("key", doc.FileKey).Msg("failed to upload seed document, skipping")
		return
	}
	if err := documents.Create(ctx, doc); err != nil {
		log.Fatal().Err(err).Msg("failed to seed document")
	}
	log.Info().Str("key", doc.FileKey).Msg("seeded document")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
