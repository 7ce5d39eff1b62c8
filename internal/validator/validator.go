// Package validator registers the request validators the models' binding tags
// rely on.
package validator

import (
	"lda-portal/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validateObjectID validates that a string is a hex ObjectID
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// validateUploadedBy validates that a string is a known uploadedBy tag
func validateUploadedBy(fl validator.FieldLevel) bool {
	return models.UploadedBy(fl.Field().String()).Valid()
}

// validateRole validates that a string is a known account role
func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"objectid":   validateObjectID,
		"uploadedby": validateUploadedBy,
		"role":       validateRole,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = Register(v)
	}
}
