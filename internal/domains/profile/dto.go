package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"showreel-backend/internal/storage"
)

// UpdateProfileRequest carries a partial profile update. Nil fields
// are left untouched; social_links, skills and services replace the
// stored value wholesale when present.
type UpdateProfileRequest struct {
	Name        *string           `json:"name"`
	Title       *string           `json:"title"`
	Bio         *string           `json:"bio"`
	Email       *string           `json:"email"`
	Phone       *string           `json:"phone"`
	Location    *string           `json:"location"`
	Website     *string           `json:"website"`
	SocialLinks map[string]string `json:"social_links"`
	Skills      []string          `json:"skills"`
	Services    []string          `json:"services"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, 200)),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "", is.URL.Error("invalid website url")),
		),
	)
}

func (r UpdateProfileRequest) patch() storage.ProfilePatch {
	return storage.ProfilePatch{
		Name:        r.Name,
		Title:       r.Title,
		Bio:         r.Bio,
		Email:       r.Email,
		Phone:       r.Phone,
		Location:    r.Location,
		Website:     r.Website,
		SocialLinks: r.SocialLinks,
		Skills:      r.Skills,
		Services:    r.Services,
	}
}

type UpdateProfileResponse struct {
	Message string           `json:"message"`
	Data    *storage.Profile `json:"data"`
}
